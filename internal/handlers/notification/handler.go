package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/notification/service"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	gDto "github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/transport/http/response"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetNotifications)
		routerGroup.Post("/{id}/read", handler.MarkRead)
		routerGroup.Post("/read-all", handler.MarkAllRead)
	})
}

// GetNotifications lists the authenticated user's notifications with an
// unread count.
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	notifications, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications retrieved successfully")

	response.WithJSON(w, http.StatusOK, notifications)
}

// MarkRead marks a single notification as read.
func (handler *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRead")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkRead(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notification read")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notification marked read")

	response.WithMessage(w, http.StatusOK, "Notification marked read")
}

// MarkAllRead marks every notification of the user as read.
func (handler *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkAllRead")
	defer scope.End()

	if err := handler.service.MarkAllRead(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notifications read")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("All notifications marked read")

	response.WithMessage(w, http.StatusOK, "All notifications marked read")
}
