package servicerequest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/model/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/service"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	gDto "github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/failure"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/validator"
	"github.com/singhtechie24/Indiana-Hotels-Final/transport/http/response"
)

type Handler struct {
	service service.ServiceRequest
	otel    otel.Otel
}

func New(service service.ServiceRequest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/service-requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateServiceRequest)
		routerGroup.Get("/", handler.GetServiceRequests)
		routerGroup.Get("/myrequests", handler.GetMyServiceRequests)
		routerGroup.Get("/{id}", handler.GetServiceRequestByID)
		routerGroup.Patch("/{id}/status", handler.UpdateServiceRequestStatus)
		routerGroup.Post("/{id}/cancel", handler.CancelServiceRequest)
	})
}

// CreateServiceRequest submits a housekeeping, maintenance or room service
// request for a room.
func (handler *Handler) CreateServiceRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateServiceRequest")
	defer scope.End()

	req := dto.CreateServiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service request")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service request created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetServiceRequests lists all service requests, for the staff queue.
func (handler *Handler) GetServiceRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := listFilters(r)

	requests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, requests)
}

// GetMyServiceRequests lists the authenticated user's service requests.
func (handler *Handler) GetMyServiceRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyServiceRequests")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)
		log.Error().Msg("failed to get user ID from context")

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := listFilters(r)
	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldUserID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    model.TableName,
	})

	requests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user service requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User service requests retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, requests)
}

// GetServiceRequestByID retrieves a service request by its ID.
func (handler *Handler) GetServiceRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceRequestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	request, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service request by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request retrieved successfully")

	response.WithJSON(w, http.StatusOK, request)
}

// UpdateServiceRequestStatus advances a request through its workflow, staff
// only.
func (handler *Handler) UpdateServiceRequestStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateServiceRequestStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service request status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service request status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service request status updated successfully")
}

// CancelServiceRequest lets the requester withdraw their own request.
func (handler *Handler) CancelServiceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelServiceRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel service request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service request cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service request cancelled successfully")
}

func listFilters(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomID := r.URL.Query().Get(model.FieldRoomID); roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if requestType := r.URL.Query().Get(model.FieldType); requestType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    requestType,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
