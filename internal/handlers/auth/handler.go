package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/auth/model/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/auth/service"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/failure"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/validator"
	"github.com/singhtechie24/Indiana-Hotels-Final/transport/http/response"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/register", handler.Register)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/refresh", handler.RefreshToken)
		routerGroup.Post("/change-password", handler.ChangePassword)
	})
}

// Register creates a new guest account.
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithMessage(writer, http.StatusCreated, "User registered successfully")
}

// Login exchanges credentials for a token pair.
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// RefreshToken exchanges a refresh token for a fresh token pair.
func (handler *Handler) RefreshToken(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Token refreshed successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// ChangePassword updates the authenticated user's password.
func (handler *Handler) ChangePassword(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.ChangePasswordRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.ChangePassword(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Password changed successfully by user " + userID)

	response.WithMessage(writer, http.StatusOK, "Password changed successfully")
}
