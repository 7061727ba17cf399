package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			slog.Warn("Login rejected", "username", loginReq.Username)
		} else {
			slog.Error("Login service error", "error", err)
		}
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Login successful", tokenResponse)
}
