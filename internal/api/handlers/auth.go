package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dom/user-auth-service/internal/domain"
	"github.com/dom/user-auth-service/internal/service"
	"github.com/dom/user-auth-service/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
	log         *slog.Logger
}

func NewAuthHandler(authService *service.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, MsgInvalidRequestBody)
		return
	}

	if errs := validation.Apply(validation.RegisterRules(req.Email, req.Password, req.FirstName, req.LastName)); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	tokenString, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountAlreadyExists) {
			writeMessage(w, http.StatusUnprocessableEntity, MsgAccountAlreadyExists)
			return
		}
		h.log.ErrorContext(r.Context(), "register failed", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, MsgInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, TokenResponse{Token: tokenString})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, MsgInvalidRequestBody)
		return
	}

	if errs := validation.Apply(validation.LoginRules(req.Email, req.Password)); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	tokenString, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, MsgInvalidCredentials)
			return
		}
		h.log.ErrorContext(r.Context(), "login failed", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, MsgInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: tokenString})
}
