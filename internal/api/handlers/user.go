package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dom/user-auth-service/internal/api/middleware"
	"github.com/dom/user-auth-service/internal/domain"
	"github.com/dom/user-auth-service/internal/service"
	"github.com/dom/user-auth-service/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService *service.UserService
	log         *slog.Logger
}

func NewUserHandler(userService *service.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// UserResponse is the serialized user representation. The password hash is
// never part of it.
type UserResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

type UpdateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Index would list all users, but the feature is admin-only and the admin
// flag is off in this deployment, so the service denies every call.
func (h *UserHandler) Index(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrAdminOnly) {
			writeMessage(w, http.StatusUnauthorized, MsgOnlyForAdmins)
			return
		}
		h.log.ErrorContext(r.Context(), "list users failed", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, MsgInternalServerError)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, newUserResponse(user))
	}
	writeJSON(w, http.StatusOK, map[string][]UserResponse{"users": resp})
}

func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, MsgInvalidIDFormat)
		return
	}

	authUser, ok := middleware.GetUser(r.Context())
	if !ok || authUser.ID.String() != id.String() {
		writeMessage(w, http.StatusUnauthorized, MsgUnauthorized)
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeMessage(w, http.StatusUnauthorized, MsgUserNotExists)
			return
		}
		h.log.ErrorContext(r.Context(), "get user failed", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, MsgInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]UserResponse{"user": newUserResponse(user)})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, MsgInvalidIDFormat)
		return
	}

	// Owner-only: the path id must be the authenticated identity
	authUser, ok := middleware.GetUser(r.Context())
	if !ok || authUser.ID.String() != id.String() {
		writeMessage(w, http.StatusUnauthorized, MsgUnauthorized)
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, MsgInvalidRequestBody)
		return
	}

	if errs := validation.Apply(validation.UpdateRules(req.Email, req.Password, req.FirstName, req.LastName)); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, service.UpdateUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			writeMessage(w, http.StatusUnauthorized, MsgUserNotExists)
		case errors.Is(err, domain.ErrAccountAlreadyExists):
			writeMessage(w, http.StatusUnprocessableEntity, MsgAccountAlreadyExists)
		default:
			h.log.ErrorContext(r.Context(), "update user failed", slog.String("error", err.Error()))
			writeMessage(w, http.StatusInternalServerError, MsgInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":    newUserResponse(user),
		"message": MsgUserUpdated,
	})
}

// Destroy is gated behind the same admin policy flag as Index.
func (h *UserHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, MsgInvalidIDFormat)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrAdminOnly):
			writeMessage(w, http.StatusUnauthorized, MsgOnlyForAdmins)
		case errors.Is(err, domain.ErrUserNotFound):
			writeMessage(w, http.StatusUnauthorized, MsgUserNotExists)
		default:
			h.log.ErrorContext(r.Context(), "delete user failed", slog.String("error", err.Error()))
			writeMessage(w, http.StatusInternalServerError, MsgInternalServerError)
		}
		return
	}

	writeMessage(w, http.StatusOK, MsgUserDeleted)
}
