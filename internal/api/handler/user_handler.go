package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"maverick-bank/internal/api/handler/dto"
	"maverick-bank/internal/domain/identity"
	"maverick-bank/internal/infrastructure/monitoring"
	"maverick-bank/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	service identity.UserService
	logger  *slog.Logger
}

func NewUserHandler(s identity.UserService, l *slog.Logger) *UserHandler {
	if s == nil {
		panic("user service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &UserHandler{
		service: s,
		logger:  l.With("component", "UserHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, message, field := http.StatusInternalServerError, "An unexpected error occurred.", ""
	var validationError *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &validationError):
		status, message, field = http.StatusBadRequest, validationError.Message, validationError.Field
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found."
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.As(err, &appErr):
		message = appErr.Error()
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Message: message,
			Field:   field,
		},
	}
	respondJSON(w, status, resp)
}

func idFromURL(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	if idStr == "" {
		return 0, fmt.Errorf("%w: %s not found in URL path", apperrors.ErrInvalidArgument, param)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s format in URL path: %s", apperrors.ErrInvalidArgument, param, idStr)
	}
	return id, nil
}

// RegisterUser handles POST /api/v1/users/register
// @Summary Register a new user
// @Description Creates a new user account. Unknown or absent role IDs fall back to the CUSTOMER role.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "User registration request"
// @Success 201 {object} dto.UserResponse "User successfully registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation failure"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received register user request")

	var req dto.RegisterUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	user, err := h.service.RegisterUser(r.Context(), req.ToInput())
	if err != nil {
		h.logger.WarnContext(r.Context(), "Service failed to register user", slog.Any("error", err))
		respondError(w, err)
		return
	}

	monitoring.RecordUserRegistered()

	resp := dto.NewUserResponse(user)
	h.logger.InfoContext(r.Context(), "User registered successfully", slog.Int64("userID", resp.UserID))
	respondJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/v1/users/login
// @Summary Authenticate a user
// @Description Verifies a username and password pair. No token or session is issued.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.LoginResponse "Credentials verified"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received login request")

	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Login failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.LoginResponse{
		Message: "Login successful",
		User:    dto.NewUserResponse(user),
	}
	h.logger.InfoContext(r.Context(), "User logged in successfully", slog.Int64("userID", resp.User.UserID))
	respondJSON(w, http.StatusOK, resp)
}

// GetUserByID handles GET /api/v1/users/getUserById/{userId}
// @Summary Retrieve user details
// @Description Retrieves a user account by its ID. The password hash is never included.
// @Tags Users
// @Produce json
// @Param userId path int true "User ID" Minimum(1)
// @Success 200 {object} dto.UserResponse "User details retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID format"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/getUserById/{userId} [get]
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromURL(r, "userId")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get user ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	user, err := h.service.GetUserByID(r.Context(), userID)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to get user", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewUserResponse(user)
	h.logger.InfoContext(r.Context(), "User retrieved successfully")
	respondJSON(w, http.StatusOK, resp)
}

// UpdateUser handles PUT /api/v1/users/updateUser/{userId}
// @Summary Update user details
// @Description Applies a partial update to a user account. Absent fields keep their stored values.
// @Tags Users
// @Accept json
// @Produce json
// @Param userId path int true "User ID" Minimum(1)
// @Param request body dto.UpdateUserRequest true "Partial user update request"
// @Success 200 {object} dto.UserResponse "User successfully updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID or request payload"
// @Failure 404 {object} dto.ErrorResponse "User or role not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/updateUser/{userId} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromURL(r, "userId")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get user ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	user, err := h.service.UpdateUser(r.Context(), userID, req.ToInput())
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to update user", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewUserResponse(user)
	h.logger.InfoContext(r.Context(), "User updated successfully")
	respondJSON(w, http.StatusOK, resp)
}

// DeleteUser handles DELETE /api/v1/users/deleteUser/{userId}
// @Summary Delete a user
// @Description Removes a user account. Any linked customer or bank employee profile is removed with it.
// @Tags Users
// @Produce json
// @Param userId path int true "User ID" Minimum(1)
// @Success 204 "User successfully deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID format"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/deleteUser/{userId} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromURL(r, "userId")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get user ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to delete user", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "User deleted successfully")
	respondJSON(w, http.StatusNoContent, nil)
}
