package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"maverick-bank/internal/api/handler/dto"
	"maverick-bank/internal/domain/employee"
	"maverick-bank/internal/pkg/apperrors"
)

type BankEmployeeHandler struct {
	service employee.Service
	logger  *slog.Logger
}

func NewBankEmployeeHandler(s employee.Service, l *slog.Logger) *BankEmployeeHandler {
	if s == nil {
		panic("employee service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &BankEmployeeHandler{
		service: s,
		logger:  l.With("component", "BankEmployeeHandler"),
	}
}

// CreateBankEmployee handles POST /api/v1/employees/createBankEmployee
// @Summary Create a new bank employee
// @Description Creates a bank employee profile linked one-to-one to an existing user account.
// @Tags BankEmployees
// @Accept json
// @Produce json
// @Param request body dto.CreateBankEmployeeRequest true "Bank employee creation request"
// @Success 201 {object} dto.BankEmployeeResponse "Bank employee successfully created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation failure"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/createBankEmployee [post]
func (h *BankEmployeeHandler) CreateBankEmployee(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create bank employee request")

	var req dto.CreateBankEmployeeRequest
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

	emp, err := h.service.CreateBankEmployee(r.Context(), req.ToInput())
	if err != nil {
		h.logger.WarnContext(r.Context(), "Service failed to create bank employee", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewBankEmployeeResponse(emp)
	h.logger.InfoContext(r.Context(), "Bank employee created successfully", slog.Int64("employeeID", resp.EmployeeID))
	respondJSON(w, http.StatusCreated, resp)
}

// GetBankEmployeeByID handles GET /api/v1/employees/getBankEmployeeById/{employeeId}
// @Summary Retrieve bank employee details
// @Description Retrieves a bank employee profile by its ID.
// @Tags BankEmployees
// @Produce json
// @Param employeeId path int true "Bank employee ID" Minimum(1)
// @Success 200 {object} dto.BankEmployeeResponse "Bank employee details retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID format"
// @Failure 404 {object} dto.ErrorResponse "Bank employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/getBankEmployeeById/{employeeId} [get]
func (h *BankEmployeeHandler) GetBankEmployeeByID(w http.ResponseWriter, r *http.Request) {
	employeeID, err := idFromURL(r, "employeeId")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get employee ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	emp, err := h.service.GetBankEmployeeByID(r.Context(), employeeID)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to get bank employee", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewBankEmployeeResponse(emp)
	h.logger.InfoContext(r.Context(), "Bank employee retrieved successfully")
	respondJSON(w, http.StatusOK, resp)
}

// GetAllBankEmployees handles GET /api/v1/employees/getAllBankEmployees
// @Summary List all bank employees
// @Description Retrieves every bank employee profile. Returns an empty array when none exist.
// @Tags BankEmployees
// @Produce json
// @Success 200 {array} dto.BankEmployeeResponse "List of bank employees"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/getAllBankEmployees [get]
func (h *BankEmployeeHandler) GetAllBankEmployees(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received list bank employees request")

	employees, err := h.service.GetAllBankEmployees(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list bank employees", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.BankEmployeeResponse, len(employees))
	for i, emp := range employees {
		resp[i] = dto.NewBankEmployeeResponse(emp)
	}

	h.logger.InfoContext(r.Context(), "Bank employees listed successfully", slog.Int("count", len(resp)))
	respondJSON(w, http.StatusOK, resp)
}

// UpdateBankEmployee handles PUT /api/v1/employees/updateBankEmployee/{employeeId}
// @Summary Update bank employee details
// @Description Applies a partial update to a bank employee profile. Absent fields keep their stored values.
// @Tags BankEmployees
// @Accept json
// @Produce json
// @Param employeeId path int true "Bank employee ID" Minimum(1)
// @Param request body dto.UpdateBankEmployeeRequest true "Partial bank employee update request"
// @Success 200 {object} dto.BankEmployeeResponse "Bank employee successfully updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID or request payload"
// @Failure 404 {object} dto.ErrorResponse "Bank employee or linked user not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/updateBankEmployee/{employeeId} [put]
func (h *BankEmployeeHandler) UpdateBankEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := idFromURL(r, "employeeId")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get employee ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	var req dto.UpdateBankEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	emp, err := h.service.UpdateBankEmployee(r.Context(), employeeID, req.ToInput())
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to update bank employee", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewBankEmployeeResponse(emp)
	h.logger.InfoContext(r.Context(), "Bank employee updated successfully")
	respondJSON(w, http.StatusOK, resp)
}

// DeleteBankEmployee handles DELETE /api/v1/employees/deleteBankEmployee/{employeeId}
// @Summary Delete a bank employee
// @Description Removes a bank employee profile. The linked user account is left untouched.
// @Tags BankEmployees
// @Produce json
// @Param employeeId path int true "Bank employee ID" Minimum(1)
// @Success 204 "Bank employee successfully deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID format"
// @Failure 404 {object} dto.ErrorResponse "Bank employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/deleteBankEmployee/{employeeId} [delete]
func (h *BankEmployeeHandler) DeleteBankEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := idFromURL(r, "employeeId")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get employee ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	if err := h.service.DeleteBankEmployee(r.Context(), employeeID); err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to delete bank employee", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Bank employee deleted successfully")
	respondJSON(w, http.StatusNoContent, nil)
}

// GetBankEmployeeByUserID handles GET /api/v1/employees/getBankEmployeeByUserId/{userId}
// @Summary Find bank employee by user ID
// @Description Retrieves the bank employee profile linked to a specific user account.
// @Tags BankEmployees
// @Produce json
// @Param userId path int true "User ID" Minimum(1)
// @Success 200 {object} dto.BankEmployeeResponse "Bank employee details retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID format"
// @Failure 404 {object} dto.ErrorResponse "No bank employee linked to the given user"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/getBankEmployeeByUserId/{userId} [get]
func (h *BankEmployeeHandler) GetBankEmployeeByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromURL(r, "userId")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get user ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	emp, err := h.service.GetBankEmployeeByUserID(r.Context(), userID)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to find bank employee by user", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewBankEmployeeResponse(emp)
	h.logger.InfoContext(r.Context(), "Bank employee found successfully by user ID", slog.Int64("employeeID", resp.EmployeeID))
	respondJSON(w, http.StatusOK, resp)
}
