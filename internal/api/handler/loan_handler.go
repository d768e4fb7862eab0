package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"loan-service/internal/api/handler/dto"
	"loan-service/internal/domain/loan"
	"loan-service/internal/pkg/apperrors"
)

type LoanHandler struct {
	service loan.LoanService
	logger  *slog.Logger
}

func NewLoanHandler(s loan.LoanService, l *slog.Logger) *LoanHandler {
	return &LoanHandler{
		service: s,
		logger:  l.With("component", "LoanHandler"),
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
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

// respondError is the single place where failure kind becomes a status code:
// not-found is 404, invalid-argument and validation are 400, anything else 500.
func respondError(w http.ResponseWriter, err error) {
	status, message := http.StatusInternalServerError, "Internal Server Error"

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	respondJSON(w, status, dto.ErrorResponse{Error: message})
}

func respondViolations(w http.ResponseWriter, violations []dto.FieldViolation) {
	respondJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		Error:      "validation failed",
		Violations: violations,
	})
}

func getLoanIDFromURL(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "loanID")
	if idStr == "" {
		return 0, fmt.Errorf("loanID not found in URL path")
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// ListLoans returns every stored loan.
//
// @Summary List all loans
// @Description Returns every stored loan in storage iteration order. Always succeeds; an empty store yields an empty array.
// @Tags Loans
// @Produce json
// @Success 200 {array} dto.LoanResponse "Loans successfully retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans [get]
func (h *LoanHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	correlationID := uuid.NewString()
	h.logger.Info("Retrieving all loans", "correlation_id", correlationID)

	loans, err := h.service.GetAllLoans(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]dto.LoanResponse, 0, len(loans))
	for i := range loans {
		resp = append(resp, dto.NewLoanResponse(&loans[i]))
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetLoan retrieves one loan by its identifier.
//
// @Summary Retrieve a loan
// @Description Returns the loan matching the path identifier.
// @Tags Loans
// @Produce json
// @Param loanID path int true "Loan ID"
// @Success 200 {object} dto.LoanResponse "Loan successfully retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid loan ID"
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/{loanID} [get]
func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	correlationID := uuid.NewString()

	loanID, err := getLoanIDFromURL(r)
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	h.logger.Info("Retrieving loan", "loan_id", loanID, "correlation_id", correlationID)

	found, err := h.service.GetLoan(r.Context(), loanID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewLoanResponse(found))
}

// CreateLoan persists a new loan.
//
// @Summary Create a new loan
// @Description Validates the payload against the field constraint set and persists the loan. The response carries the assigned identifier.
// @Tags Loans
// @Accept json
// @Produce json
// @Param request body dto.LoanRequest true "Loan creation request payload"
// @Success 200 {object} dto.LoanResponse "Loan successfully created"
// @Failure 400 {object} dto.ErrorResponse "Malformed payload or constraint violations"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans [post]
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	correlationID := uuid.NewString()
	h.logger.Info("Adding loan", "correlation_id", correlationID)

	var req dto.LoanRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if violations := req.Validate(); violations != nil {
		respondViolations(w, violations)
		return
	}

	newLoan, err := req.ToDomain()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	created, err := h.service.AddLoan(r.Context(), newLoan)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewLoanResponse(created))
}

// UpdateLoan replaces an existing loan wholesale.
//
// @Summary Update a loan
// @Description Validates the payload and replaces every field of the stored loan. The identifier is preserved. Absent loans yield 404.
// @Tags Loans
// @Accept json
// @Produce json
// @Param loanID path int true "Loan ID"
// @Param request body dto.LoanRequest true "Loan update request payload"
// @Success 200 {object} dto.LoanResponse "Loan successfully updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid loan ID, malformed payload or constraint violations"
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/{loanID} [put]
func (h *LoanHandler) UpdateLoan(w http.ResponseWriter, r *http.Request) {
	correlationID := uuid.NewString()

	loanID, err := getLoanIDFromURL(r)
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	h.logger.Info("Updating loan", "loan_id", loanID, "correlation_id", correlationID)

	var req dto.LoanRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if violations := req.Validate(); violations != nil {
		respondViolations(w, violations)
		return
	}

	incoming, err := req.ToDomain()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	updated, err := h.service.UpdateLoan(r.Context(), loanID, incoming)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewLoanResponse(updated))
}

// DeleteLoan removes a loan.
//
// @Summary Delete a loan
// @Description Removes the loan matching the path identifier. Succeeds with no content; absent loans yield 404.
// @Tags Loans
// @Produce json
// @Param loanID path int true "Loan ID"
// @Success 204 "Loan successfully deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid loan ID"
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/{loanID} [delete]
func (h *LoanHandler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	correlationID := uuid.NewString()

	loanID, err := getLoanIDFromURL(r)
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	h.logger.Info("Deleting loan", "loan_id", loanID, "correlation_id", correlationID)

	if err := h.service.DeleteLoan(r.Context(), loanID); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
