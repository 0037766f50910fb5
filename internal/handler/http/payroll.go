package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/payroll"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/tenant"
	"github.com/peopleops-dev/hr-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Calculate implements PayrollHandler.
func (h *PayrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	tc, err := tenant.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var calcReq payroll.CalculateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&calcReq); err != nil {
		slog.Error("Calculate salaries decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.payrollService.Calculate(r.Context(), tc, calcReq)
	if err != nil {
		slog.Error("Calculate salaries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary records generated", results)
}

// MarkPaid implements PayrollHandler.
func (h *PayrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	tc, err := tenant.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	salaryID := chi.URLParam(r, "id")
	result, err := h.payrollService.MarkPaid(r.Context(), tc, salaryID)
	if err != nil {
		slog.Error("Mark salary paid service error", "error", err, "salary_id", salaryID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary marked as paid", result)
}

// GetByID implements PayrollHandler.
func (h *PayrollHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	tc, err := tenant.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	salaryID := chi.URLParam(r, "id")
	result, err := h.payrollService.GetByID(r.Context(), tc, salaryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements PayrollHandler.
func (h *PayrollHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	tc, err := tenant.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.payrollService.ListMine(r.Context(), tc)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListAll implements PayrollHandler.
func (h *PayrollHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	tc, err := tenant.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.payrollService.ListAll(r.Context(), tc)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
