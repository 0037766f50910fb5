package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/leave"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/tenant"
	"github.com/peopleops-dev/hr-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	tc, err := tenant.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.Create(r.Context(), tc, createReq)
	if err != nil {
		slog.Error("Create leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	tc, err := tenant.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.leaveService.ListMine(r.Context(), tc)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListAll implements LeaveHandler.
func (h *LeaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	tc, err := tenant.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.leaveService.ListAll(r.Context(), tc)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	tc, err := tenant.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var statusReq leave.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Update leave status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	requestID := chi.URLParam(r, "id")
	updated, err := h.leaveService.UpdateStatus(r.Context(), tc, requestID, statusReq)
	if err != nil {
		slog.Error("Update leave status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request processed", updated)
}
