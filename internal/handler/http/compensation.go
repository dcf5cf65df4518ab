package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/compensation"
	"github.com/sweldo-hq/sweldo-backend-go/internal/handler/http/response"
)

type CompensationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	RecomputeMonth(w http.ResponseWriter, r *http.Request)
	RecomputeDay(w http.ResponseWriter, r *http.Request)
	ManualEdit(w http.ResponseWriter, r *http.Request)
	SetManualOverride(w http.ResponseWriter, r *http.Request)
}

type compensationHandlerImpl struct {
	compensationService compensation.CompensationService
}

func NewCompensationHandler(compensationService compensation.CompensationService) CompensationHandler {
	return &compensationHandlerImpl{
		compensationService: compensationService,
	}
}

// List implements CompensationHandler.
func (h *compensationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	year, err := queryInt(r, "year")
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}
	month, err := queryInt(r, "month")
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.compensationService.ListMonth(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RecomputeMonth implements CompensationHandler.
func (h *compensationHandlerImpl) RecomputeMonth(w http.ResponseWriter, r *http.Request) {
	var req compensation.RecomputeMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.compensationService.RecomputeMonth(r.Context(), req.EmployeeID, req.Year, req.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Compensation recomputed", result)
}

// RecomputeDay implements CompensationHandler.
func (h *compensationHandlerImpl) RecomputeDay(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date, err := queryDate(r, "date")
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.compensationService.RecomputeDay(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Compensation recomputed", result)
}

// ManualEdit implements CompensationHandler.
func (h *compensationHandlerImpl) ManualEdit(w http.ResponseWriter, r *http.Request) {
	var req compensation.ManualEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.compensationService.ApplyManualEdit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Compensation updated", result)
}

// SetManualOverride implements CompensationHandler.
func (h *compensationHandlerImpl) SetManualOverride(w http.ResponseWriter, r *http.Request) {
	var req compensation.SetManualOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.compensationService.SetManualOverride(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manual override updated", result)
}
