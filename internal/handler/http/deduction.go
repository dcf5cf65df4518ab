package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/deduction"
	"github.com/sweldo-hq/sweldo-backend-go/internal/handler/http/response"
)

type DeductionHandler interface {
	CreateCashAdvance(w http.ResponseWriter, r *http.Request)
	ListCashAdvances(w http.ResponseWriter, r *http.Request)
	DeleteCashAdvance(w http.ResponseWriter, r *http.Request)

	CreateShort(w http.ResponseWriter, r *http.Request)
	ListShorts(w http.ResponseWriter, r *http.Request)
	DeleteShort(w http.ResponseWriter, r *http.Request)

	CreateLoan(w http.ResponseWriter, r *http.Request)
	ListLoans(w http.ResponseWriter, r *http.Request)
	DeleteLoan(w http.ResponseWriter, r *http.Request)
}

type deductionHandlerImpl struct {
	deductionService deduction.DeductionService
}

func NewDeductionHandler(deductionService deduction.DeductionService) DeductionHandler {
	return &deductionHandlerImpl{
		deductionService: deductionService,
	}
}

// CreateCashAdvance implements DeductionHandler.
func (h *deductionHandlerImpl) CreateCashAdvance(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateCashAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.deductionService.CreateCashAdvance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Cash advance created", result)
}

// ListCashAdvances implements DeductionHandler.
func (h *deductionHandlerImpl) ListCashAdvances(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.deductionService.ListCashAdvances(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteCashAdvance implements DeductionHandler.
func (h *deductionHandlerImpl) DeleteCashAdvance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.deductionService.DeleteCashAdvance(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cash advance deleted", nil)
}

// CreateShort implements DeductionHandler.
func (h *deductionHandlerImpl) CreateShort(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateShortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.deductionService.CreateShort(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Short created", result)
}

// ListShorts implements DeductionHandler.
func (h *deductionHandlerImpl) ListShorts(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.deductionService.ListShorts(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteShort implements DeductionHandler.
func (h *deductionHandlerImpl) DeleteShort(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.deductionService.DeleteShort(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Short deleted", nil)
}

// CreateLoan implements DeductionHandler.
func (h *deductionHandlerImpl) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.deductionService.CreateLoan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Loan created", result)
}

// ListLoans implements DeductionHandler.
func (h *deductionHandlerImpl) ListLoans(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.deductionService.ListLoans(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteLoan implements DeductionHandler.
func (h *deductionHandlerImpl) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.deductionService.DeleteLoan(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan deleted", nil)
}
