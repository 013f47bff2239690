package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrcore/payroll-engine-go/internal/domain/payroll"
	"github.com/hrcore/payroll-engine-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Batch runs
	GenerateBatch(w http.ResponseWriter, r *http.Request)
	RecalculateBatch(w http.ResponseWriter, r *http.Request)
	SimulateBatch(w http.ResponseWriter, r *http.Request)

	// Lines
	GetLine(w http.ResponseWriter, r *http.Request)
	ListLines(w http.ResponseWriter, r *http.Request)
	ApproveLines(w http.ResponseWriter, r *http.Request)
	DeleteLine(w http.ResponseWriter, r *http.Request)

	// Summary
	GetPeriodSummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// decodeBatchRequest fills the request from body and URL. An empty body is a
// valid request meaning "all active employees".
func decodeBatchRequest(r *http.Request) (payroll.BatchRequest, error) {
	var req payroll.BatchRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return payroll.BatchRequest{}, err
		}
	}
	req.PeriodID = chi.URLParam(r, "periodID")
	return req, nil
}

// ========== BATCH RUNS ==========

func (h *payrollHandlerImpl) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBatchRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GenerateBatch(r.Context(), req)
	if err != nil {
		if errors.Is(err, payroll.ErrAllDuplicates) {
			response.ConflictWithData(w, "All requested lines already exist", result)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll batch generated", result)
}

func (h *payrollHandlerImpl) RecalculateBatch(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBatchRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.RecalculateBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll batch recalculated", result)
}

func (h *payrollHandlerImpl) SimulateBatch(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBatchRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.SimulateBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== LINES ==========

func (h *payrollHandlerImpl) GetLine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Line ID is required", nil)
		return
	}

	result, err := h.payrollService.GetLine(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListLines(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodID")
	if periodID == "" {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	result, err := h.payrollService.ListLines(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ApproveLines(w http.ResponseWriter, r *http.Request) {
	var req payroll.ApproveLinesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	approved, err := h.payrollService.ApproveLines(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("%d payroll lines approved", approved), map[string]int{"approved": approved})
}

func (h *payrollHandlerImpl) DeleteLine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Line ID is required", nil)
		return
	}

	if err := h.payrollService.DeleteLine(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll line deleted", nil)
}

// ========== SUMMARY ==========

func (h *payrollHandlerImpl) GetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodID")
	if periodID == "" {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	result, err := h.payrollService.GetPeriodSummary(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
