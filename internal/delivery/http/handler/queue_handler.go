package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/delivery/http/middleware"
	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/infrastructure/emr"
	"clinic-front-desk/internal/queue"
	"clinic-front-desk/internal/usecase"
	"clinic-front-desk/pkg/response"
	"clinic-front-desk/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type QueueHandler struct {
	queueUsecase usecase.QueueUsecase
	validator    *validator.CustomValidator
}

func NewQueueHandler(queueUsecase usecase.QueueUsecase, validator *validator.CustomValidator) *QueueHandler {
	return &QueueHandler{
		queueUsecase: queueUsecase,
		validator:    validator,
	}
}

func (h *QueueHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	req := parseListRequest(r)

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resp, page, err := h.queueUsecase.List(r.Context(), req)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	meta := &response.Meta{
		Page:       page.Page,
		Limit:      page.PageSize,
		Total:      int64(page.Total),
		TotalPages: page.PageCount,
	}
	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", resp, meta)
}

func (h *QueueHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.queueUsecase.Stats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to compute queue statistics")
		return
	}

	response.Success(w, http.StatusOK, "Queue statistics retrieved successfully", stats)
}

func (h *QueueHandler) SelectRange(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	selection, err := h.queueUsecase.SelectRange(r.Context(), req.Token)
	if err != nil {
		var remoteErr *emr.RemoteError
		switch {
		case errors.Is(err, queue.ErrUnknownRangeToken):
			response.Error(w, http.StatusBadRequest, "Unknown quick range token", nil)
		case errors.As(err, &remoteErr):
			response.BadGateway(w, remoteErr.Message)
		default:
			response.InternalServerError(w, "Failed to select range")
		}
		return
	}

	response.Success(w, http.StatusOK, "Range selected successfully", selection)
}

func (h *QueueHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.queueUsecase.Refresh(r.Context()); err != nil {
		var remoteErr *emr.RemoteError
		if errors.As(err, &remoteErr) {
			response.BadGateway(w, remoteErr.Message)
			return
		}
		response.InternalServerError(w, "Failed to refresh queue")
		return
	}

	response.Success(w, http.StatusOK, "Queue refreshed successfully", nil)
}

func (h *QueueHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID := vars["id"]

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.queueUsecase.UpdateStatus(r.Context(), appointmentID, entity.AppointmentStatus(req.Status), actorFromContext(r))
	if err != nil {
		h.respondTransitionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", result)
}

func (h *QueueHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID := vars["id"]

	var req dto.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.queueUsecase.UpdatePayment(r.Context(), appointmentID, entity.PaymentStatus(req.PaymentStatus), actorFromContext(r))
	if err != nil {
		h.respondTransitionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Payment status updated successfully", result)
}

func (h *QueueHandler) GetReminderLink(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID := vars["id"]

	link, err := h.queueUsecase.ReminderLink(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to build reminder link")
		return
	}

	response.Success(w, http.StatusOK, "Reminder link built successfully", link)
}

// respondTransitionError maps transition failures onto the envelope. Remote
// rejections carry the remote-provided message through.
func (h *QueueHandler) respondTransitionError(w http.ResponseWriter, err error) {
	var remoteErr *emr.RemoteError
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrInvalidStatus):
		response.Error(w, http.StatusBadRequest, "Invalid appointment status", nil)
	case errors.Is(err, usecase.ErrInvalidPaymentStatus):
		response.Error(w, http.StatusBadRequest, "Invalid payment status", nil)
	case errors.As(err, &remoteErr):
		response.BadGateway(w, remoteErr.Message)
	default:
		response.InternalServerError(w, "Failed to apply transition")
	}
}

func parseListRequest(r *http.Request) *dto.ListAppointmentsRequest {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	return &dto.ListAppointmentsRequest{
		Search:        q.Get("search"),
		Date:          q.Get("date"),
		VisitType:     q.Get("visit_type"),
		Tags:          q.Get("tags"),
		PaymentStatus: q.Get("payment_status"),
		Status:        q.Get("status"),
		FollowUp:      q.Get("follow_up") == "true",
		View:          q.Get("view"),
		Page:          page,
		Limit:         limit,
	}
}

func actorFromContext(r *http.Request) *uuid.UUID {
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		return &userID
	}
	return nil
}
