package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"clinic-front-desk/internal/converter"
	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/queue"
	"clinic-front-desk/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found in the loaded window")
	ErrInvalidStatus        = errors.New("invalid appointment status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// TransitionField identifies which lifecycle axis a transition touched
type TransitionField string

const (
	TransitionFieldStatus  TransitionField = "status"
	TransitionFieldPayment TransitionField = "payment"
)

// TransitionEvent is emitted after a transition was confirmed by the remote
// system and the local window was patched.
type TransitionEvent struct {
	AppointmentID string
	PatientID     string
	Field         TransitionField
	From          string
	To            string
	// Completed is set when the transition moved the visit to completed;
	// the billing handoff fires on exactly these events.
	Completed bool
}

// TransitionHook observes confirmed transitions. Hooks run synchronously in
// registration order, post-commit; they cannot veto a transition.
type TransitionHook func(ctx context.Context, event TransitionEvent)

type QueueUsecase interface {
	SelectRange(ctx context.Context, token string) (*dto.RangeSelectionResponse, error)
	Refresh(ctx context.Context) error
	List(ctx context.Context, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, queue.Page, error)
	Stats(ctx context.Context) (*dto.QueueStatsResponse, error)
	UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus, actorID *uuid.UUID) (*dto.TransitionResponse, error)
	UpdatePayment(ctx context.Context, id string, status entity.PaymentStatus, actorID *uuid.UUID) (*dto.TransitionResponse, error)
	ReminderLink(ctx context.Context, id string) (*dto.ReminderLinkResponse, error)
	RegisterHook(hook TransitionHook)
}

type queueUsecase struct {
	log      *logrus.Logger
	api      repository.AppointmentAPI
	store    *queue.Store
	audit    service.AuditService
	handoff  *service.HandoffService
	pageSize int
	now      func() time.Time
	hooks    []TransitionHook

	windowMu sync.Mutex
	window   queue.DateSelection
}

func NewQueueUsecase(
	log *logrus.Logger,
	api repository.AppointmentAPI,
	store *queue.Store,
	audit service.AuditService,
	handoff *service.HandoffService,
	pageSize int,
) QueueUsecase {
	if pageSize <= 0 {
		pageSize = queue.DefaultPageSize
	}
	return &queueUsecase{
		log:      log,
		api:      api,
		store:    store,
		audit:    audit,
		handoff:  handoff,
		pageSize: pageSize,
		now:      time.Now,
	}
}

// RegisterHook appends a post-commit transition hook. Register everything
// during bootstrap, before the server accepts traffic.
func (u *queueUsecase) RegisterHook(hook TransitionHook) {
	u.hooks = append(u.hooks, hook)
}

// SelectRange resolves a quick-range token against the current date,
// re-fetches the window scoped to the resolved range, and replaces the
// working set. Pagination resets to page 1.
func (u *queueUsecase) SelectRange(ctx context.Context, rawToken string) (*dto.RangeSelectionResponse, error) {
	token, err := queue.ParseRangeToken(rawToken)
	if err != nil {
		return nil, err
	}

	selection, err := queue.ResolveQuickRange(token, u.now())
	if err != nil {
		return nil, err
	}

	records, err := u.api.FetchAppointments(ctx, selection)
	if err != nil {
		u.log.Warnf("Failed to fetch window for range %q: %+v", selection.Encode(), err)
		return nil, err
	}

	u.store.Load(records)
	u.windowMu.Lock()
	u.window = selection
	u.windowMu.Unlock()

	u.log.Infof("Window selected: token=%s, scope=%q, records=%d", token, selection.Encode(), len(records))

	stats := queue.ComputeStats(records, u.today())
	return &dto.RangeSelectionResponse{
		Token: string(token),
		Scope: selection.Encode(),
		Page:  1,
		Total: len(records),
		Stats: converter.StatsToResponse(stats),
	}, nil
}

// Refresh re-fetches the current window. The working set is replaced only
// on fetch success; a failed fetch leaves it untouched.
func (u *queueUsecase) Refresh(ctx context.Context) error {
	u.windowMu.Lock()
	scope := u.window
	u.windowMu.Unlock()

	records, err := u.api.FetchAppointments(ctx, scope)
	if err != nil {
		u.log.Warnf("Failed to refresh window %q: %+v", scope.Encode(), err)
		return err
	}

	u.store.Load(records)
	u.log.Infof("Window refreshed: scope=%q, records=%d", scope.Encode(), len(records))
	return nil
}

// List runs the filter/sort/paginate pipeline over a snapshot of the
// working set. Pure derivation; no fetch.
func (u *queueUsecase) List(ctx context.Context, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, queue.Page, error) {
	pageSize := req.Limit
	if pageSize <= 0 {
		pageSize = u.pageSize
	}

	q := queue.Query{
		Search:        req.Search,
		Date:          queue.ParseDateFilter(req.Date),
		VisitType:     req.VisitType,
		Tags:          req.Tags,
		PaymentStatus: entity.PaymentStatus(req.PaymentStatus),
		Status:        entity.AppointmentStatus(req.Status),
		FollowUpOnly:  req.FollowUp,
		Page:          req.Page,
		PageSize:      pageSize,
	}

	page := queue.Run(u.store.Snapshot(), q)

	resp := &dto.AppointmentListResponse{}
	if req.View == "cards" {
		resp.Cards = converter.AppointmentsToCards(page.Items)
	} else {
		resp.Appointments = converter.AppointmentsToResponses(page.Items)
	}
	return resp, page, nil
}

// Stats derives the named counters from a snapshot of the working set
func (u *queueUsecase) Stats(ctx context.Context) (*dto.QueueStatsResponse, error) {
	counters := queue.ComputeStats(u.store.Snapshot(), u.today())
	return converter.StatsToResponse(counters), nil
}

// UpdateStatus applies a workflow-status transition.
//
// Flow:
// 1. Validate the target status (any->any is allowed; the remote system is
//    the authority on legality)
// 2. Look up the record in the working set
// 3. Issue the remote write - on failure nothing local changes
// 4. Patch the working set and recompute statistics
// 5. Record the audit row (non-fatal)
// 6. Run post-commit hooks; a transition to completed carries the billing
//    handoff context
func (u *queueUsecase) UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus, actorID *uuid.UUID) (*dto.TransitionResponse, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	apt, ok := u.store.Get(id)
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	previous := apt.Status

	if err := u.api.UpdateStatus(ctx, id, status); err != nil {
		u.log.Warnf("Failed to update status for appointment %s: %+v", id, err)
		return nil, err
	}

	if !u.store.Patch(id, queue.Patch{Status: &status}) {
		// The window was replaced while the write was in flight; the remote
		// change stands, there is just nothing local left to patch.
		u.log.Warnf("Appointment %s left the window during status update", id)
	}
	apt.Status = status

	if u.audit != nil {
		_ = u.audit.LogTransition(ctx, actorID, entity.AuditActionStatusUpdate, id, string(previous), string(status))
	}

	event := TransitionEvent{
		AppointmentID: id,
		PatientID:     apt.PatientRecordID,
		Field:         TransitionFieldStatus,
		From:          string(previous),
		To:            string(status),
		Completed:     status == entity.AppointmentStatusCompleted,
	}
	u.runHooks(ctx, event)

	u.log.Infof("Status updated: appointment=%s, %s -> %s", id, previous, status)

	resp := &dto.TransitionResponse{
		Appointment: converter.AppointmentToResponse(&apt),
		Stats:       converter.StatsToResponse(queue.ComputeStats(u.store.Snapshot(), u.today())),
	}
	if event.Completed {
		resp.BillingHandoff = &dto.BillingHandoffResponse{
			PatientID:     apt.PatientRecordID,
			AppointmentID: id,
		}
	}
	return resp, nil
}

// UpdatePayment applies a payment-status transition. The persistence path
// branches on whether a bill already exists: with a bill id the write
// targets the bill record, without one it targets the appointment and the
// remote side locates or creates the bill.
func (u *queueUsecase) UpdatePayment(ctx context.Context, id string, status entity.PaymentStatus, actorID *uuid.UUID) (*dto.TransitionResponse, error) {
	if !status.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}

	apt, ok := u.store.Get(id)
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	previous := apt.PaymentStatus

	var (
		receipt *entity.BillReceipt
		path    string
		err     error
	)
	if apt.HasBill() {
		path = "bill"
		receipt, err = u.api.UpdateBillPayment(ctx, apt.BillID, status)
	} else {
		path = "appointment"
		receipt, err = u.api.UpdateAppointmentPayment(ctx, apt.ID, status)
	}
	if err != nil {
		u.log.Warnf("Failed to update payment for appointment %s via %s path: %+v", id, path, err)
		return nil, err
	}

	patch := queue.Patch{PaymentStatus: &status}
	if receipt != nil && receipt.BillID != "" && receipt.BillID != apt.BillID {
		patch.BillID = &receipt.BillID
	}
	if !u.store.Patch(id, patch) {
		u.log.Warnf("Appointment %s left the window during payment update", id)
	}
	apt.PaymentStatus = status
	if patch.BillID != nil {
		apt.BillID = *patch.BillID
	}

	if u.audit != nil {
		_ = u.audit.LogTransition(ctx, actorID, entity.AuditActionPaymentUpdate, id, string(previous), string(status))
	}

	u.runHooks(ctx, TransitionEvent{
		AppointmentID: id,
		PatientID:     apt.PatientRecordID,
		Field:         TransitionFieldPayment,
		From:          string(previous),
		To:            string(status),
	})

	u.log.Infof("Payment updated: appointment=%s, %s -> %s (%s path)", id, previous, status, path)

	return &dto.TransitionResponse{
		Appointment: converter.AppointmentToResponse(&apt),
		Stats:       converter.StatsToResponse(queue.ComputeStats(u.store.Snapshot(), u.today())),
		PaymentPath: path,
		Bill:        converter.BillReceiptToResponse(receipt),
	}, nil
}

// ReminderLink formats the WhatsApp deep link for one appointment. Pure
// formatting; nothing is sent.
func (u *queueUsecase) ReminderLink(ctx context.Context, id string) (*dto.ReminderLinkResponse, error) {
	apt, ok := u.store.Get(id)
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	phone, message, link := u.handoff.WhatsAppLink(apt)
	return &dto.ReminderLinkResponse{
		Phone:   phone,
		Message: message,
		Link:    link,
	}, nil
}

func (u *queueUsecase) runHooks(ctx context.Context, event TransitionEvent) {
	for _, hook := range u.hooks {
		hook(ctx, event)
	}
}

func (u *queueUsecase) today() string {
	return u.now().Format(queue.DateLayout)
}
