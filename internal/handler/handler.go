package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/fansel/domburg-sub000/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	SetStatus(ctx context.Context, bookingID string, status domain.BookingStatus, actor string) (*domain.Booking, error)
	List(ctx context.Context, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

type SyncSvc interface {
	Reconcile(ctx context.Context, actor string) (*domain.SyncReport, error)
}

type ConflictSvc interface {
	FindAllConflicts(ctx context.Context) ([]domain.Conflict, error)
	DispatchNotifications(ctx context.Context) (int, error)
	Ignore(ctx context.Context, key string, typ domain.ConflictType, reason string) error
	Unignore(ctx context.Context, key string, typ domain.ConflictType) error
}

type LinkSvc interface {
	Link(ctx context.Context, eventIDs []string) error
	Unlink(ctx context.Context, eventIDs []string) error
	AreGrouped(ctx context.Context, eventIDs []string) (bool, error)
}

type ViewSvc interface {
	ProjectMonth(ctx context.Context, year int, month time.Month) (*domain.MonthGrid, error)
}

type Handler struct {
	bookingService  BookingSvc
	syncService     SyncSvc
	conflictService ConflictSvc
	linkService     LinkSvc
	viewService     ViewSvc
}

func NewHandler(
	bookingService BookingSvc,
	syncService SyncSvc,
	conflictService ConflictSvc,
	linkService LinkSvc,
	viewService ViewSvc,
) *Handler {
	return &Handler{
		bookingService:  bookingService,
		syncService:     syncService,
		conflictService: conflictService,
		linkService:     linkService,
		viewService:     viewService,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date, expected YYYY-MM-DD"})
		return
	}

	input := domain.CreateBookingInput{
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		StartDate:     start,
		EndDate:       end,
		AlternateRate: req.AlternateRate,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	var statuses []domain.BookingStatus
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			statuses = append(statuses, domain.BookingStatus(s))
		}
	}

	bookings, err := h.bookingService.List(c.Request.Context(), statuses)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	h.setBookingStatus(c, domain.BookingStatusApproved)
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	h.setBookingStatus(c, domain.BookingStatusRejected)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	h.setBookingStatus(c, domain.BookingStatusCancelled)
}

func (h *Handler) setBookingStatus(c *ginext.Context, status domain.BookingStatus) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}
	actor := c.DefaultQuery("actor", "admin")

	booking, err := h.bookingService.SetStatus(c.Request.Context(), id, status, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Статус поменялся — подтягиваем календарь в фоне.
	go h.syncService.Reconcile(context.WithoutCancel(c.Request.Context()), actor) //nolint:errcheck

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Sync

func (h *Handler) Sync(c *ginext.Context) {
	actor := c.DefaultQuery("actor", "admin")

	report, err := h.syncService.Reconcile(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSyncReportResponse(report))
}

// Conflicts

func (h *Handler) ListConflicts(c *ginext.Context) {
	conflicts, err := h.conflictService.FindAllConflicts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ConflictResponse, 0, len(conflicts))
	for _, conflict := range conflicts {
		resp = append(resp, dto.ToConflictResponse(conflict))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) NotifyConflicts(c *ginext.Context) {
	sent, err := h.conflictService.DispatchNotifications(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"sent": sent})
}

func (h *Handler) IgnoreConflict(c *ginext.Context) {
	var req dto.ConflictMarkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.conflictService.Ignore(c.Request.Context(), req.Key, domain.ConflictType(req.Type), req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ignored"})
}

func (h *Handler) UnignoreConflict(c *ginext.Context) {
	var req dto.ConflictMarkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.conflictService.Unignore(c.Request.Context(), req.Key, domain.ConflictType(req.Type)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "unignored"})
}

// Event linking

func (h *Handler) LinkEvents(c *ginext.Context) {
	var req dto.LinkEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.linkService.Link(c.Request.Context(), req.EventIDs); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "linked"})
}

func (h *Handler) UnlinkEvents(c *ginext.Context) {
	var req dto.UnlinkEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.linkService.Unlink(c.Request.Context(), req.EventIDs); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "unlinked"})
}

func (h *Handler) AreGrouped(c *ginext.Context) {
	raw := c.Query("ids")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "ids query parameter is required"})
		return
	}
	ids := strings.Split(raw, ",")

	grouped, err := h.linkService.AreGrouped(c.Request.Context(), ids)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"grouped": grouped})
}

// Calendar view

func (h *Handler) MonthGrid(c *ginext.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid month"})
		return
	}

	grid, err := h.viewService.ProjectMonth(c.Request.Context(), year, time.Month(month))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthGridResponse(grid))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrNotLinkable):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
