package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/fansel/domburg-sub000/internal/handler/dto"
	hmocks "github.com/fansel/domburg-sub000/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type handlerMocks struct {
	bookings  *hmocks.MockBookingSvc
	sync      *hmocks.MockSyncSvc
	conflicts *hmocks.MockConflictSvc
	links     *hmocks.MockLinkSvc
	view      *hmocks.MockViewSvc
}

func setupRouter(t *testing.T) (*handlerMocks, http.Handler) {
	t.Helper()
	m := &handlerMocks{
		bookings:  hmocks.NewMockBookingSvc(t),
		sync:      hmocks.NewMockSyncSvc(t),
		conflicts: hmocks.NewMockConflictSvc(t),
		links:     hmocks.NewMockLinkSvc(t),
		view:      hmocks.NewMockViewSvc(t),
	}

	h := NewHandler(m.bookings, m.sync, m.conflicts, m.links, m.view)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/sync", h.Sync)
		api.GET("/conflicts", h.ListConflicts)
		api.POST("/conflicts/notify", h.NotifyConflicts)
		api.POST("/conflicts/ignore", h.IgnoreConflict)
		api.POST("/events/link", h.LinkEvents)
		api.POST("/events/unlink", h.UnlinkEvents)
		api.GET("/events/grouped", h.AreGrouped)
		api.GET("/calendar/:year/:month", h.MonthGrid)
	}

	return m, r
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	booking := &domain.Booking{
		ID:         uuid.New().String(),
		GuestName:  "Alice",
		GuestEmail: "alice@example.com",
		Status:     domain.BookingStatusPending,
		StartDate:  time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 7, 17, 0, 0, 0, 0, time.UTC),
		PriceTotal: 725,
		CreatedAt:  time.Now(),
	}

	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		GuestName:  "Alice",
		GuestEmail: "alice@example.com",
		StartDate:  "2026-07-10",
		EndDate:    "2026-07-17",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.GuestName)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-07-10", resp.StartDate)
}

func TestHandler_CreateBooking_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"guest_name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"guest_name":"Alice","guest_email":"alice@example.com","start_date":"10.07.2026","end_date":"2026-07-17"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InvalidRange(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidDateRange)

	body := []byte(`{"guest_name":"Alice","guest_email":"alice@example.com","start_date":"2026-07-17","end_date":"2026-07-10"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().SetStatus(mock.Anything, id, domain.BookingStatusApproved, "admin").
		Return(&domain.Booking{ID: id, Status: domain.BookingStatusApproved}, nil)
	// approval kicks a background reconcile
	m.sync.EXPECT().Reconcile(mock.Anything, "admin").Return(&domain.SyncReport{}, nil).Maybe()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)

	time.Sleep(50 * time.Millisecond) // goroutine reconcile
}

func TestHandler_ApproveBooking_NamedActor(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().SetStatus(mock.Anything, id, domain.BookingStatusApproved, "fansel").
		Return(&domain.Booking{ID: id, Status: domain.BookingStatusApproved}, nil)
	m.sync.EXPECT().Reconcile(mock.Anything, "fansel").Return(&domain.SyncReport{}, nil).Maybe()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/approve?actor=fansel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	time.Sleep(50 * time.Millisecond)
}

func TestHandler_ApproveBooking_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/not-a-uuid/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveBooking_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().SetStatus(mock.Anything, id, domain.BookingStatusApproved, "admin").
		Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelBooking_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().SetStatus(mock.Anything, id, domain.BookingStatusCancelled, "admin").
		Return(nil, domain.ErrInvalidTransition)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListBookings_StatusFilter(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().List(mock.Anything, []domain.BookingStatus{
		domain.BookingStatusPending, domain.BookingStatusApproved,
	}).Return([]*domain.Booking{{ID: "b1", Status: domain.BookingStatusPending}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=pending,approved", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Sync ---

func TestHandler_Sync_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.sync.EXPECT().Reconcile(mock.Anything, "admin").
		Return(&domain.SyncReport{Created: 2, PulledFromCalendar: 1}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sync", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SyncReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, 1, resp.PulledFromCalendar)
}

// --- Conflicts ---

func TestHandler_ListConflicts_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.conflicts.EXPECT().FindAllConflicts(mock.Anything).Return([]domain.Conflict{
		&domain.BookingOverlapConflict{Bookings: []domain.Booking{{ID: "b1"}, {ID: "b2"}}},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/conflicts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ConflictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "OVERLAPPING_BOOKINGS", resp[0].Type)
	assert.Equal(t, "b1-b2", resp[0].Key)
	assert.Equal(t, "HIGH", resp[0].Severity)
	assert.Len(t, resp[0].Bookings, 2)
}

func TestHandler_NotifyConflicts_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.conflicts.EXPECT().DispatchNotifications(mock.Anything).Return(3, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/conflicts/notify", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sent":3}`, w.Body.String())
}

func TestHandler_IgnoreConflict_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.conflicts.EXPECT().Ignore(mock.Anything, "b1-b2", domain.ConflictOverlappingBookings, "double checked").
		Return(nil)

	body := []byte(`{"key":"b1-b2","type":"OVERLAPPING_BOOKINGS","reason":"double checked"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/conflicts/ignore", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_IgnoreConflict_UnknownType(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"key":"b1-b2","type":"SOMETHING_ELSE"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/conflicts/ignore", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Event linking ---

func TestHandler_LinkEvents_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.links.EXPECT().Link(mock.Anything, []string{"e1", "e2"}).Return(nil)

	body := []byte(`{"event_ids":["e1","e2"]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/link", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_LinkEvents_TooFew(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"event_ids":["e1"]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/link", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UnlinkEvents_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.links.EXPECT().Unlink(mock.Anything, []string{"e1"}).Return(nil)

	body := []byte(`{"event_ids":["e1"]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/unlink", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AreGrouped_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.links.EXPECT().AreGrouped(mock.Anything, []string{"e1", "e2"}).Return(true, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/grouped?ids=e1,e2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"grouped":true}`, w.Body.String())
}

func TestHandler_AreGrouped_MissingIDs(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/grouped", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Availability grid ---

func TestHandler_MonthGrid_Success(t *testing.T) {
	m, r := setupRouter(t)

	grid := &domain.MonthGrid{
		Year:  2026,
		Month: time.June,
		Days: map[int]domain.DayInfo{
			1: {Type: domain.DayArrival, ArrivingColor: domain.ColorBooking},
		},
		OccupiedCount: 1,
	}
	m.view.EXPECT().ProjectMonth(mock.Anything, 2026, time.June).Return(grid, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar/2026/6", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MonthGridResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 6, resp.Month)
	assert.Equal(t, 1, resp.OccupiedCount)
}

func TestHandler_MonthGrid_InvalidMonth(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar/2026/13", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
