package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"garagat/database"
	"garagat/models"
	"garagat/services/booking"
	"garagat/services/payment"
	"garagat/services/scheduling"
	"garagat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	err       error
	userID    string
	patch     models.DraftPatch
	dir       scheduling.Direction
	slotsDate time.Time
	method    string
}

func (f *fakeSessionService) view(id string) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{SessionID: id, Step: models.StepVehicleSelection}, nil
}

func (f *fakeSessionService) InitiateSession(_ context.Context, userID, _, _ string) (*models.BookingResponse, error) {
	f.userID = userID
	return f.view("s1")
}

func (f *fakeSessionService) GetSession(_ context.Context, userID, id string) (*models.BookingResponse, error) {
	f.userID = userID
	return f.view(id)
}

func (f *fakeSessionService) UpdateDraft(_ context.Context, userID, id string, p models.DraftPatch) (*models.BookingResponse, error) {
	f.userID = userID
	f.patch = p
	return f.view(id)
}

func (f *fakeSessionService) ShiftWindow(_ context.Context, _, id string, dir scheduling.Direction) (*models.BookingResponse, error) {
	f.dir = dir
	return f.view(id)
}

func (f *fakeSessionService) GetSlots(_ context.Context, _, _ string, date time.Time) ([]models.TimeSlot, error) {
	f.slotsDate = date
	if f.err != nil {
		return nil, f.err
	}
	return scheduling.TimeSlots([]time.Time{date.Add(21*time.Hour + 30*time.Minute)}), nil
}

func (f *fakeSessionService) Advance(_ context.Context, userID, id string) (*models.BookingResponse, error) {
	f.userID = userID
	return f.view(id)
}

func (f *fakeSessionService) Retreat(_ context.Context, _, id string) (*models.BookingResponse, error) {
	return f.view(id)
}

func (f *fakeSessionService) ConfirmBooking(_ context.Context, userID, id, method string) (*models.BookingResponse, error) {
	f.userID = userID
	f.method = method
	resp, err := f.view(id)
	if err != nil {
		return nil, err
	}
	resp.Step = models.StepCompleted
	resp.Booking = &models.Booking{ID: "b1"}
	return resp, nil
}

func (f *fakeSessionService) CancelSession(context.Context, string, string) error {
	return f.err
}

func newTestRouter(svc booking.BookingSessionService, loc *time.Location) *gin.Engine {
	return newTestRouterAs(svc, loc, "u1")
}

// newTestRouterAs mounts the booking routes for userID; "" means no JWT.
func newTestRouterAs(svc booking.BookingSessionService, loc *time.Location, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(utils.LoggerKey, zap.NewNop())
		if userID != "" {
			c.Set(utils.UserIDKey, userID)
		}
		c.Next()
	})
	bh := NewBookingHandler(svc, loc)
	g := r.Group("/api/booking/session")
	g.POST("", bh.InitiateSessionHandler)
	g.GET("/:sessionID", bh.GetSessionHandler)
	g.PATCH("/:sessionID/draft", bh.UpdateDraftHandler)
	g.POST("/:sessionID/window", bh.ShiftWindowHandler)
	g.GET("/:sessionID/slots", bh.GetSlotsHandler)
	g.POST("/:sessionID/advance", bh.AdvanceHandler)
	g.POST("/:sessionID/confirm", bh.ConfirmBookingHandler)
	g.DELETE("/:sessionID", bh.CancelSessionHandler)
	return r
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestInitiateSessionHandler(t *testing.T) {
	svc := &fakeSessionService{}
	r := newTestRouter(svc, time.UTC)

	rec := perform(r, http.MethodPost, "/api/booking/session", `{"providerId":"g1","serviceId":"oil"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	if svc.userID != "u1" {
		t.Fatalf("userID = %q", svc.userID)
	}
	var resp models.BookingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.SessionID != "s1" || resp.Step != models.StepVehicleSelection {
		t.Fatalf("unexpected response %+v", resp)
	}

	if rec := perform(r, http.MethodPost, "/api/booking/session", `{"providerId":"g1"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing serviceId: status = %d", rec.Code)
	}
}

func TestUpdateDraftHandlerParsesDateAndTime(t *testing.T) {
	dubai := time.FixedZone("GST", 4*60*60)
	svc := &fakeSessionService{}
	r := newTestRouter(svc, dubai)

	rec := perform(r, http.MethodPatch, "/api/booking/session/s1/draft", `{"date":"2024-06-09","time":"21:30"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	if svc.patch.SelectedDate == nil || !svc.patch.SelectedDate.Equal(time.Date(2024, 6, 9, 0, 0, 0, 0, dubai)) {
		t.Fatalf("date = %v", svc.patch.SelectedDate)
	}
	if svc.patch.SelectedTime == nil || *svc.patch.SelectedTime != (models.TimeOfDay{Hour: 21, Minute: 30}) {
		t.Fatalf("time = %v", svc.patch.SelectedTime)
	}

	for _, body := range []string{`{"date":"09/06/2024"}`, `{"time":"9pm"}`} {
		if rec := perform(r, http.MethodPatch, "/api/booking/session/s1/draft", body); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d", body, rec.Code)
		}
	}
}

func TestShiftWindowHandler(t *testing.T) {
	svc := &fakeSessionService{}
	r := newTestRouter(svc, time.UTC)

	if rec := perform(r, http.MethodPost, "/api/booking/session/s1/window", `{"direction":"next"}`); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.dir != scheduling.Forward {
		t.Fatalf("direction = %v", svc.dir)
	}
	if rec := perform(r, http.MethodPost, "/api/booking/session/s1/window", `{"direction":"up"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad direction: status = %d", rec.Code)
	}
}

func TestGetSlotsHandler(t *testing.T) {
	svc := &fakeSessionService{}
	r := newTestRouter(svc, time.UTC)

	rec := perform(r, http.MethodGet, "/api/booking/session/s1/slots?date=2024-06-08", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Date  string            `json:"date"`
		Slots []models.TimeSlot `json:"slots"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Date != "2024-06-08" || len(body.Slots) != 1 || body.Slots[0].Label != "9:30 PM" {
		t.Fatalf("unexpected body %+v", body)
	}

	if rec := perform(r, http.MethodGet, "/api/booking/session/s1/slots", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing date: status = %d", rec.Code)
	}
}

func TestConfirmBookingHandler(t *testing.T) {
	svc := &fakeSessionService{}
	r := newTestRouter(svc, time.UTC)

	rec := perform(r, http.MethodPost, "/api/booking/session/s1/confirm", `{"paymentMethod":" Tabby "}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	if svc.method != models.PaymentMethodTabby {
		t.Fatalf("method = %q", svc.method)
	}

	if rec := perform(r, http.MethodPost, "/api/booking/session/s1/confirm", ""); rec.Code != http.StatusCreated {
		t.Fatalf("empty body: status = %d", rec.Code)
	}
	if svc.method != "" {
		t.Fatalf("empty body should leave the method to the service, got %q", svc.method)
	}
}

func TestServiceErrorStatuses(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{booking.NewValidationError(models.StepVehicleSelection, "select a vehicle"), http.StatusUnprocessableEntity},
		{booking.ErrSessionNotFound, http.StatusNotFound},
		{fmt.Errorf("provider g9: %w", database.ErrNotFound), http.StatusNotFound},
		{booking.ErrSessionConflict, http.StatusConflict},
		{booking.ErrWizardCompleted, http.StatusConflict},
		{booking.ErrNotAtConfirmation, http.StatusConflict},
		{booking.ErrUnknownService, http.StatusBadRequest},
		{booking.ErrTimeWithoutDate, http.StatusBadRequest},
		{fmt.Errorf("%w: vehicle", booking.ErrFieldNotEditable), http.StatusBadRequest},
		{payment.ErrUnsupportedMethod, http.StatusBadRequest},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		svc := &fakeSessionService{err: tc.err}
		r := newTestRouter(svc, time.UTC)
		rec := perform(r, http.MethodPost, "/api/booking/session/s1/advance", "")
		if rec.Code != tc.want {
			t.Fatalf("%v: status = %d, want %d", tc.err, rec.Code, tc.want)
		}
		var body utils.ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Message == "" {
			t.Fatalf("%v: expected an error body, got %s", tc.err, rec.Body.String())
		}
	}
}

func TestCancelSessionHandler(t *testing.T) {
	r := newTestRouter(&fakeSessionService{}, time.UTC)
	if rec := perform(r, http.MethodDelete, "/api/booking/session/s1", ""); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	r = newTestRouter(&fakeSessionService{err: booking.ErrSessionNotFound}, time.UTC)
	if rec := perform(r, http.MethodDelete, "/api/booking/session/s1", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("missing session: status = %d", rec.Code)
	}
}

func TestSessionHandlersPassCaller(t *testing.T) {
	requests := []struct{ method, path, body string }{
		{http.MethodGet, "/api/booking/session/s1", ""},
		{http.MethodPatch, "/api/booking/session/s1/draft", `{"vehicleId":"car1"}`},
		{http.MethodPost, "/api/booking/session/s1/advance", ""},
		{http.MethodPost, "/api/booking/session/s1/confirm", ""},
	}
	for _, rq := range requests {
		svc := &fakeSessionService{}
		rec := perform(newTestRouterAs(svc, time.UTC, "u7"), rq.method, rq.path, rq.body)
		if rec.Code >= 300 {
			t.Fatalf("%s %s: status = %d", rq.method, rq.path, rec.Code)
		}
		if svc.userID != "u7" {
			t.Fatalf("%s %s: userID = %q, want u7", rq.method, rq.path, svc.userID)
		}

		anon := &fakeSessionService{}
		rec = perform(newTestRouterAs(anon, time.UTC, ""), rq.method, rq.path, rq.body)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without a customer: status = %d", rq.method, rq.path, rec.Code)
		}
		if anon.userID != "" {
			t.Fatalf("%s %s reached the service without a customer", rq.method, rq.path)
		}
	}
}
