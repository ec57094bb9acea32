package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"timecal/internal/i18n"
	"timecal/internal/model"
)

type fakeService struct {
	events  []model.CalendarEvent
	deleted []string
}

func (f *fakeService) GetEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	return f.events, nil
}

func (f *fakeService) CreateEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error) {
	event.ID = "created-1"
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeService) EditEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error) {
	return event, nil
}

func (f *fakeService) DeleteEvent(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newRouter(t *testing.T, svc *fakeService) chi.Router {
	t.Helper()
	bundle, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}
	r := chi.NewRouter()
	NewEventHandler(svc, bundle).RegisterRoutes(r)
	return r
}

func TestListEvents(t *testing.T) {
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	svc := &fakeService{events: []model.CalendarEvent{
		{ID: "e1", Title: "Standup", Start: &start},
	}}
	r := newRouter(t, svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/events", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var got []model.CalendarEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e1" {
		t.Errorf("got %+v", got)
	}
}

func TestCreateEvent(t *testing.T) {
	svc := &fakeService{}
	r := newRouter(t, svc)

	body := `{"title":"Overtime tonight","requestType":"overtime"}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/api/events", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var got model.CalendarEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != "created-1" || got.RequestType != model.RequestTypeOvertime {
		t.Errorf("got %+v", got)
	}
}

func TestCreateEventRejectsUnknownType(t *testing.T) {
	svc := &fakeService{}
	r := newRouter(t, svc)

	body := `{"title":"x","requestType":"vacation"}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/api/events", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(svc.events) != 0 {
		t.Error("rejected event must not reach the service")
	}
}

func TestCreateEventRejectsMalformedBody(t *testing.T) {
	r := newRouter(t, &fakeService{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/api/events", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteEvent(t *testing.T) {
	svc := &fakeService{}
	r := newRouter(t, svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/events/e9", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != "e9" {
		t.Errorf("deleted = %v", svc.deleted)
	}
}

func TestLocaleMiddleware(t *testing.T) {
	bundle, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}

	var seen string
	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = bundle.LocaleFromContext(r.Context())
	})
	wrapped := LocaleMiddleware(bundle)(probe)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "vi-VN,vi;q=0.9")
	wrapped.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "vi" {
		t.Errorf("locale = %q, want vi", seen)
	}

	req = httptest.NewRequest("GET", "/", nil)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "en" {
		t.Errorf("locale without header = %q, want en", seen)
	}
}
