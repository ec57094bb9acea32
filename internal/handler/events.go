package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"timecal/internal/calendar"
	"timecal/internal/i18n"
	"timecal/internal/model"
)

// EventHandler exposes the calendar event collection over HTTP.
type EventHandler struct {
	svc    calendar.EventService
	bundle *i18n.Bundle
}

func NewEventHandler(svc calendar.EventService, bundle *i18n.Bundle) *EventHandler {
	return &EventHandler{svc: svc, bundle: bundle}
}

func (h *EventHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/events", h.List)
	r.Post("/api/events", h.Create)
	r.Get("/api/events/{id}", h.Get)
	r.Put("/api/events/{id}", h.Update)
	r.Delete("/api/events/{id}", h.Delete)
}

// eventGetter is the optional single-event lookup some services support.
type eventGetter interface {
	GetEventByID(ctx context.Context, id string) (*model.CalendarEvent, error)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	getter, ok := h.svc.(eventGetter)
	if !ok {
		writeError(w, http.StatusNotFound, "event lookup not supported")
		return
	}
	event, err := getter.GetEventByID(r.Context(), id)
	if err != nil {
		log.Printf("get event %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "could not load event")
		return
	}
	if event == nil {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.GetEvents(r.Context())
	if err != nil {
		log.Printf("list events: %v", err)
		writeError(w, http.StatusInternalServerError, "could not load events")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	event, ok := decodeEvent(w, r)
	if !ok {
		return
	}
	created, err := h.svc.CreateEvent(r.Context(), event)
	if err != nil {
		log.Printf("create event: %v", err)
		writeError(w, http.StatusInternalServerError, "could not create event")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	event, ok := decodeEvent(w, r)
	if !ok {
		return
	}
	event.ID = chi.URLParam(r, "id")
	updated, err := h.svc.EditEvent(r.Context(), event)
	if err != nil {
		log.Printf("edit event %s: %v", event.ID, err)
		writeError(w, http.StatusInternalServerError, "could not update event")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.DeleteEvent(r.Context(), id); err != nil {
		log.Printf("delete event %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "could not delete event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeEvent(w http.ResponseWriter, r *http.Request) (model.CalendarEvent, bool) {
	var event model.CalendarEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, http.StatusBadRequest, "malformed event payload")
		return model.CalendarEvent{}, false
	}
	if event.RequestType != "" && !event.RequestType.Valid() {
		writeError(w, http.StatusBadRequest, "unknown request type")
		return model.CalendarEvent{}, false
	}
	if event.RequestStatus != "" && !event.RequestStatus.Valid() {
		writeError(w, http.StatusBadRequest, "unknown request status")
		return model.CalendarEvent{}, false
	}
	return event, true
}

// LocaleMiddleware resolves the request's Accept-Language header to a
// supported locale and stores it in the context.
func LocaleMiddleware(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := bundle.Match(r.Header.Get("Accept-Language"))
			next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), locale)))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
