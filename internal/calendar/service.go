package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"timecal/internal/model"
)

// EventService is the persistence collaborator for calendar events. A failed
// call means the operation did not happen; the caller's state is untouched.
type EventService interface {
	GetEvents(ctx context.Context) ([]model.CalendarEvent, error)
	CreateEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error)
	EditEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}

// LanguageStore persists the language preference. Last writer wins; there is
// a single user and a single tab, so nothing stronger is needed.
type LanguageStore interface {
	Language() (string, bool)
	SetLanguage(code string)
}

// MemoryLanguageStore keeps the preference in memory.
type MemoryLanguageStore struct {
	code string
}

func (s *MemoryLanguageStore) Language() (string, bool) { return s.code, s.code != "" }

func (s *MemoryLanguageStore) SetLanguage(code string) { s.code = code }

// SampleEventService is an in-memory EventService seeded with demo events,
// used when no real persistence collaborator is configured.
type SampleEventService struct {
	nextID int
	events map[string]model.CalendarEvent
}

// NewSampleEventService seeds a few requests around the given day.
func NewSampleEventService(around time.Time) *SampleEventService {
	s := &SampleEventService{nextID: 1, events: map[string]model.CalendarEvent{}}
	seed := func(dayOffset, startHour, startMinute, endHour, endMinute int, title string, rt model.RequestType, status model.RequestStatus) {
		day := around.AddDate(0, 0, dayOffset)
		start := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMinute, 0, 0, day.Location())
		end := time.Date(day.Year(), day.Month(), day.Day(), endHour, endMinute, 0, 0, day.Location())
		s.put(model.CalendarEvent{
			Title: title, Start: &start, End: &end,
			RequestType: rt, RequestStatus: status,
		})
	}
	seed(-1, 8, 30, 17, 30, "Annual leave", model.RequestTypePaidLeave, model.RequestStatusApproved)
	seed(1, 19, 0, 21, 0, "Release support", model.RequestTypeOvertime, model.RequestStatusPending)
	seed(3, 8, 30, 17, 30, "Work from home", model.RequestTypeRemoteWork, model.RequestStatusPending)
	return s
}

func (s *SampleEventService) put(event model.CalendarEvent) model.CalendarEvent {
	if event.ID == "" {
		event.ID = fmt.Sprintf("sample-%d", s.nextID)
		s.nextID++
	}
	s.events[event.ID] = event
	return event
}

func (s *SampleEventService) GetEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	out := make([]model.CalendarEvent, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start == nil || out[j].Start == nil {
			return out[i].ID < out[j].ID
		}
		return out[i].Start.Before(*out[j].Start)
	})
	return out, nil
}

func (s *SampleEventService) CreateEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error) {
	event.ID = ""
	return s.put(event), nil
}

func (s *SampleEventService) EditEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error) {
	if _, ok := s.events[event.ID]; !ok {
		return model.CalendarEvent{}, fmt.Errorf("event %q not found", event.ID)
	}
	s.events[event.ID] = event
	return event, nil
}

func (s *SampleEventService) DeleteEvent(ctx context.Context, id string) error {
	delete(s.events, id)
	return nil
}
