package model

import "time"

// RequestType categorizes a time/attendance request and selects which
// time-window policy applies.
type RequestType string

const (
	RequestTypeEditTimeSheet RequestType = "edit_timesheet"
	RequestTypePaidLeave     RequestType = "paid_leave"
	RequestTypeUnpaidLeave   RequestType = "unpaid_leave"
	RequestTypeRemoteWork    RequestType = "remote_work"
	RequestTypeOvertime      RequestType = "overtime"
)

// RequestTypes lists every valid request type, in display order.
func RequestTypes() []RequestType {
	return []RequestType{
		RequestTypeEditTimeSheet,
		RequestTypePaidLeave,
		RequestTypeUnpaidLeave,
		RequestTypeRemoteWork,
		RequestTypeOvertime,
	}
}

// Valid reports whether t is one of the known request types.
func (t RequestType) Valid() bool {
	switch t {
	case RequestTypeEditTimeSheet, RequestTypePaidLeave, RequestTypeUnpaidLeave,
		RequestTypeRemoteWork, RequestTypeOvertime:
		return true
	}
	return false
}

// RequestStatus is a read-only display attribute of a request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// CalendarEvent is a single calendar entry. The "selected event" edited in
// the dialog is a transient working copy; it is merged back into the event
// collection only on explicit save.
type CalendarEvent struct {
	ID            string        `bson:"-" json:"id,omitempty"`
	Title         string        `bson:"title" json:"title,omitempty"`
	Start         *time.Time    `bson:"start,omitempty" json:"start,omitempty"`
	End           *time.Time    `bson:"end,omitempty" json:"end,omitempty"`
	RequestType   RequestType   `bson:"request_type,omitempty" json:"requestType,omitempty"`
	RequestStatus RequestStatus `bson:"request_status,omitempty" json:"requestStatus,omitempty"`
	AllDay        bool          `bson:"all_day" json:"allDay,omitempty"`
	Desc          string        `bson:"desc" json:"desc,omitempty"`
}

// Clone returns a copy of the event with its own Start/End instances.
func (e CalendarEvent) Clone() CalendarEvent {
	out := e
	if e.Start != nil {
		s := *e.Start
		out.Start = &s
	}
	if e.End != nil {
		t := *e.End
		out.End = &t
	}
	return out
}
