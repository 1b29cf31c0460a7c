package model

// CalendarEventType tags the source list a timeline event came from.
type CalendarEventType string

const (
	EventTypeStaff       CalendarEventType = "staff"
	EventTypeAppointment CalendarEventType = "appointment"
	EventTypeBooking     CalendarEventType = "booking"
)

// MemberRef is the outcome of resolving a weak memberId reference. Member is
// nil when the reference did not resolve.
type MemberRef struct {
	Member *TeamMember `json:"member,omitempty"`
}

// Resolved reports whether the reference found a live team member.
func (r MemberRef) Resolved() bool { return r.Member != nil }

// CalendarEvent is a transient union of a staff session and a legacy
// appointment, produced for the administrative timeline. It is never persisted.
type CalendarEvent struct {
	EventType CalendarEventType `json:"eventType"`
	ID        string            `json:"id"`
	Date      string            `json:"date"`
	Title     string            `json:"title"`
	Content   string            `json:"content,omitempty"`
	Status    string            `json:"status,omitempty"`
	Type      StaffSessionType  `json:"type,omitempty"`
	Member    MemberRef         `json:"member"`
}

// CalendarDay is one date group of the aggregated timeline.
type CalendarDay struct {
	Date   string          `json:"date"`
	Events []CalendarEvent `json:"events"`
}

// CalendarFilter narrows a built timeline without re-deriving the grouping.
type CalendarFilter string

const (
	FilterAll             CalendarFilter = "all"
	FilterStaffOnly       CalendarFilter = "staff"
	FilterAppointmentOnly CalendarFilter = "appointment"
)
