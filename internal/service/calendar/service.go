// Package calendar derives the administrative timeline from staff sessions,
// legacy appointments and, optionally, patient bookings. The timeline is a
// pure projection; nothing here writes to the document.
package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
)

// Options controls which source lists feed the timeline. Patient bookings are
// excluded unless asked for, matching the admin console's default view.
type Options struct {
	IncludeBookings bool
}

type Service struct {
	sessionRepo     repository.StaffSessionRepository
	appointmentRepo repository.AppointmentRepository
	bookingRepo     repository.BookingRepository
	teamRepo        repository.TeamRepository
}

func NewService(
	sessionRepo repository.StaffSessionRepository,
	appointmentRepo repository.AppointmentRepository,
	bookingRepo repository.BookingRepository,
	teamRepo repository.TeamRepository,
) *Service {
	return &Service{
		sessionRepo:     sessionRepo,
		appointmentRepo: appointmentRepo,
		bookingRepo:     bookingRepo,
		teamRepo:        teamRepo,
	}
}

// Timeline loads the source lists and builds the grouped timeline.
func (s *Service) Timeline(ctx context.Context, opts Options) ([]model.CalendarDay, error) {
	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff sessions: %w", err)
	}
	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	var bookings []model.PatientBooking
	if opts.IncludeBookings {
		if bookings, err = s.bookingRepo.List(ctx); err != nil {
			return nil, fmt.Errorf("failed to list bookings: %w", err)
		}
	}
	members, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	return BuildTimeline(sessions, appointments, bookings, members), nil
}

// BuildTimeline groups the source events by their exact date string; two
// spellings of the same day are two groups. The result is deterministic: days
// with parseable dates sort ascending, unparseable ones follow in encounter
// order, and events keep source order with staff sessions first, then
// appointments, then bookings.
func BuildTimeline(
	sessions []model.StaffSession,
	appointments []model.Appointment,
	bookings []model.PatientBooking,
	members []model.TeamMember,
) []model.CalendarDay {
	byID := make(map[string]*model.TeamMember, len(members))
	for i := range members {
		byID[members[i].ID] = &members[i]
	}
	resolve := func(memberID string) model.MemberRef {
		return model.MemberRef{Member: byID[memberID]}
	}

	byDate := make(map[string][]model.CalendarEvent)
	add := func(ev model.CalendarEvent) {
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}

	for _, sess := range sessions {
		add(model.CalendarEvent{
			EventType: model.EventTypeStaff,
			ID:        sess.ID,
			Date:      sess.Date,
			Title:     sess.Title,
			Content:   sess.Content,
			Type:      sess.Type,
			Member:    resolve(sess.MemberID),
		})
	}
	for _, apt := range appointments {
		add(model.CalendarEvent{
			EventType: model.EventTypeAppointment,
			ID:        apt.ID,
			Date:      apt.Date,
			Title:     "Appt: " + apt.Name,
			Status:    string(apt.Status),
		})
	}
	for _, b := range bookings {
		add(model.CalendarEvent{
			EventType: model.EventTypeBooking,
			ID:        b.ID,
			Date:      b.Date,
			Title:     "Booking: " + b.PatientName,
			Content:   b.TimeSlot,
			Status:    string(b.Status),
			Member:    resolve(b.MemberID),
		})
	}

	dates := make([]string, 0, len(byDate))
	seen := make(map[string]bool, len(byDate))
	collect := func(date string) {
		if !seen[date] {
			seen[date] = true
			dates = append(dates, date)
		}
	}
	for _, sess := range sessions {
		collect(sess.Date)
	}
	for _, apt := range appointments {
		collect(apt.Date)
	}
	for _, b := range bookings {
		collect(b.Date)
	}

	sort.SliceStable(dates, func(i, j int) bool {
		ti, okI := parseDate(dates[i])
		tj, okJ := parseDate(dates[j])
		switch {
		case okI && okJ:
			return ti.Before(tj)
		case okI:
			return true
		default:
			return false
		}
	})

	days := make([]model.CalendarDay, 0, len(dates))
	for _, date := range dates {
		days = append(days, model.CalendarDay{Date: date, Events: byDate[date]})
	}
	return days
}

func parseDate(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	return t, err == nil
}

// Filter narrows a built timeline to one event type. Days left without events
// drop out entirely.
func Filter(days []model.CalendarDay, filter model.CalendarFilter) []model.CalendarDay {
	if filter == "" || filter == model.FilterAll {
		return days
	}

	var want model.CalendarEventType
	switch filter {
	case model.FilterStaffOnly:
		want = model.EventTypeStaff
	case model.FilterAppointmentOnly:
		want = model.EventTypeAppointment
	default:
		return days
	}

	out := make([]model.CalendarDay, 0, len(days))
	for _, day := range days {
		var events []model.CalendarEvent
		for _, ev := range day.Events {
			if ev.EventType == want {
				events = append(events, ev)
			}
		}
		if len(events) > 0 {
			out = append(out, model.CalendarDay{Date: day.Date, Events: events})
		}
	}
	return out
}
