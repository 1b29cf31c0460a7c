package calendar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository/document"
)

func fixtureMembers() []model.TeamMember {
	return []model.TeamMember{
		{ID: "m1", Name: model.LocalizedString{EN: "Dr. Sarah Johnson"}},
	}
}

func fixtureSessions() []model.StaffSession {
	return []model.StaffSession{
		{ID: "s1", MemberID: "m1", Title: "Ward round", Type: model.StaffSessionNote, Date: "2026-09-07"},
		{ID: "s2", MemberID: "gone", Title: "Handover", Type: model.StaffSessionReport, Date: "2026-09-08"},
	}
}

func fixtureAppointments() []model.Appointment {
	return []model.Appointment{
		{ID: "ap1", Name: "Alex Doe", Date: "2026-09-07", Status: model.AppointmentStatusPending},
	}
}

func fixtureBookings() []model.PatientBooking {
	return []model.PatientBooking{
		{ID: "b1", PatientName: "Sam Lee", MemberID: "m1", Date: "2026-09-07", TimeSlot: "09:00 - 12:00", Status: model.BookingStatusPending},
	}
}

func TestBuildTimelineGroupsByExactDateString(t *testing.T) {
	sessions := []model.StaffSession{
		{ID: "s1", Date: "2026-09-07", Title: "a"},
		{ID: "s2", Date: "07/09/2026", Title: "b"},
	}

	days := BuildTimeline(sessions, nil, nil, nil)
	require.Len(t, days, 2)

	// Parseable dates sort first; other spellings follow in encounter order.
	assert.Equal(t, "2026-09-07", days[0].Date)
	assert.Equal(t, "07/09/2026", days[1].Date)
}

func TestBuildTimelineResolvesMembers(t *testing.T) {
	days := BuildTimeline(fixtureSessions(), nil, nil, fixtureMembers())
	require.Len(t, days, 2)

	resolved := days[0].Events[0]
	require.True(t, resolved.Member.Resolved())
	assert.Equal(t, "Dr. Sarah Johnson", resolved.Member.Member.Name.EN)

	dangling := days[1].Events[0]
	assert.False(t, dangling.Member.Resolved())
}

func TestBuildTimelineEventShape(t *testing.T) {
	days := BuildTimeline(fixtureSessions(), fixtureAppointments(), fixtureBookings(), fixtureMembers())

	var byID = map[string]model.CalendarEvent{}
	for _, day := range days {
		for _, ev := range day.Events {
			byID[ev.ID] = ev
		}
	}

	assert.Equal(t, model.EventTypeStaff, byID["s1"].EventType)
	assert.Equal(t, "Ward round", byID["s1"].Title)

	assert.Equal(t, model.EventTypeAppointment, byID["ap1"].EventType)
	assert.Equal(t, "Appt: Alex Doe", byID["ap1"].Title)
	assert.Equal(t, "pending", byID["ap1"].Status)

	assert.Equal(t, model.EventTypeBooking, byID["b1"].EventType)
	assert.Equal(t, "Booking: Sam Lee", byID["b1"].Title)
	assert.Equal(t, "09:00 - 12:00", byID["b1"].Content)
}

func TestBuildTimelineDeterministic(t *testing.T) {
	a := BuildTimeline(fixtureSessions(), fixtureAppointments(), fixtureBookings(), fixtureMembers())
	b := BuildTimeline(fixtureSessions(), fixtureAppointments(), fixtureBookings(), fixtureMembers())
	assert.Equal(t, a, b)
}

func TestFilter(t *testing.T) {
	days := BuildTimeline(fixtureSessions(), fixtureAppointments(), nil, fixtureMembers())

	staffOnly := Filter(days, model.FilterStaffOnly)
	for _, day := range staffOnly {
		for _, ev := range day.Events {
			assert.Equal(t, model.EventTypeStaff, ev.EventType)
		}
	}

	apptOnly := Filter(days, model.FilterAppointmentOnly)
	require.Len(t, apptOnly, 1)
	assert.Equal(t, "2026-09-07", apptOnly[0].Date)
	require.Len(t, apptOnly[0].Events, 1)
	assert.Equal(t, "ap1", apptOnly[0].Events[0].ID)

	assert.Equal(t, days, Filter(days, model.FilterAll))
	assert.Equal(t, days, Filter(days, ""))
}

func TestTimelineExcludesBookingsByDefault(t *testing.T) {
	store, err := document.Open(context.Background(), document.NewMemoryBackend())
	require.NoError(t, err)

	sessionRepo := document.NewStaffSessionRepository(store)
	appointmentRepo := document.NewAppointmentRepository(store)
	bookingRepo := document.NewBookingRepository(store)
	teamRepo := document.NewTeamRepository(store)

	require.NoError(t, sessionRepo.Insert(context.Background(), &model.StaffSession{
		ID: "s1", MemberID: "1", Title: "Ward round", Date: "2026-09-07",
	}))
	require.NoError(t, bookingRepo.Insert(context.Background(), &model.PatientBooking{
		ID: "b1", PatientName: "Sam Lee", MemberID: "1", Date: "2026-09-07",
	}))

	svc := NewService(sessionRepo, appointmentRepo, bookingRepo, teamRepo)

	days, err := svc.Timeline(context.Background(), Options{})
	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Len(t, days[0].Events, 1)
	assert.Equal(t, model.EventTypeStaff, days[0].Events[0].EventType)

	days, err = svc.Timeline(context.Background(), Options{IncludeBookings: true})
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Len(t, days[0].Events, 2)
}
