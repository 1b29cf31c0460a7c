package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
	"github.com/serenitypath/hospital-api/internal/repository/document"
	"github.com/serenitypath/hospital-api/pkg/confirm"
	apperrors "github.com/serenitypath/hospital-api/pkg/errors"
)

type recordingSender struct {
	sent []string
}

func (r *recordingSender) SendBookingConfirmed(b *model.PatientBooking, _ string) error {
	r.sent = append(r.sent, b.ID)
	return nil
}

func newTestService(t *testing.T) (*Service, repository.TeamRepository, *recordingSender) {
	t.Helper()
	store, err := document.Open(context.Background(), document.NewMemoryBackend())
	require.NoError(t, err)

	teamRepo := document.NewTeamRepository(store)
	sender := &recordingSender{}
	svc := NewService(document.NewBookingRepository(store), teamRepo, sender)
	return svc, teamRepo, sender
}

func submitRequest() *model.SubmitBookingRequest {
	return &model.SubmitBookingRequest{
		MemberID: "1",
		Date:     "2026-09-07",
		SlotID:   "a1",
		Name:     "Alex Doe",
		Email:    "alex@example.com",
		Phone:    "555-0102",
		Reason:   "initial consultation",
	}
}

func TestSubmitSnapshotsSlotDisplay(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	assert.Equal(t, "09:00 - 12:00", created.TimeSlot)
	assert.Equal(t, model.BookingStatusPending, created.Status)
	assert.NotEmpty(t, created.ID)
}

func TestSubmitUnknownSlotFallsBackToPlaceholder(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := submitRequest()
	req.SlotID = "missing"
	created, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, model.UnresolvedSlotDisplay, created.TimeSlot)
}

func TestSubmitUnknownMemberStillAccepted(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := submitRequest()
	req.MemberID = "ghost"
	created, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ghost", created.MemberID)
	assert.Equal(t, model.UnresolvedSlotDisplay, created.TimeSlot)
}

func TestSnapshotSurvivesSlotRemoval(t *testing.T) {
	svc, teamRepo, _ := newTestService(t)

	created, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)
	require.NoError(t, teamRepo.RemoveSlot(context.Background(), "1", "a1"))

	bookings, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, created.TimeSlot, bookings[0].TimeSlot)
	assert.Equal(t, "09:00 - 12:00", bookings[0].TimeSlot)
}

func TestListNewestFirst(t *testing.T) {
	svc, _, _ := newTestService(t)

	first, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	bookings, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, second.ID, bookings[0].ID)
	assert.Equal(t, first.ID, bookings[1].ID)
}

func TestUpdateStatusAllowsAnyDirection(t *testing.T) {
	svc, _, _ := newTestService(t)
	created, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	for _, status := range []model.BookingStatus{
		model.BookingStatusCompleted,
		model.BookingStatusCancelled,
		model.BookingStatusPending,
		model.BookingStatusConfirmed,
	} {
		updated, err := svc.UpdateStatus(context.Background(), created.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateStatusRejectsUnknownLabel(t *testing.T) {
	svc, _, _ := newTestService(t)
	created, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, "snoozed")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), "nope", model.BookingStatusConfirmed)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestConfirmingSendsEmail(t *testing.T) {
	svc, _, sender := newTestService(t)
	created, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, model.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, []string{created.ID}, sender.sent)

	// Only confirmation triggers mail.
	_, err = svc.UpdateStatus(context.Background(), created.ID, model.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Len(t, sender.sent, 1)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	svc, _, _ := newTestService(t)
	created, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, confirm.Never())
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrConfirmationRequired, appErr.Code)

	bookings, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	require.NoError(t, svc.Delete(context.Background(), created.ID, confirm.Always()))
	bookings, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
