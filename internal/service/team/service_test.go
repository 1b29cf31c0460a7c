package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository/document"
	apperrors "github.com/serenitypath/hospital-api/pkg/errors"
)

func newTestService(t *testing.T) (*Service, *document.Store) {
	t.Helper()
	store, err := document.Open(context.Background(), document.NewMemoryBackend())
	require.NoError(t, err)
	return NewService(document.NewTeamRepository(store)), store
}

func TestCreateMember(t *testing.T) {
	svc, _ := newTestService(t)

	member, err := svc.CreateMember(context.Background(), &model.CreateTeamMemberRequest{
		Name: model.LocalizedString{EN: "Dr. Omar Hassan", AR: "د. عمر حسن"},
		Role: model.LocalizedString{EN: "Psychiatrist"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.NotNil(t, member.Availability)
	assert.Empty(t, member.Availability)

	members, err := svc.ListMembers(context.Background())
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestUpdateMemberKeepsAvailability(t *testing.T) {
	svc, _ := newTestService(t)

	updated, err := svc.UpdateMember(context.Background(), "1", &model.CreateTeamMemberRequest{
		Name: model.LocalizedString{EN: "Dr. Sarah Johnson-Smith"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Johnson-Smith", updated.Name.EN)
	assert.Len(t, updated.Availability, 2)
}

func TestGetUnknownMember(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetMember(context.Background(), "ghost")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestDeleteMemberLeavesReferencesDangling(t *testing.T) {
	svc, store := newTestService(t)
	bookingRepo := document.NewBookingRepository(store)

	require.NoError(t, bookingRepo.Insert(context.Background(), &model.PatientBooking{
		ID: "b1", MemberID: "1", PatientName: "Alex Doe", TimeSlot: "09:00 - 12:00",
	}))

	require.NoError(t, svc.DeleteMember(context.Background(), "1"))

	_, err := svc.GetMember(context.Background(), "1")
	require.Error(t, err)

	booking, err := bookingRepo.Get(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "1", booking.MemberID)
	assert.Equal(t, "09:00 - 12:00", booking.TimeSlot)
}
