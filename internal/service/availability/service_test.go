package availability

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
	"github.com/serenitypath/hospital-api/internal/repository/document"
	apperrors "github.com/serenitypath/hospital-api/pkg/errors"
)

func newTestService(t *testing.T, policy SlotPolicy) (*Service, repository.TeamRepository) {
	t.Helper()
	store, err := document.Open(context.Background(), document.NewMemoryBackend())
	require.NoError(t, err)
	repo := document.NewTeamRepository(store)
	return NewService(repo, policy), repo
}

func TestAddSlotAppendsWithFreshID(t *testing.T) {
	svc, repo := newTestService(t, nil)

	slot, err := svc.AddSlot(context.Background(), "1", &model.AddSlotRequest{
		Day: model.Friday, StartTime: "10:00", EndTime: "11:30",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, slot.ID)
	assert.NotEqual(t, "a1", slot.ID)
	assert.NotEqual(t, "a2", slot.ID)

	member, err := repo.Get(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, member.Availability, 3)
	assert.Equal(t, "10:00 - 11:30", member.Availability[2].Display())
}

func TestAddSlotAcceptsOverlapByDefault(t *testing.T) {
	svc, _ := newTestService(t, nil)

	// Exactly overlaps the seeded Monday slot.
	_, err := svc.AddSlot(context.Background(), "1", &model.AddSlotRequest{
		Day: model.Monday, StartTime: "09:00", EndTime: "12:00",
	})
	assert.NoError(t, err)

	// Inverted window is stored verbatim too.
	_, err = svc.AddSlot(context.Background(), "1", &model.AddSlotRequest{
		Day: model.Monday, StartTime: "15:00", EndTime: "09:00",
	})
	assert.NoError(t, err)
}

func TestAddSlotPolicyRejection(t *testing.T) {
	rejectAll := PolicyFunc(func([]model.AvailabilitySlot, model.AvailabilitySlot) error {
		return fmt.Errorf("no capacity")
	})
	svc, repo := newTestService(t, rejectAll)

	_, err := svc.AddSlot(context.Background(), "1", &model.AddSlotRequest{
		Day: model.Friday, StartTime: "10:00", EndTime: "11:00",
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)

	member, err := repo.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, member.Availability, 2)
}

func TestAddSlotUnknownMember(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.AddSlot(context.Background(), "ghost", &model.AddSlotRequest{
		Day: model.Friday, StartTime: "10:00", EndTime: "11:00",
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestRemoveSlot(t *testing.T) {
	svc, repo := newTestService(t, nil)

	require.NoError(t, svc.RemoveSlot(context.Background(), "1", "a1"))
	member, err := repo.Get(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, member.Availability, 1)
	assert.Equal(t, "a2", member.Availability[0].ID)

	// Removing the same slot again is a no-op.
	require.NoError(t, svc.RemoveSlot(context.Background(), "1", "a1"))
	member, err = repo.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, member.Availability, 1)
}
