package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository/document"
	apperrors "github.com/serenitypath/hospital-api/pkg/errors"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := document.Open(context.Background(), document.NewMemoryBackend())
	require.NoError(t, err)
	return NewService(
		document.NewStaffSessionRepository(store),
		document.NewOnlineSessionRepository(store),
		document.NewTeamRepository(store),
	)
}

func TestCreateStaffSessionRequiresExistingMember(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateStaffSession(context.Background(), &model.CreateStaffSessionRequest{
		MemberID: "ghost", Title: "Ward round", Type: model.StaffSessionNote,
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestCreateStaffSessionDefaultsDate(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateStaffSession(context.Background(), &model.CreateStaffSessionRequest{
		MemberID: "1", Title: "Ward round", Type: model.StaffSessionNote,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), created.Date)
	assert.NotEmpty(t, created.ID)
}

func TestListStaffSessionsByMember(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateStaffSession(context.Background(), &model.CreateStaffSessionRequest{
		MemberID: "1", Title: "Ward round", Type: model.StaffSessionNote,
	})
	require.NoError(t, err)

	sessions, err := svc.ListStaffSessions(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	sessions, err = svc.ListStaffSessions(context.Background(), "other")
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestUpsertOnlineSessionDefaults(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.UpsertOnlineSession(context.Background(), "", &model.UpsertOnlineSessionRequest{
		MemberID: "1",
		Title:    model.LocalizedString{EN: "Coping with anxiety"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.PlatformInHouse, created.Platform)
	assert.Equal(t, model.OnlineSessionScheduled, created.Status)

	updated, err := svc.UpsertOnlineSession(context.Background(), created.ID, &model.UpsertOnlineSessionRequest{
		MemberID: "1",
		Title:    model.LocalizedString{EN: "Coping with anxiety"},
		Platform: model.PlatformZoom,
		Status:   model.OnlineSessionLive,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	sessions, err := svc.ListOnlineSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, model.PlatformZoom, sessions[0].Platform)
}
