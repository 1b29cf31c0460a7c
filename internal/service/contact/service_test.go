package contact

import (
	"context"
	"testing"

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
	return NewService(document.NewContactRepository(store))
}

func TestSubmitRequestStartsNew(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.SubmitRequest(context.Background(), &model.CreateContactRequest{
		Name: "Alex Doe", Email: "alex@example.com", Message: "please call back",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ContactStatusNew, created.Status)
	assert.NotEmpty(t, created.ID)

	require.NoError(t, svc.UpdateRequestStatus(context.Background(), created.ID, model.ContactStatusContacted))
	requests, err := svc.ListRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, model.ContactStatusContacted, requests[0].Status)
}

func TestAnonymousSuggestion(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.SubmitSuggestion(context.Background(), &model.CreateSuggestionRequest{
		Message: "more parking",
	})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", created.Name)
}

func TestSubscribeRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Subscribe(context.Background(), "news@example.com")
	require.NoError(t, err)

	_, err = svc.Subscribe(context.Background(), "News@Example.com")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)

	subscribers, err := svc.ListSubscribers(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, subscribers, 1)
}

func TestListSubscribersSearch(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Subscribe(context.Background(), "alex@example.com")
	require.NoError(t, err)
	_, err = svc.Subscribe(context.Background(), "sam@other.org")
	require.NoError(t, err)

	matched, err := svc.ListSubscribers(context.Background(), "EXAMPLE")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "alex@example.com", matched[0].Email)
}

func TestUnsubscribe(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Subscribe(context.Background(), "news@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe(context.Background(), "news@example.com"))

	subscribers, err := svc.ListSubscribers(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, subscribers)
}
