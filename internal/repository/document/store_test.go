package document

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenitypath/hospital-api/internal/model"
)

func TestOpenSeedsEmptyBackend(t *testing.T) {
	backend := NewMemoryBackend()
	store, err := Open(context.Background(), backend)
	require.NoError(t, err)

	var doc model.Document
	require.NoError(t, store.view(func(d *model.Document) error {
		doc = *d
		return nil
	}))

	assert.Equal(t, "Serenity Path", doc.Content.HospitalName.EN)
	require.Len(t, doc.Team, 1)
	assert.Equal(t, "1", doc.Team[0].ID)
	assert.Len(t, doc.Team[0].Availability, 2)

	// Seeding must also have persisted the document.
	data, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestOpenLoadsExistingDocument(t *testing.T) {
	backend := NewMemoryBackend()
	doc := SeedDocument()
	doc.Content.HospitalName.EN = "Renamed Hospital"
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, backend.Save(context.Background(), data))

	store, err := Open(context.Background(), backend)
	require.NoError(t, err)

	require.NoError(t, store.view(func(d *model.Document) error {
		assert.Equal(t, "Renamed Hospital", d.Content.HospitalName.EN)
		return nil
	}))
}

func TestOpenNormalizesMissingArrays(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Save(context.Background(), []byte(`{"content":{}}`)))

	store, err := Open(context.Background(), backend)
	require.NoError(t, err)

	require.NoError(t, store.view(func(d *model.Document) error {
		assert.NotNil(t, d.Team)
		assert.NotNil(t, d.PatientBookings)
		assert.NotNil(t, d.Appointments)
		assert.NotNil(t, d.Subscribers)
		return nil
	}))
}

func TestUpdateFailureLeavesDocumentUntouched(t *testing.T) {
	store, err := Open(context.Background(), NewMemoryBackend())
	require.NoError(t, err)

	err = store.update(context.Background(), func(d *model.Document) error {
		d.Team = nil
		return ErrNotFound
	})
	require.Error(t, err)

	require.NoError(t, store.view(func(d *model.Document) error {
		assert.Len(t, d.Team, 1)
		return nil
	}))
}

func TestUpdatePersistsWholeDocument(t *testing.T) {
	backend := NewMemoryBackend()
	store, err := Open(context.Background(), backend)
	require.NoError(t, err)

	require.NoError(t, store.update(context.Background(), func(d *model.Document) error {
		d.Subscribers = append(d.Subscribers, model.Subscriber{Email: "a@b.c"})
		return nil
	}))

	// A second store over the same backend sees the write.
	reopened, err := Open(context.Background(), backend)
	require.NoError(t, err)
	require.NoError(t, reopened.view(func(d *model.Document) error {
		require.Len(t, d.Subscribers, 1)
		assert.Equal(t, "a@b.c", d.Subscribers[0].Email)
		return nil
	}))
}

func TestListCopiesDoNotAliasDocument(t *testing.T) {
	store, err := Open(context.Background(), NewMemoryBackend())
	require.NoError(t, err)
	repo := NewTeamRepository(store)

	members, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 1)

	members[0].Name.EN = "mutated"

	fresh, err := repo.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh.Name.EN)
}
