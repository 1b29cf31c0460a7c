package chat

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository/document"
)

type stubClient struct {
	reply       string
	err         error
	instruction string
	history     []model.ChatMessage
	calls       int
}

func (s *stubClient) Generate(_ context.Context, instruction string, history []model.ChatMessage, _ string) (string, error) {
	s.calls++
	s.instruction = instruction
	s.history = history
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubClient) Close() error { return nil }

func newTestService(t *testing.T, client Client) *Service {
	t.Helper()
	store, err := document.Open(context.Background(), document.NewMemoryBackend())
	require.NoError(t, err)
	return NewService(
		client,
		document.NewContentRepository(store),
		document.NewTeamRepository(store),
		document.NewCatalogRepository(store),
		time.Minute,
	)
}

func TestRespondBuildsContextualInstruction(t *testing.T) {
	client := &stubClient{reply: "hello"}
	svc := newTestService(t, client)

	resp, err := svc.Respond(context.Background(), &model.ChatRequest{
		Persona: model.PersonaPatient,
		Message: "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Reply)
	assert.NotEmpty(t, resp.ConversationID)

	assert.Contains(t, client.instruction, "Serenity Path")
	assert.Contains(t, client.instruction, "Dr. Sarah Johnson")
	assert.Contains(t, client.instruction, "Addiction Recovery")
	assert.Contains(t, client.instruction, "+1 234 567 890")
	assert.Contains(t, client.instruction, "User Persona: patient")
}

func TestRespondKeepsConversationHistory(t *testing.T) {
	client := &stubClient{reply: "reply"}
	svc := newTestService(t, client)

	first, err := svc.Respond(context.Background(), &model.ChatRequest{
		Persona: model.PersonaFamily,
		Message: "first",
	})
	require.NoError(t, err)
	assert.Empty(t, client.history)

	_, err = svc.Respond(context.Background(), &model.ChatRequest{
		ConversationID: first.ConversationID,
		Persona:        model.PersonaFamily,
		Message:        "second",
	})
	require.NoError(t, err)

	require.Len(t, client.history, 2)
	assert.Equal(t, model.ChatRoleUser, client.history[0].Role)
	assert.Equal(t, "first", client.history[0].Parts)
	assert.Equal(t, model.ChatRoleModel, client.history[1].Role)
}

func TestRespondFallsBackWhenBackendFails(t *testing.T) {
	client := &stubClient{err: fmt.Errorf("upstream down")}
	svc := newTestService(t, client)

	resp, err := svc.Respond(context.Background(), &model.ChatRequest{
		Persona: model.PersonaInquiry,
		Message: "hi",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "+1 234 567 890")
}

func TestBreakerShortCircuitsAfterRepeatedFailures(t *testing.T) {
	client := &stubClient{err: fmt.Errorf("upstream down")}
	svc := newTestService(t, client)

	for i := 0; i < 5; i++ {
		_, err := svc.Respond(context.Background(), &model.ChatRequest{
			Persona: model.PersonaPatient,
			Message: "hi",
		})
		require.NoError(t, err)
	}

	// After three consecutive failures the breaker stops calling the client.
	assert.Equal(t, 3, client.calls)
}
