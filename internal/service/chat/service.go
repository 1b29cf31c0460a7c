// Package chat runs the public AI assistant. Conversation history lives in an
// in-memory TTL cache keyed by conversation id; a circuit breaker guards the
// model backend and failures degrade to a canned reply naming the hospital's
// phone number.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
	"github.com/serenitypath/hospital-api/pkg/circuitbreaker"
)

const maxHistoryTurns = 20

type Service struct {
	client      Client
	contentRepo repository.ContentRepository
	teamRepo    repository.TeamRepository
	catalogRepo repository.CatalogRepository
	history     *gocache.Cache
	breaker     *circuitbreaker.CircuitBreaker
}

func NewService(
	client Client,
	contentRepo repository.ContentRepository,
	teamRepo repository.TeamRepository,
	catalogRepo repository.CatalogRepository,
	historyTTL time.Duration,
) *Service {
	if historyTTL <= 0 {
		historyTTL = 30 * time.Minute
	}
	return &Service{
		client:      client,
		contentRepo: contentRepo,
		teamRepo:    teamRepo,
		catalogRepo: catalogRepo,
		history:     gocache.New(historyTTL, 2*historyTTL),
		breaker: circuitbreaker.New(circuitbreaker.Settings{
			Name:        "gemini",
			MaxFailures: 3,
			Timeout:     30 * time.Second,
		}),
	}
}

// Respond produces the assistant's reply for one turn. A blank conversation id
// starts a new conversation; the returned id addresses the cached history.
func (s *Service) Respond(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	content, err := s.contentRepo.GetContent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	cfg, err := s.contentRepo.GetChatConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat config: %w", err)
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}
	history := s.loadHistory(conversationID)

	instruction, err := s.buildInstruction(ctx, cfg, content, req.Persona)
	if err != nil {
		return nil, err
	}

	var reply string
	genErr := s.breaker.Execute(func() error {
		var err error
		reply, err = s.client.Generate(ctx, instruction, history, req.Message)
		return err
	})
	if genErr != nil {
		log.Warn().Err(genErr).Str("conversation_id", conversationID).Msg("assistant backend unavailable")
		reply = fallbackReply(content)
	}

	history = append(history,
		model.ChatMessage{Role: model.ChatRoleUser, Parts: req.Message},
		model.ChatMessage{Role: model.ChatRoleModel, Parts: reply},
	)
	s.saveHistory(conversationID, history)

	return &model.ChatResponse{ConversationID: conversationID, Reply: reply}, nil
}

func (s *Service) buildInstruction(ctx context.Context, cfg *model.ChatConfig, content *model.ContentData, persona model.Persona) (string, error) {
	members, err := s.teamRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list team members: %w", err)
	}
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list services: %w", err)
	}

	staff := make([]string, 0, len(members))
	for _, m := range members {
		staff = append(staff, fmt.Sprintf("%s (%s)", m.Name.EN, m.Role.EN))
	}
	offered := make([]string, 0, len(services))
	for _, svc := range services {
		offered = append(offered, svc.Title.EN)
	}

	var sb strings.Builder
	sb.WriteString(cfg.SystemInstructions)
	sb.WriteString("\n\nCurrent Interaction Context:\n")
	fmt.Fprintf(&sb, "- User Persona: %s\n", persona)
	fmt.Fprintf(&sb, "- Specific Behavioral Guidance: %s\n", cfg.ForPersona(persona))
	fmt.Fprintf(&sb, "- Hospital Name: %s\n", content.HospitalName.EN)
	fmt.Fprintf(&sb, "- Services Offered: %s\n", strings.Join(offered, ", "))
	fmt.Fprintf(&sb, "- Professional Medical Team: %s\n", strings.Join(staff, ", "))
	fmt.Fprintf(&sb, "- Contact Phone: %s\n", content.Contact.Phone)
	fmt.Fprintf(&sb, "- Administrative Email: %s", content.Contact.Email)
	return sb.String(), nil
}

func (s *Service) loadHistory(conversationID string) []model.ChatMessage {
	if cached, ok := s.history.Get(conversationID); ok {
		if msgs, ok := cached.([]model.ChatMessage); ok {
			return msgs
		}
	}
	return nil
}

func (s *Service) saveHistory(conversationID string, msgs []model.ChatMessage) {
	if len(msgs) > maxHistoryTurns*2 {
		msgs = msgs[len(msgs)-maxHistoryTurns*2:]
	}
	s.history.SetDefault(conversationID, msgs)
}

func fallbackReply(content *model.ContentData) string {
	return fmt.Sprintf("Cleo is resting right now. Please call us directly at %s for immediate assistance.", content.Contact.Phone)
}

// Close releases the underlying model client.
func (s *Service) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
