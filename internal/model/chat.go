package model

// PersonaPrompts carries the per-persona behavioral guidance appended to the
// assistant's system instruction.
type PersonaPrompts struct {
	Patient string `json:"patient"`
	Family  string `json:"family"`
	Inquiry string `json:"inquiry"`
}

// ChatConfig is the admin-editable configuration of the AI assistant.
type ChatConfig struct {
	SystemInstructions string          `json:"systemInstructions"`
	Prompts            PersonaPrompts  `json:"prompts"`
	AINote             LocalizedString `json:"aiNote"`
	LiveAgentEnabled   bool            `json:"liveAgentEnabled"`
	LiveAgentStatus    LocalizedString `json:"liveAgentStatus"`
}

// ForPersona returns the guidance for the given persona, empty for unknown or
// live personas.
func (c ChatConfig) ForPersona(p Persona) string {
	switch p {
	case PersonaPatient:
		return c.Prompts.Patient
	case PersonaFamily:
		return c.Prompts.Family
	case PersonaInquiry:
		return c.Prompts.Inquiry
	}
	return ""
}

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role  ChatRole `json:"role"`
	Parts string   `json:"parts"`
}

type ChatRequest struct {
	ConversationID string  `json:"conversation_id"`
	Persona        Persona `json:"persona" binding:"required,oneof=patient family inquiry live"`
	Message        string  `json:"message" binding:"required"`
}

type ChatResponse struct {
	ConversationID string `json:"conversation_id"`
	Reply          string `json:"reply"`
}
