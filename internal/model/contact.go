package model

import "time"

type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusArchived  ContactStatus = "archived"
)

// ContactRequest is a callback request submitted from the public site.
type ContactRequest struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

type UpdateContactStatusRequest struct {
	Status ContactStatus `json:"status" binding:"required,oneof=new contacted archived"`
}

// Suggestion is an anonymous or named feedback note.
type Suggestion struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateSuggestionRequest struct {
	Name    string `json:"name"`
	Message string `json:"message" binding:"required"`
}

// Subscriber is a newsletter signup. Email is the identity; there is no id.
type Subscriber struct {
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
