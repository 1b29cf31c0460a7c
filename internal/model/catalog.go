package model

// Service is an entry in the hospital's service catalog.
type Service struct {
	ID          string          `json:"id"`
	Title       LocalizedString `json:"title"`
	Description LocalizedString `json:"description"`
	Icon        string          `json:"icon"`
	Image       string          `json:"image,omitempty"`
}

// Program is a recurring treatment program with a human-readable schedule.
type Program struct {
	ID          string          `json:"id"`
	Title       LocalizedString `json:"title"`
	Description LocalizedString `json:"description"`
	Schedule    LocalizedString `json:"schedule"`
	Image       string          `json:"image"`
}

// Facility describes a physical area of the hospital.
type Facility struct {
	ID          string          `json:"id"`
	Name        LocalizedString `json:"name"`
	Description LocalizedString `json:"description"`
	Image       string          `json:"image"`
}

type UpsertServiceRequest struct {
	Title       LocalizedString `json:"title" binding:"required"`
	Description LocalizedString `json:"description"`
	Icon        string          `json:"icon"`
	Image       string          `json:"image"`
}

type UpsertProgramRequest struct {
	Title       LocalizedString `json:"title" binding:"required"`
	Description LocalizedString `json:"description"`
	Schedule    LocalizedString `json:"schedule"`
	Image       string          `json:"image"`
}

type UpsertFacilityRequest struct {
	Name        LocalizedString `json:"name" binding:"required"`
	Description LocalizedString `json:"description"`
	Image       string          `json:"image"`
}
