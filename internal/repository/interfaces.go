package repository

import (
	"context"

	"github.com/serenitypath/hospital-api/internal/model"
)

// All repository interfaces in one file. Every implementation is backed by the
// single document store; the narrow per-entity contracts keep "load whole /
// save whole" an adapter-internal concern.
type (
	TeamRepository interface {
		List(ctx context.Context) ([]model.TeamMember, error)
		Get(ctx context.Context, id string) (*model.TeamMember, error)
		Create(ctx context.Context, member *model.TeamMember) error
		Update(ctx context.Context, member *model.TeamMember) error
		Delete(ctx context.Context, id string) error
		AppendSlot(ctx context.Context, memberID string, slot model.AvailabilitySlot) error
		RemoveSlot(ctx context.Context, memberID, slotID string) error
	}

	BookingRepository interface {
		List(ctx context.Context) ([]model.PatientBooking, error)
		Get(ctx context.Context, id string) (*model.PatientBooking, error)
		Insert(ctx context.Context, booking *model.PatientBooking) error
		UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error
		Delete(ctx context.Context, id string) error
	}

	StaffSessionRepository interface {
		List(ctx context.Context) ([]model.StaffSession, error)
		ListByMember(ctx context.Context, memberID string) ([]model.StaffSession, error)
		Insert(ctx context.Context, session *model.StaffSession) error
		Delete(ctx context.Context, id string) error
	}

	OnlineSessionRepository interface {
		List(ctx context.Context) ([]model.OnlineSession, error)
		Upsert(ctx context.Context, session *model.OnlineSession) error
		Delete(ctx context.Context, id string) error
	}

	AppointmentRepository interface {
		List(ctx context.Context) ([]model.Appointment, error)
		Insert(ctx context.Context, appointment *model.Appointment) error
		UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error
		Delete(ctx context.Context, id string) error
	}

	CatalogRepository interface {
		ListServices(ctx context.Context) ([]model.Service, error)
		GetService(ctx context.Context, id string) (*model.Service, error)
		UpsertService(ctx context.Context, service *model.Service) error
		DeleteService(ctx context.Context, id string) error

		ListPrograms(ctx context.Context) ([]model.Program, error)
		UpsertProgram(ctx context.Context, program *model.Program) error
		DeleteProgram(ctx context.Context, id string) error

		ListFacilities(ctx context.Context) ([]model.Facility, error)
		UpsertFacility(ctx context.Context, facility *model.Facility) error
		DeleteFacility(ctx context.Context, id string) error
	}

	ContentRepository interface {
		GetContent(ctx context.Context) (*model.ContentData, error)
		UpdateContent(ctx context.Context, content *model.ContentData) error
		GetMusic(ctx context.Context) (*model.MusicConfig, error)
		UpdateMusic(ctx context.Context, music *model.MusicConfig) error
		GetChatConfig(ctx context.Context) (*model.ChatConfig, error)
		UpdateChatConfig(ctx context.Context, cfg *model.ChatConfig) error
	}

	ContactRepository interface {
		ListRequests(ctx context.Context) ([]model.ContactRequest, error)
		InsertRequest(ctx context.Context, req *model.ContactRequest) error
		UpdateRequestStatus(ctx context.Context, id string, status model.ContactStatus) error
		DeleteRequest(ctx context.Context, id string) error

		ListSuggestions(ctx context.Context) ([]model.Suggestion, error)
		InsertSuggestion(ctx context.Context, suggestion *model.Suggestion) error
		DeleteSuggestion(ctx context.Context, id string) error

		ListSubscribers(ctx context.Context) ([]model.Subscriber, error)
		InsertSubscriber(ctx context.Context, sub *model.Subscriber) error
		DeleteSubscriber(ctx context.Context, email string) error
	}
)
