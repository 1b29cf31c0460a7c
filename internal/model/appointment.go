package model

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type Persona string

const (
	PersonaPatient Persona = "patient"
	PersonaFamily  Persona = "family"
	PersonaInquiry Persona = "inquiry"
	PersonaLive    Persona = "live"
)

// Appointment is the simpler legacy booking type captured by the public
// contact form. It references a service, not a staff member, and carries no
// time slot.
type Appointment struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Date      string            `json:"date"`
	ServiceID string            `json:"serviceId"`
	Status    AppointmentStatus `json:"status"`
	Persona   Persona           `json:"persona"`
}

type CreateAppointmentRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Date      string `json:"date" binding:"required"`
	ServiceID string `json:"service_id"`
}

type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}
