package model

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the four enumerated labels. Transitions
// between valid labels are not restricted.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// UnresolvedSlotDisplay is the timeSlot placeholder used when the referenced
// availability slot no longer exists at submission time.
const UnresolvedSlotDisplay = "TBD"

// PatientBooking is a patient's request to meet a staff member on a specific
// date using one of the member's recurring slots. MemberID is a weak reference
// with no existence check. TimeSlot is snapshotted from the slot at submission
// and never changes afterwards.
type PatientBooking struct {
	ID           string        `json:"id"`
	PatientName  string        `json:"patientName"`
	PatientEmail string        `json:"patientEmail"`
	PatientPhone string        `json:"patientPhone"`
	Reason       string        `json:"reason"`
	MemberID     string        `json:"memberId"`
	Date         string        `json:"date"`
	TimeSlot     string        `json:"timeSlot"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type SubmitBookingRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	SlotID   string `json:"slot_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required"`
}
