package model

// Weekday is one of the seven literal day names used by availability slots.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// AvailabilitySlot is a recurring weekly window owned by a team member.
// Start and end are wall-clock "HH:MM" strings with no timezone. Inverted or
// overlapping slots are accepted as-is; see availability.SlotPolicy.
type AvailabilitySlot struct {
	ID        string  `json:"id"`
	Day       Weekday `json:"day"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
}

// Display renders the slot the way the booking flow snapshots it.
func (s AvailabilitySlot) Display() string {
	return s.StartTime + " - " + s.EndTime
}

// TeamMember is a staff directory entry. Availability is owned exclusively by
// the member and may be empty or absent on older documents.
type TeamMember struct {
	ID           string             `json:"id"`
	Name         LocalizedString    `json:"name"`
	Role         LocalizedString    `json:"role"`
	Bio          LocalizedString    `json:"bio"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Image        string             `json:"image"`
	Availability []AvailabilitySlot `json:"availability,omitempty"`
}

// FindSlot returns the slot with the given id, or false when absent.
func (m *TeamMember) FindSlot(slotID string) (AvailabilitySlot, bool) {
	for _, s := range m.Availability {
		if s.ID == slotID {
			return s, true
		}
	}
	return AvailabilitySlot{}, false
}

type CreateTeamMemberRequest struct {
	Name  LocalizedString `json:"name" binding:"required"`
	Role  LocalizedString `json:"role"`
	Bio   LocalizedString `json:"bio"`
	Email string          `json:"email" binding:"omitempty,email"`
	Phone string          `json:"phone"`
	Image string          `json:"image"`
}

type AddSlotRequest struct {
	Day       Weekday `json:"day" binding:"required,weekday"`
	StartTime string  `json:"start_time" binding:"required,hhmm"`
	EndTime   string  `json:"end_time" binding:"required,hhmm"`
}
