package model

// Document is the single JSON object holding all persisted application state.
// It is always loaded and saved as a whole; no entity has a lifecycle outside
// of it.
type Document struct {
	Content         ContentData      `json:"content"`
	Services        []Service        `json:"services"`
	Programs        []Program        `json:"programs"`
	Facilities      []Facility       `json:"facilities"`
	Team            []TeamMember     `json:"team"`
	OnlineSessions  []OnlineSession  `json:"onlineSessions"`
	PatientBookings []PatientBooking `json:"patientBookings"`
	Appointments    []Appointment    `json:"appointments"`
	ContactRequests []ContactRequest `json:"contactRequests"`
	StaffSessions   []StaffSession   `json:"staffSessions"`
	Suggestions     []Suggestion     `json:"suggestions"`
	Subscribers     []Subscriber     `json:"subscribers"`
	Music           MusicConfig      `json:"music"`
	ChatConfig      ChatConfig       `json:"chatConfig"`
}

// Normalize replaces nil collections with empty ones. Older documents may lack
// optional arrays entirely; readers must never see a nil list.
func (d *Document) Normalize() {
	if d.Services == nil {
		d.Services = []Service{}
	}
	if d.Programs == nil {
		d.Programs = []Program{}
	}
	if d.Facilities == nil {
		d.Facilities = []Facility{}
	}
	if d.Team == nil {
		d.Team = []TeamMember{}
	}
	if d.OnlineSessions == nil {
		d.OnlineSessions = []OnlineSession{}
	}
	if d.PatientBookings == nil {
		d.PatientBookings = []PatientBooking{}
	}
	if d.Appointments == nil {
		d.Appointments = []Appointment{}
	}
	if d.ContactRequests == nil {
		d.ContactRequests = []ContactRequest{}
	}
	if d.StaffSessions == nil {
		d.StaffSessions = []StaffSession{}
	}
	if d.Suggestions == nil {
		d.Suggestions = []Suggestion{}
	}
	if d.Subscribers == nil {
		d.Subscribers = []Subscriber{}
	}
}

// FindTeamMember returns the member with the given id, or nil.
func (d *Document) FindTeamMember(id string) *TeamMember {
	for i := range d.Team {
		if d.Team[i].ID == id {
			return &d.Team[i]
		}
	}
	return nil
}
