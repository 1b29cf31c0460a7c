package model

import "time"

type StaffSessionType string

const (
	StaffSessionNote    StaffSessionType = "note"
	StaffSessionReport  StaffSessionType = "report"
	StaffSessionSession StaffSessionType = "session"
)

// StaffSession is an internal activity log entry for a staff member. It is
// unrelated to patient bookings and availability.
type StaffSession struct {
	ID        string           `json:"id"`
	MemberID  string           `json:"memberId"`
	Title     string           `json:"title"`
	Type      StaffSessionType `json:"type"`
	Content   string           `json:"content"`
	Date      string           `json:"date"`
	CreatedAt time.Time        `json:"createdAt"`
}

type CreateStaffSessionRequest struct {
	MemberID string           `json:"member_id" binding:"required"`
	Title    string           `json:"title" binding:"required"`
	Type     StaffSessionType `json:"type" binding:"required,oneof=note report session"`
	Content  string           `json:"content"`
	Date     string           `json:"date"`
}

type SessionPlatform string

const (
	PlatformZoom    SessionPlatform = "Zoom"
	PlatformMeet    SessionPlatform = "Google Meet"
	PlatformTeams   SessionPlatform = "Microsoft Teams"
	PlatformInHouse SessionPlatform = "In-House"
)

type OnlineSessionStatus string

const (
	OnlineSessionScheduled OnlineSessionStatus = "scheduled"
	OnlineSessionLive      OnlineSessionStatus = "live"
	OnlineSessionCompleted OnlineSessionStatus = "completed"
)

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// OnlineSession is a public broadcast announced by the hospital, hosted by a
// staff member.
type OnlineSession struct {
	ID          string              `json:"id"`
	MemberID    string              `json:"memberId"`
	Title       LocalizedString     `json:"title"`
	Description LocalizedString     `json:"description"`
	Date        string              `json:"date"`
	Time        string              `json:"time"`
	Platform    SessionPlatform     `json:"platform"`
	MeetingLink string              `json:"meetingLink"`
	SocialLinks []SocialLink        `json:"socialLinks"`
	Status      OnlineSessionStatus `json:"status"`
}

type UpsertOnlineSessionRequest struct {
	MemberID    string              `json:"member_id" binding:"required"`
	Title       LocalizedString     `json:"title" binding:"required"`
	Description LocalizedString     `json:"description"`
	Date        string              `json:"date"`
	Time        string              `json:"time"`
	Platform    SessionPlatform     `json:"platform" binding:"omitempty,oneof=Zoom 'Google Meet' 'Microsoft Teams' In-House"`
	MeetingLink string              `json:"meeting_link"`
	SocialLinks []SocialLink        `json:"social_links"`
	Status      OnlineSessionStatus `json:"status" binding:"omitempty,oneof=scheduled live completed"`
}
