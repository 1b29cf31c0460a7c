package model

// HeroContent is the landing banner.
type HeroContent struct {
	Title    LocalizedString `json:"title"`
	Subtitle LocalizedString `json:"subtitle"`
	Image    string          `json:"image"`
}

// AboutContent is the story/mission/vision block.
type AboutContent struct {
	Story   LocalizedString `json:"story"`
	Mission LocalizedString `json:"mission"`
	Vision  LocalizedString `json:"vision"`
	Image   string          `json:"image"`
}

type SocialChannels struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// ContactContent is the hospital's public contact block.
type ContactContent struct {
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address LocalizedString `json:"address"`
	Socials SocialChannels  `json:"socials"`
}

// ContentData is all editable site copy.
type ContentData struct {
	Logo         string          `json:"logo"`
	HospitalName LocalizedString `json:"hospitalName"`
	Tagline      LocalizedString `json:"tagline"`
	Hero         HeroContent     `json:"hero"`
	About        AboutContent    `json:"about"`
	Contact      ContactContent  `json:"contact"`
}

type MusicSource string

const (
	MusicSourceYouTube MusicSource = "youtube"
	MusicSourceMP3     MusicSource = "mp3"
)

// MusicConfig controls the ambient audio player. MP3Data is a base64 data URL
// uploaded through the admin console.
type MusicConfig struct {
	SourceType MusicSource `json:"sourceType"`
	YouTubeID  string      `json:"youtubeId"`
	MP3Data    string      `json:"mp3Data"`
	IsEnabled  bool        `json:"isEnabled"`
	Loop       bool        `json:"loop"`
	Volume     int         `json:"volume"`
}
