package domain

import "time"

// ArticleMeta is one entry of the NHK Easy news feed.
type ArticleMeta struct {
	NewsID          string `json:"news_id"`
	PrearrangedTime string `json:"news_prearranged_time"`
	Title           string `json:"title"`
	HasWebImage     bool   `json:"has_news_web_image"`
	HasEasyImage    bool   `json:"has_news_easy_image"`
	HasEasyVoice    bool   `json:"has_news_easy_voice"`
	WebImageURI     string `json:"news_web_image_uri"`
	EasyImageURI    string `json:"news_easy_image_uri"`
	EasyVoiceURI    string `json:"news_easy_voice_uri"`

	// Category is the top-level feed key the entry was listed under.
	Category string `json:"-"`
}

// Page is the markup extracted from an article page.
type Page struct {
	Title string
	Body  string
}

type ArchivedArticle struct {
	NewsID          string    `json:"news_id" db:"news_id"`
	Title           string    `json:"title" db:"title"`
	PrearrangedTime string    `json:"prearranged_time" db:"prearranged_time"`
	Dir             string    `json:"dir" db:"dir"`
	HTMLPath        string    `json:"html_path" db:"html_path"`
	ImageFile       string    `json:"image_file,omitempty" db:"image_file"`
	AudioFile       string    `json:"audio_file,omitempty" db:"audio_file"`
	ArchivedAt      time.Time `json:"archived_at" db:"archived_at"`
}
