package content

import "time"

// Notice is one entry of the notices collection. Timestamps are stored as
// the ISO strings the frontend sends and expects; ExpiresAt and Image are
// pointers so absent values serialize as null.
type Notice struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Level     string  `json:"level"`
	Image     *string `json:"image"`
	CreatedAt string  `json:"createdAt"`
	ExpiresAt *string `json:"expiresAt"`
}

// NoticeInput carries the client-settable notice fields.
type NoticeInput struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Level     string  `json:"level"`
	Image     *string `json:"image"`
	ExpiresAt *string `json:"expiresAt"`
}

// GalleryItem is one entry of the gallery collection. Image is the public
// path of the uploaded file (usually under /uploads/).
type GalleryItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Date        string `json:"date"`
}

// expiresAt values arrive either as full timestamps or bare dates.
var expiryFormats = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

// Expired reports whether the notice's expiry lies at or before now.
// Notices without an expiry never expire; an expiry that does not parse
// counts as expired, so a malformed value hides the notice instead of
// pinning it to the board forever.
func (n Notice) Expired(now time.Time) bool {
	if n.ExpiresAt == nil || *n.ExpiresAt == "" {
		return false
	}
	for _, layout := range expiryFormats {
		if t, err := time.Parse(layout, *n.ExpiresAt); err == nil {
			return !t.After(now)
		}
	}
	return true
}
