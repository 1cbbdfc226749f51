package domain

// Platform is a social network a post is scheduled for.
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformTikTok    Platform = "TikTok"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{PlatformInstagram, PlatformFacebook, PlatformTikTok}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformTikTok:
		return true
	}
	return false
}

// Status describes where a post sits in its publishing lifecycle. The value
// is purely descriptive; no transition rules are enforced and the edit flow
// may set any status at any time.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusDraft, StatusPublished:
		return true
	}
	return false
}

// PostType selects which auxiliary content a post carries. Reels additionally
// get a video script and a list of video ideas.
type PostType string

const (
	PostTypeNormal PostType = "normal"
	PostTypeReel   PostType = "reel"
)

func (t PostType) Valid() bool {
	return t == PostTypeNormal || t == PostTypeReel
}

// Post is the scheduled content entry shown on the planning calendar.
//
// ID is assigned once at creation from the current timestamp and never
// changes. Date is the canonical YYYY-MM-DD bucket key; Time is wall-clock
// HH:MM in 24-hour form.
type Post struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Caption  string   `json:"caption,omitempty"`
	Hashtags string   `json:"hashtags,omitempty"` // space-separated tags
	Platform Platform `json:"platform"`
	Time     string   `json:"time"`
	Date     string   `json:"date"`
	Status   Status   `json:"status"`
	PostType PostType `json:"postType"`

	// SourceDescription is the business description the content was generated
	// from. Reel auxiliary content regenerates from it instead of being
	// re-derived out of the title.
	SourceDescription string `json:"sourceDescription,omitempty"`

	VideoScript string   `json:"videoScript,omitempty"`
	VideoIdeas  []string `json:"videoIdeas,omitempty"`
}
