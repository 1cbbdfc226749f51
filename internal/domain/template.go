package domain

import "time"

// PostTemplate is a reusable skeleton for recurring content. Template fields
// interpolate the business description the same way generation does.
type PostTemplate struct {
	ID               int64     `json:"id"`
	UserID           string    `json:"-"`
	Name             string    `json:"name"`
	TitleTemplate    string    `json:"titleTemplate,omitempty"`
	CaptionTemplate  string    `json:"captionTemplate,omitempty"`
	HashtagsTemplate string    `json:"hashtagsTemplate,omitempty"`
	Platform         Platform  `json:"platform"`
	PostType         PostType  `json:"postType"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt,omitempty"`
}
