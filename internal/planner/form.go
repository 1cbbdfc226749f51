package planner

import (
	"regexp"
	"strings"

	"github.com/Alexandru2223/postpilot/internal/calendar"
	"github.com/Alexandru2223/postpilot/internal/domain"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// EditForm carries every editable field of a post. Saving always resubmits
// the whole form; there is no per-field merge.
type EditForm struct {
	Title    string          `json:"title"`
	Caption  string          `json:"caption"`
	Hashtags string          `json:"hashtags"`
	Platform domain.Platform `json:"platform"`
	Time     string          `json:"time"`
	Date     string          `json:"date"`
	Status   domain.Status   `json:"status"`
	PostType domain.PostType `json:"postType"`
}

// FormFromPost pre-fills an edit form with the post's current fields.
func FormFromPost(p domain.Post) EditForm {
	return EditForm{
		Title:    p.Title,
		Caption:  p.Caption,
		Hashtags: p.Hashtags,
		Platform: p.Platform,
		Time:     p.Time,
		Date:     p.Date,
		Status:   p.Status,
		PostType: p.PostType,
	}
}

// Validate checks every field and returns a field-keyed error map. An empty
// map means the form is valid.
func (f EditForm) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "titlul este obligatoriu"
	}
	if !f.Platform.Valid() {
		errs["platform"] = "platformă necunoscută"
	}
	if !f.Status.Valid() {
		errs["status"] = "status necunoscut"
	}
	if !f.PostType.Valid() {
		errs["postType"] = "tip de postare necunoscut"
	}
	if f.Date == "" {
		errs["date"] = "data este obligatorie"
	} else if _, err := calendar.ParseDateKey(f.Date); err != nil {
		errs["date"] = "data trebuie să fie în formatul YYYY-MM-DD"
	}
	if !timePattern.MatchString(f.Time) {
		errs["time"] = "ora trebuie să fie în formatul HH:MM"
	}

	return errs
}

// apply copies the form's fields onto a post value for a full-record update.
func (f EditForm) apply(p domain.Post) domain.Post {
	p.Title = f.Title
	p.Caption = f.Caption
	p.Hashtags = f.Hashtags
	p.Platform = f.Platform
	p.Time = f.Time
	p.Date = f.Date
	p.Status = f.Status
	p.PostType = f.PostType
	return p
}
