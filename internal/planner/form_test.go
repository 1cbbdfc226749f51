package planner

import (
	"testing"

	"github.com/Alexandru2223/postpilot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func validForm() EditForm {
	return EditForm{
		Title:    "Titlu",
		Caption:  "Caption",
		Hashtags: "#unu #doi",
		Platform: domain.PlatformInstagram,
		Time:     "10:30",
		Date:     "2025-03-05",
		Status:   domain.StatusScheduled,
		PostType: domain.PostTypeNormal,
	}
}

func TestEditFormValidate(t *testing.T) {
	t.Run("valid form has no errors", func(t *testing.T) {
		assert.Empty(t, validForm().Validate())
	})

	tests := []struct {
		name     string
		mutate   func(*EditForm)
		badField string
	}{
		{"missing title", func(f *EditForm) { f.Title = "   " }, "title"},
		{"unknown platform", func(f *EditForm) { f.Platform = "Myspace" }, "platform"},
		{"unknown status", func(f *EditForm) { f.Status = "archived" }, "status"},
		{"unknown post type", func(f *EditForm) { f.PostType = "story" }, "postType"},
		{"empty date", func(f *EditForm) { f.Date = "" }, "date"},
		{"malformed date", func(f *EditForm) { f.Date = "05-03-2025" }, "date"},
		{"impossible date", func(f *EditForm) { f.Date = "2025-02-30" }, "date"},
		{"12-hour time", func(f *EditForm) { f.Time = "1:30" }, "time"},
		{"hour out of range", func(f *EditForm) { f.Time = "24:00" }, "time"},
		{"minute out of range", func(f *EditForm) { f.Time = "10:60" }, "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			errs := f.Validate()
			assert.Contains(t, errs, tt.badField)
		})
	}
}

func TestFormFromPostRoundTrip(t *testing.T) {
	p := samplePost(7, "2025-03-05")
	f := FormFromPost(p)
	assert.Equal(t, p, f.apply(domain.Post{ID: 7}))
}
