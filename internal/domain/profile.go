package domain

import "time"

// BusinessProfile holds the onboarding answers for an account. It is keyed by
// the identity provider's user id and persisted server-side; the planner
// itself never depends on it beyond display.
type BusinessProfile struct {
	ID                   int64     `json:"businessProfileId,omitempty"`
	UserID               string    `json:"-"`
	BusinessName         string    `json:"businessName"`
	BusinessType         string    `json:"businessType"`
	Industry             string    `json:"industry"`
	TargetAudience       string    `json:"targetAudience,omitempty"`
	BusinessDescription  string    `json:"businessDescription,omitempty"`
	Location             string    `json:"location,omitempty"`
	Website              string    `json:"website,omitempty"`
	Phone                string    `json:"phone,omitempty"`
	Email                string    `json:"email,omitempty"`
	BrandVoice           string    `json:"brandVoice,omitempty"`
	SocialMediaPlatforms []string  `json:"socialMediaPlatforms"`
	BusinessGoals        []string  `json:"businessGoals"`
	BusinessChallenges   []string  `json:"businessChallenges"`
	Competitors          []string  `json:"competitors,omitempty"`
	OnboardingCompleted  bool      `json:"onboardingCompleted"`
	CreatedAt            time.Time `json:"createdAt,omitempty"`
	UpdatedAt            time.Time `json:"updatedAt,omitempty"`
}
