package domain

// GeneratedContent is what the content generator produces for a description.
// VideoScript and VideoIdeas are only populated for reels.
type GeneratedContent struct {
	Title       string   `json:"title"`
	Caption     string   `json:"caption"`
	Hashtags    []string `json:"hashtags"`
	VideoScript string   `json:"videoScript,omitempty"`
	VideoIdeas  []string `json:"videoIdeas,omitempty"`
}

// Suggestion bundles ready-made content ideas for a platform.
type Suggestion struct {
	Hashtags   []string `json:"hashtags"`
	Captions   []string `json:"captions"`
	PostIdeas  []string `json:"postIdeas"`
	VideoIdeas []string `json:"videoIdeas"`
}
