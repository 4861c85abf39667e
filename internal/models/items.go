package models

import "time"

// ServiceItem is one entry of the services section. DetailBody plus
// DetailImages/DetailFiles drive the per-service detail page.
type ServiceItem struct {
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Icon         string    `json:"icon,omitempty"`
	DetailBody   string    `json:"detail_body,omitempty"`
	DetailImages []string  `json:"detail_images,omitempty"`
	DetailFiles  []FileRef `json:"detail_files,omitempty"`
}

// StrengthItem is one entry of the strengths section.
type StrengthItem struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
}

// HeroStat is a single numeric highlight in the hero section.
type HeroStat struct {
	Value  int    `json:"value"`
	Suffix string `json:"suffix"`
	Label  string `json:"label"`
}

// ConceptPoint is a single label/body pair in the concept section.
type ConceptPoint struct {
	Label string `json:"label"`
	Body  string `json:"body"`
}

// ProfileRow is one row of the company-profile table. A non-empty dynamic
// row list overrides the six legacy fixed columns.
type ProfileRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FileRef is a downloadable asset with a display name.
type FileRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// News is an announcement entry. ImagePath/FilePath are the legacy single
// asset columns; the JSON list columns supersede them when non-empty.
type News struct {
	ID             int64
	Title          string
	Body           string
	ImagePath      string
	FilePath       string
	ImagePathsJSON string
	FilePathsJSON  string
	IsPublished    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewsPatch is a partial update of News. Nil fields keep the stored value.
type NewsPatch struct {
	Title          *string
	Body           *string
	ImagePath      *string
	FilePath       *string
	ImagePathsJSON *string
	FilePathsJSON  *string
	IsPublished    *bool
}
