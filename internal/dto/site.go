package dto

// YearRange is the derived span of the career timeline.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ContactLinks are the public contact channels resolved from settings.
type ContactLinks struct {
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// SiteSummary is the derived public shell payload: subtitle falls back to
// the computed year range unless overridden by a setting.
type SiteSummary struct {
	YearRange        *YearRange   `json:"yearRange,omitempty"`
	Subtitle         string       `json:"subtitle"`
	AvailableForHire bool         `json:"availableForHire"`
	Contact          ContactLinks `json:"contact"`
}

// DashboardStats backs the admin dashboard cards.
type DashboardStats struct {
	TechStacks       int  `json:"techStacks"`
	Careers          int  `json:"careers"`
	Contacts         int  `json:"contacts"`
	UnreadContacts   int  `json:"unreadContacts"`
	Settings         int  `json:"settings"`
	AvailableForHire bool `json:"availableForHire"`
}
