package models

import "time"

// Well-known setting names consumed by the public site.
const (
	SettingAvailableForHire   = "available_for_hire"
	SettingContactEmail       = "contact_email"
	SettingContactLinkedIn    = "contact_linkedin"
	SettingContactGitHub      = "contact_github"
	SettingExperienceSubtitle = "experience_subtitle"
)

// Setting is a generic key-value entry. Reads resolve by name, admin CRUD
// operates by id. Values are opaque strings.
type Setting struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Value     string    `db:"value" json:"value"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
