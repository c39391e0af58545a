package models

import "time"

// AboutSingletonID is the fixed row id enforcing the at-most-one invariant
// at the storage layer. The upsert always writes this id.
const AboutSingletonID int64 = 1

// About is the singleton about-page record.
type About struct {
	ID               int64         `db:"id" json:"id"`
	Name             string        `db:"name" json:"name"`
	Title            string        `db:"title" json:"title"`
	Location         string        `db:"location" json:"location"`
	ImageURL         string        `db:"image_url" json:"imageUrl"`
	NarrativeTitle   string        `db:"narrative_title" json:"narrativeTitle"`
	NarrativeContent string        `db:"narrative_content" json:"narrativeContent"`
	CoreValues       CoreValueList `db:"core_values" json:"coreValues"`
	Interests        StringList    `db:"interests" json:"interests"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at" json:"updated_at"`
}
