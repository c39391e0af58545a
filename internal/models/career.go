package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// CareerColor is the closed set of timeline color themes.
type CareerColor string

const (
	ColorPrimary CareerColor = "primary"
	ColorCyan    CareerColor = "cyan"
	ColorPurple  CareerColor = "purple"
	ColorAmber   CareerColor = "amber"
	ColorEmerald CareerColor = "emerald"
	ColorRose    CareerColor = "rose"
	ColorIndigo  CareerColor = "indigo"
)

// HighlightKind discriminates how a career entry presents its highlights.
// The display shape is explicit instead of being inferred from the color.
type HighlightKind string

const (
	HighlightNone        HighlightKind = "none"
	HighlightTechPills   HighlightKind = "tech-pills"
	HighlightPlainList   HighlightKind = "plain-list"
	HighlightLabeledList HighlightKind = "labeled-list"
	HighlightBulleted    HighlightKind = "bulleted"
)

// Highlights is the tagged variant stored in the career.highlights jsonb
// column. Items carries string entries for every kind except labeled-list,
// which uses Projects.
type Highlights struct {
	Kind     HighlightKind  `json:"kind"`
	Items    StringList     `json:"items,omitempty"`
	Projects ProjectRefList `json:"projects,omitempty"`
}

// Scan implements sql.Scanner with parse-or-empty semantics.
func (h *Highlights) Scan(src interface{}) error {
	*h = Highlights{Kind: HighlightNone, Items: StringList{}, Projects: ProjectRefList{}}
	if src == nil {
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil
	}
	if len(raw) == 0 {
		return nil
	}
	var decoded Highlights
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	if decoded.Kind == "" {
		decoded.Kind = HighlightNone
	}
	if decoded.Items == nil {
		decoded.Items = StringList{}
	}
	if decoded.Projects == nil {
		decoded.Projects = ProjectRefList{}
	}
	*h = decoded
	return nil
}

// Value implements driver.Valuer.
func (h Highlights) Value() (driver.Value, error) {
	if h.Kind == "" {
		h.Kind = HighlightNone
	}
	return json.Marshal(h)
}

// Career represents one career-timeline entry.
type Career struct {
	ID          int64       `db:"id" json:"id"`
	Year        string      `db:"year" json:"year"`
	Title       string      `db:"title" json:"title"`
	Subtitle    string      `db:"subtitle" json:"subtitle"`
	Description string      `db:"description" json:"description"`
	Icon        string      `db:"icon" json:"icon"`
	Color       CareerColor `db:"color" json:"color"`
	Highlights  Highlights  `db:"highlights" json:"highlights"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}
