package models

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList is a jsonb-backed list of strings. Scanning is defensive: NULL,
// malformed payloads, and non-array values all decode to an empty list so a
// bad row can never break a public page render.
type StringList []string

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	*l = decodeList[string](src)
	return nil
}

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// ProjectRef is one labeled entry in a career highlight list.
type ProjectRef struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type,omitempty"`
}

// ProjectRefList is a jsonb-backed list of labeled projects.
type ProjectRefList []ProjectRef

// Scan implements sql.Scanner.
func (l *ProjectRefList) Scan(src interface{}) error {
	*l = decodeList[ProjectRef](src)
	return nil
}

// Value implements driver.Valuer.
func (l ProjectRefList) Value() (driver.Value, error) {
	if l == nil {
		l = ProjectRefList{}
	}
	return json.Marshal(l)
}

// CoreValue is one entry of the about page's values section.
type CoreValue struct {
	Icon        string `json:"icon" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// CoreValueList is a jsonb-backed list of core values.
type CoreValueList []CoreValue

// Scan implements sql.Scanner.
func (l *CoreValueList) Scan(src interface{}) error {
	*l = decodeList[CoreValue](src)
	return nil
}

// Value implements driver.Valuer.
func (l CoreValueList) Value() (driver.Value, error) {
	if l == nil {
		l = CoreValueList{}
	}
	return json.Marshal(l)
}

func decodeList[T any](src interface{}) []T {
	empty := []T{}
	if src == nil {
		return empty
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return empty
	}
	if len(raw) == 0 {
		return empty
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return empty
	}
	return out
}
