package dto

import "github.com/fendiRahmans/portofolio-api/internal/models"

// AboutRequest is the upsert payload for the singleton about record.
type AboutRequest struct {
	Name             string             `json:"name" form:"name" validate:"required"`
	Title            string             `json:"title" form:"title" validate:"required"`
	Location         string             `json:"location" form:"location" validate:"required"`
	ImageURL         string             `json:"imageUrl" form:"imageUrl" validate:"required"`
	NarrativeTitle   string             `json:"narrativeTitle" form:"narrativeTitle" validate:"required"`
	NarrativeContent string             `json:"narrativeContent" form:"narrativeContent" validate:"required"`
	CoreValues       []models.CoreValue `json:"coreValues" validate:"omitempty,dive"`
	Interests        []string           `json:"interests" form:"interests" validate:"omitempty,dive,required"`
}

// Normalize collapses the form convention of a single empty entry meaning
// "no items" before validation runs.
func (r *AboutRequest) Normalize() {
	if len(r.Interests) == 1 && r.Interests[0] == "" {
		r.Interests = nil
	}
	if len(r.CoreValues) == 0 {
		r.CoreValues = nil
	}
}
