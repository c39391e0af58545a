package dto

import "github.com/fendiRahmans/portofolio-api/internal/models"

// CareerRequest is the create/update payload for a timeline entry. The four
// legacy list fields are accepted alongside an optional explicit
// highlightKind; the service maps them onto the stored tagged variant.
type CareerRequest struct {
	Year          string              `json:"year" form:"year" validate:"required"`
	Title         string              `json:"title" form:"title" validate:"required"`
	Subtitle      string              `json:"subtitle" form:"subtitle" validate:"required"`
	Description   string              `json:"description" form:"description" validate:"required"`
	Icon          string              `json:"icon" form:"icon" validate:"required"`
	Color         string              `json:"color" form:"color" validate:"required,oneof=primary cyan purple amber emerald rose indigo"`
	HighlightKind string              `json:"highlightKind" form:"highlightKind" validate:"omitempty,oneof=none tech-pills plain-list labeled-list bulleted"`
	TechStack     []string            `json:"techStack" form:"techStack" validate:"omitempty,dive,required"`
	KeyProjects   []string            `json:"keyProjects" form:"keyProjects" validate:"omitempty,dive,required"`
	ProjectList   []models.ProjectRef `json:"projectList" validate:"omitempty,dive"`
	BulletPoints  []string            `json:"bulletPoints" form:"bulletPoints" validate:"omitempty,dive,required"`
}

// Normalize collapses the form convention of a single empty entry meaning
// "no items" before validation runs.
func (r *CareerRequest) Normalize() {
	r.TechStack = dropSingleEmpty(r.TechStack)
	r.KeyProjects = dropSingleEmpty(r.KeyProjects)
	r.BulletPoints = dropSingleEmpty(r.BulletPoints)
}

func dropSingleEmpty(items []string) []string {
	if len(items) == 1 && items[0] == "" {
		return nil
	}
	return items
}
