package dto

// TechStackRequest is the create/update payload for a technology badge.
type TechStackRequest struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description" validate:"required"`
	IconName    string `json:"iconName" form:"iconName" validate:"required"`
	IconColor   string `json:"iconColor" form:"iconColor" validate:"required"`
	BgColor     string `json:"bgColor" form:"bgColor" validate:"required"`
}
