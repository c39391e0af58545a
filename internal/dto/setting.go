package dto

// SettingRequest is the create/update payload for a key-value setting.
// Values stay free-text: the admin is the only writer.
type SettingRequest struct {
	Name  string `json:"name" form:"name" validate:"required"`
	Value string `json:"value" form:"value" validate:"required"`
}

// ToggleAvailabilityRequest flips the available_for_hire flag.
type ToggleAvailabilityRequest struct {
	Available *bool `json:"available" form:"available" validate:"required"`
}
