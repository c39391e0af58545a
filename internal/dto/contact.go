package dto

// CreateContactRequest is the public contact form payload. Status is not
// accepted here: new messages are always stored as "new".
type CreateContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Message string `json:"message" form:"message" validate:"required,min=10"`
}

// UpdateContactStatusRequest transitions a message between new and read.
type UpdateContactStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=new read"`
}
