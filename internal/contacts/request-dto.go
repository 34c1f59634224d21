package contacts

type CreateContactRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=50"`
	Message  string `json:"message" validate:"required,max=5000"`
	Language string `json:"language" validate:"omitempty,oneof=en ar"`
}
