package model

// ContactRequest is a contact form submission from the public site.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}
