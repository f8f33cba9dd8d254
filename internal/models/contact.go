package models

// ContactRequest represents a contact form submission from the website
type ContactRequest struct {
	Name           string `json:"name" binding:"required,max=200"`
	Email          string `json:"email" binding:"required,email"`
	Company        string `json:"company" binding:"max=200"`
	Phone          string `json:"phone" binding:"max=50"`
	Message        string `json:"message" binding:"required,max=5000"`
	RecaptchaToken string `json:"recaptchaToken" binding:"required"`
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ContactRecord is the persisted form of a contact request
type ContactRecord struct {
	ID      int64
	Name    string
	Email   string
	Company string
	Phone   string
	Message string
}
