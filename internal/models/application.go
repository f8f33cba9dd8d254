package models

// JobApplicationRequest represents a job application for an open position.
// The resume is submitted as base64 data (optionally a data URI), mirroring
// how the frontend reads the file input.
type JobApplicationRequest struct {
	Name              string `json:"name" binding:"required,max=200"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone" binding:"max=50"`
	CoverLetter       string `json:"coverLetter" binding:"max=10000"`
	ResumeData        string `json:"resumeData" binding:"required"`
	ResumeFilename    string `json:"resumeFilename" binding:"required,max=255"`
	ResumeContentType string `json:"resumeContentType" binding:"required,max=100"`
	RecaptchaToken    string `json:"recaptchaToken" binding:"required"`
}

// JobApplicationResponse represents the response after submitting an application
type JobApplicationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// JobApplicationRecord is the persisted form of a job application
type JobApplicationRecord struct {
	ID          int64
	CareerSlug  string
	Name        string
	Email       string
	Phone       string
	CoverLetter string
	ResumeURL   string
}
