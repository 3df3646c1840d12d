package models

// User is the canonical user entity from the Identity Service. Credential
// fields are stripped at the adapter boundary and never reach callers.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country,omitempty"`
}

// NewUserInput carries the fields accepted when creating a user. The
// password is forwarded to the Identity Service and never echoed back.
type NewUserInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Country  string `json:"country"`
}
