package models

// SchoolAdmin is the admin profile the backend returns on login.
type SchoolAdmin struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// LoginRequest is the body of POST /SchoolAdmin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend login result.
type LoginResponse struct {
	Token string      `json:"token" validate:"required"`
	Role  string      `json:"role"`
	Admin SchoolAdmin `json:"admin"`
}
