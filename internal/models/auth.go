package models

// LoginRequest holds credentials for opening the session.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignupRequest registers a new student account.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SessionState describes whether a session is active.
type SessionState string

const (
	SessionAnonymous     SessionState = "anonymous"
	SessionAuthenticated SessionState = "authenticated"
)

// SessionView is returned by the session endpoints.
type SessionView struct {
	State SessionState   `json:"state"`
	User  *PublicAccount `json:"user"`
}
