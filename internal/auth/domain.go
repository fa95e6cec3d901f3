// internal/auth/domain.go
package auth

// Role classifies what an operator is allowed to administer.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleStandard      Role = "standard"
)

// Session is the profile of the currently authenticated operator. It
// exists only while a login has succeeded and has not been ended, and
// it never carries the secret.
type Session struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	JobTitle     string `json:"job_title"`
	Branch       string `json:"branch"`
	Phone        string `json:"phone"`
	RegisteredOn string `json:"registered_on"`
	Avatar       string `json:"avatar,omitempty"`
	Role         Role   `json:"role"`
}

// Credential is a registered identity: the session profile plus the
// sealed secret used to validate login attempts. Email is the unique
// lookup key.
type Credential struct {
	Session
	Secret string `json:"-"`
}

// Profile carries the fields a new operator supplies at registration.
// ID, registration date and role are synthesized by the store.
type Profile struct {
	Email    string
	Secret   string
	Name     string
	JobTitle string
	Branch   string
	Phone    string
}

// Snapshot is the immutable auth state handed to readers.
type Snapshot struct {
	Authenticated bool
	User          *Session
	Loading       bool
	Err           string
}

// Human-readable failure messages surfaced through Snapshot.Err.
const (
	msgNotFound        = "operator not found"
	msgInvalidSecret   = "incorrect password"
	msgAlreadyExists   = "operator already exists"
	msgTooManyAttempts = "too many attempts, try again later"
	msgAborted         = "operation aborted"
)
