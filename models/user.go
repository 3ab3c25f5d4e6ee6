package models

import "time"

// User is an account that owns decks. Guest accounts are provisioned without
// a password and expire after a fixed TTL.
//
// Invariant: PasswordHash is non-empty iff IsGuest is false.
type User struct {
	// ID is the unique identifier of the user (UUID v7).
	ID string `json:"_id"`

	// Username is the unique handle used for login.
	Username string `json:"username"`

	// Email is unique. For guests it is synthesized from the username.
	Email string `json:"email,omitempty"`

	// PasswordHash is the bcrypt hash of the password. It is empty for
	// guests and never serialized.
	PasswordHash string `json:"-"`

	// IsGuest marks an anonymous, expiring account.
	IsGuest bool `json:"isGuest"`

	// ExpiresAt is set for guests only. Once it elapses the reaper deletes
	// the user together with its decks and cards.
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	// APICallCount is the number of successful generation calls recorded
	// in the current window.
	APICallCount int `json:"apiCallCount"`

	// APICallResetAt is the end of the current generation window. Nil
	// means no window has been opened yet.
	APICallResetAt *time.Time `json:"apiCallResetAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Quota returns the generation counter state of the user.
func (u User) Quota() Quota {
	return Quota{CallCount: u.APICallCount, ResetAt: u.APICallResetAt}
}

// Credentials is the payload of registration and login requests.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user returned by the auth endpoints.
type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	IsGuest  bool   `json:"isGuest"`
}

// NewUserResponse builds the public view of u.
func NewUserResponse(u User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, IsGuest: u.IsGuest}
}
