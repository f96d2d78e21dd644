package model

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	// PasswordHash is cleared before the user is written to an API
	// response; omitempty keeps it out of the payload entirely.
	PasswordHash string `json:"password_hash,omitempty"`
	// Overrides maps a normalized ingredient name to the category the user
	// picked for it. Takes precedence over the common mapping.
	Overrides map[string]string `json:"custom_categories"`
	CreatedAt time.Time         `json:"created_at"`
}
