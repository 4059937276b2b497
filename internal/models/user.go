package models

// User is the session user. It is fabricated from the login email and never
// stored anywhere but the session key/value store.
type User struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
