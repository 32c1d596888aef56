package models

import "time"

// User is a registered account able to hold favorites, reviews and history.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// Identity is the authenticated caller attached to a request. A zero identity
// means the caller is not logged in.
type Identity struct {
	UID   string
	Email string
}

// IsZero reports whether no authenticated user is attached.
func (i Identity) IsZero() bool {
	return i.UID == ""
}
