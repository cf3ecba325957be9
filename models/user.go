package models

import "time"

// UserSession is the in-memory record of the logged-in demo user. It is
// mirrored to the durable key-value store so a restart keeps the user
// logged in; it is not a credential store.
type UserSession struct {
	Username   string    `json:"username"`
	LoggedInAt time.Time `json:"logged_in_at"`
}
