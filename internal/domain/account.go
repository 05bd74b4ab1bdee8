package domain

import "time"

// Account is the domain entity for a registered account.
// Password is stored and compared as plain text: login is an exact
// username+password match against the stored row.
type Account struct {
	ID        int64
	Username  string
	Password  string
	CreatedAt time.Time
}
