package domain

import "time"

// Domain entity: бизнес-объект (истина).
// Не зависит от Gin, Postgres, Redis.
type Message struct {
	ID       int64
	PostedBy int64
	Text     string
	PostedAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
