package models

import "time"

// User is a learner registered on the learning platform.
type User struct {
	ID       int       `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Region   string    `db:"region" json:"region"`
	JoinedAt time.Time `db:"joined_at" json:"joinedAt"`
}
