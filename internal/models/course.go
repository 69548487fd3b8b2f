package models

import "time"

// Course is a unit of learning content with a fixed number of lessons.
type Course struct {
	ID           int    `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Level        string `db:"level" json:"level"`
	Type         string `db:"type" json:"type"`
	TotalLessons int    `db:"total_lessons" json:"totalLessons"`
}

// Progress records how far a user got through a course.
// CompletedLessons is not guaranteed to be <= the course's TotalLessons.
type Progress struct {
	ID               int       `db:"id" json:"id"`
	UserID           int       `db:"user_id" json:"userId"`
	CourseID         int       `db:"course_id" json:"courseId"`
	CompletedLessons int       `db:"completed_lessons" json:"completedLessons"`
	LastActivity     time.Time `db:"last_activity" json:"lastActivity"`
}
