package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/GTDGit/gtd_bi/internal/models"
)

// LearningRepository reads the relations of the learning-platform schema.
type LearningRepository struct {
	q sqlx.QueryerContext
}

// NewLearningRepository creates a new LearningRepository on q.
func NewLearningRepository(q sqlx.QueryerContext) *LearningRepository {
	return &LearningRepository{q: q}
}

// ListUsers returns every learner.
func (r *LearningRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, name, region, joined_at FROM users ORDER BY id`

	var users []models.User
	if err := sqlx.SelectContext(ctx, r.q, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListSubscriptions returns every subscription.
func (r *LearningRepository) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	query := `SELECT id, user_id, start_date, end_date, plan_type, renewed, price
              FROM subscriptions ORDER BY id`

	var subs []models.Subscription
	if err := sqlx.SelectContext(ctx, r.q, &subs, query); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}

// ListCourses returns every course.
func (r *LearningRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	query := `SELECT id, name, level, type, total_lessons FROM courses ORDER BY id`

	var courses []models.Course
	if err := sqlx.SelectContext(ctx, r.q, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// ListProgress returns every user_course_progress entry.
func (r *LearningRepository) ListProgress(ctx context.Context) ([]models.Progress, error) {
	query := `SELECT id, user_id, course_id, completed_lessons, last_activity
              FROM user_course_progress ORDER BY id`

	var progress []models.Progress
	if err := sqlx.SelectContext(ctx, r.q, &progress, query); err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return progress, nil
}

// ListBooks returns every book.
func (r *LearningRepository) ListBooks(ctx context.Context) ([]models.Book, error) {
	query := `SELECT id, title, category, format, price FROM books ORDER BY id`

	var books []models.Book
	if err := sqlx.SelectContext(ctx, r.q, &books, query); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// ListBookSales returns every book sale.
func (r *LearningRepository) ListBookSales(ctx context.Context) ([]models.BookSale, error) {
	query := `SELECT id, book_id, sale_date, quantity, total_amount, region
              FROM book_sales ORDER BY id`

	var sales []models.BookSale
	if err := sqlx.SelectContext(ctx, r.q, &sales, query); err != nil {
		return nil, fmt.Errorf("list book sales: %w", err)
	}
	return sales, nil
}

// ListRevenues returns every revenue entry.
func (r *LearningRepository) ListRevenues(ctx context.Context) ([]models.Revenue, error) {
	query := `SELECT id, source, amount, revenue_date FROM revenues ORDER BY id`

	var revenues []models.Revenue
	if err := sqlx.SelectContext(ctx, r.q, &revenues, query); err != nil {
		return nil, fmt.Errorf("list revenues: %w", err)
	}
	return revenues, nil
}

// GetUserByID looks a learner up by key.
func (r *LearningRepository) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT id, name, region, joined_at FROM users WHERE id = $1 LIMIT 1`

	var u models.User
	if err := sqlx.GetContext(ctx, r.q, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

// GetCourseByID looks a course up by key.
func (r *LearningRepository) GetCourseByID(ctx context.Context, id int) (*models.Course, error) {
	query := `SELECT id, name, level, type, total_lessons FROM courses WHERE id = $1 LIMIT 1`

	var c models.Course
	if err := sqlx.GetContext(ctx, r.q, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get course %d: %w", id, err)
	}
	return &c, nil
}
