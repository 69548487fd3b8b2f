package service

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/gtd_bi/internal/analytics"
	"github.com/GTDGit/gtd_bi/internal/database"
	"github.com/GTDGit/gtd_bi/internal/repository"
)

// LearningReportService computes the learning-platform dashboard.
type LearningReportService struct {
	db        *sqlx.DB
	formatter *analytics.Formatter
}

// NewLearningReportService creates a new LearningReportService.
func NewLearningReportService(db *sqlx.DB, formatter *analytics.Formatter) *LearningReportService {
	return &LearningReportService{db: db, formatter: formatter}
}

// Build loads the seven learning-platform relations on a dedicated connection
// and runs the pipeline for filter.
func (s *LearningReportService) Build(ctx context.Context, filter analytics.RegionFilter) (*analytics.LearningReport, error) {
	start := time.Now()

	var in analytics.LearningInput
	err := database.WithConn(ctx, s.db, func(q sqlx.QueryerContext) error {
		repo := repository.NewLearningRepository(q)

		var err error
		if in.Users, err = repo.ListUsers(ctx); err != nil {
			return err
		}
		if in.Subscriptions, err = repo.ListSubscriptions(ctx); err != nil {
			return err
		}
		if in.Courses, err = repo.ListCourses(ctx); err != nil {
			return err
		}
		if in.Progress, err = repo.ListProgress(ctx); err != nil {
			return err
		}
		if in.Books, err = repo.ListBooks(ctx); err != nil {
			return err
		}
		if in.BookSales, err = repo.ListBookSales(ctx); err != nil {
			return err
		}
		in.Revenues, err = repo.ListRevenues(ctx)
		return err
	})
	if err != nil {
		log.Error().Err(err).Str("region", filter.String()).Msg("Failed to load learning platform data")
		return nil, err
	}

	report := analytics.BuildLearningReport(in, filter, s.formatter)

	if report.Attrition.Dropped > 0 {
		log.Debug().
			Int("dropped", report.Attrition.Dropped).
			Msg("Progress or book sales without a known course or book left out of the report")
	}
	if !report.Quality.Clean() {
		log.Warn().
			Int("over_completed", report.Quality.OverCompletedProgress).
			Int("zero_lesson_courses", report.Quality.ZeroLessonCourses).
			Int("non_positive_quantity", report.Quality.NonPositiveQuantity).
			Msg("Learning report computed over anomalous rows")
	}
	log.Info().
		Str("region", filter.String()).
		Int("progress_rows", len(report.Progress)).
		Dur("took", time.Since(start)).
		Msg("Learning report built")

	return report, nil
}
