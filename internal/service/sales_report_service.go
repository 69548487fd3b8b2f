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

// SalesReportService computes the sales dashboard from the sales schema.
type SalesReportService struct {
	db        *sqlx.DB
	formatter *analytics.Formatter
}

// NewSalesReportService creates a new SalesReportService.
func NewSalesReportService(db *sqlx.DB, formatter *analytics.Formatter) *SalesReportService {
	return &SalesReportService{db: db, formatter: formatter}
}

// Build loads the sales relations on a dedicated connection and runs the
// pipeline for filter. Nothing is kept between calls.
func (s *SalesReportService) Build(ctx context.Context, filter analytics.RegionFilter) (*analytics.SalesReport, error) {
	start := time.Now()

	var in analytics.SalesInput
	err := database.WithConn(ctx, s.db, func(q sqlx.QueryerContext) error {
		repo := repository.NewSalesRepository(q)

		var err error
		if in.Clients, err = repo.ListClients(ctx); err != nil {
			return err
		}
		if in.Products, err = repo.ListProducts(ctx); err != nil {
			return err
		}
		in.Sales, err = repo.ListSales(ctx)
		return err
	})
	if err != nil {
		log.Error().Err(err).Str("region", filter.String()).Msg("Failed to load sales data")
		return nil, err
	}

	report := analytics.BuildSalesReport(in, filter, s.formatter)

	if report.Attrition.Dropped > 0 {
		log.Debug().
			Int("dropped", report.Attrition.Dropped).
			Int("sales", report.Attrition.Input).
			Msg("Sales without a known client or product left out of the report")
	}
	if !report.Quality.Clean() {
		log.Warn().
			Int("non_positive_quantity", report.Quality.NonPositiveQuantity).
			Msg("Sales report computed over anomalous rows")
	}
	log.Info().
		Str("region", filter.String()).
		Int("rows", len(report.Rows)).
		Dur("took", time.Since(start)).
		Msg("Sales report built")

	return report, nil
}

// Regions lists the regions that have at least one joined sale.
func (s *SalesReportService) Regions(ctx context.Context) ([]string, error) {
	report, err := s.Build(ctx, analytics.AllRegions())
	if err != nil {
		return nil, err
	}
	return report.Regions, nil
}
