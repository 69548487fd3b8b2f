package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/GTDGit/gtd_bi/internal/analytics"
)

// TimestampLayout is appended to exported file names.
const TimestampLayout = "20060102_150405"

// TimestampedFilename returns baseDir/name_<timestamp>.ext.
func TimestampedFilename(baseDir, name, ext string, at time.Time) string {
	return filepath.Join(baseDir, fmt.Sprintf("%s_%s.%s", name, at.Format(TimestampLayout), ext))
}

// ExportJSON writes data as indented JSON to filename, creating parent folders.
func ExportJSON(filename string, data any) error {
	return writeFile(filename, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
		return nil
	})
}

// ExportSalesCSV writes the sales detail table to filename.
func ExportSalesCSV(filename string, rows []analytics.FlatSaleRow) error {
	return writeFile(filename, func(w io.Writer) error { return WriteSalesCSV(w, rows) })
}

// ExportProgressCSV writes the learning progress table to filename.
func ExportProgressCSV(filename string, rows []analytics.FlatProgressRow) error {
	return writeFile(filename, func(w io.Writer) error { return WriteProgressCSV(w, rows) })
}

var salesHeader = []string{
	"sale_id", "client_id", "client_name", "region", "product_id", "product_name",
	"unit_price", "quantity", "sale_date", "revenue", "month",
}

// WriteSalesCSV encodes the sales detail rows with a header line.
func WriteSalesCSV(w io.Writer, rows []analytics.FlatSaleRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(salesHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.SaleID),
			strconv.Itoa(r.ClientID),
			r.ClientName,
			r.Region,
			strconv.Itoa(r.ProductID),
			r.ProductName,
			r.UnitPrice.StringFixed(2),
			strconv.Itoa(r.Quantity),
			r.SaleDate.Format(time.DateOnly),
			r.Revenue.StringFixed(2),
			r.Month,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", r.SaleID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

var progressHeader = []string{
	"progress_id", "user_id", "user_name", "region", "course_id", "course_name",
	"completed_lessons", "total_lessons", "completion_rate", "last_activity",
}

// WriteProgressCSV encodes the progress rows. An undefined completion rate
// is written as an empty cell.
func WriteProgressCSV(w io.Writer, rows []analytics.FlatProgressRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(progressHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range rows {
		rate := ""
		if r.CompletionRate.Valid() {
			rate = r.CompletionRate.Value.StringFixed(1)
		}
		record := []string{
			strconv.Itoa(r.ProgressID),
			strconv.Itoa(r.UserID),
			r.UserName,
			r.Region,
			strconv.Itoa(r.CourseID),
			r.CourseName,
			strconv.Itoa(r.CompletedLessons),
			strconv.Itoa(r.TotalLessons),
			rate,
			r.LastActivity.Format(time.DateOnly),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", r.ProgressID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeFile(filename string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	log.Info().Str("file", filename).Msg("Report exported")
	return nil
}
