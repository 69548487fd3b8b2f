package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GTDGit/gtd_bi/internal/models"
)

// FlatProgressRow is a progress entry joined with its course. The learner's
// name and region are attached by lookup and stay empty for unknown users.
type FlatProgressRow struct {
	ProgressID       int                     `json:"progressId"`
	UserID           int                     `json:"userId"`
	UserName         string                  `json:"userName"`
	Region           string                  `json:"region"`
	CourseID         int                     `json:"courseId"`
	CourseName       string                  `json:"courseName"`
	CompletedLessons int                     `json:"completedLessons"`
	TotalLessons     int                     `json:"totalLessons"`
	CompletionRate   Result[decimal.Decimal] `json:"completionRate"`
	LastActivity     time.Time               `json:"lastActivity"`
}

// LearningInput holds the source relations of the learning-platform schema.
type LearningInput struct {
	Users         []models.User
	Subscriptions []models.Subscription
	Courses       []models.Course
	Progress      []models.Progress
	Books         []models.Book
	BookSales     []models.BookSale
	Revenues      []models.Revenue
}

// LearningReport is everything the learning dashboard displays for one filter.
// Revenues carry no region and are reported unfiltered.
type LearningReport struct {
	Filter            RegionFilter          `json:"filter"`
	Metrics           []Metric              `json:"metrics"`
	MonthlyBookSales  Series                `json:"monthlyBookSales"`
	BookSalesByFormat Series                `json:"bookSalesByFormat"`
	RevenueBySource   Series                `json:"revenueBySource"`
	RevenueShare      Series                `json:"revenueShare"`
	Subscriptions     []models.Subscription `json:"subscriptions"`
	Progress          []FlatProgressRow     `json:"progress"`
	BookSales         []models.BookSale     `json:"bookSales"`
	Revenues          []models.Revenue      `json:"revenues"`
	Attrition         JoinStats             `json:"attrition"`
	Quality           DataQuality           `json:"quality"`
}

// FlattenProgress builds Progress ⨝ Course with the completion rate. Entries
// of unknown courses are dropped.
func FlattenProgress(progress []models.Progress, courses []models.Course, users []models.User) ([]FlatProgressRow, JoinStats) {
	joined, stats := InnerJoin(progress, courses,
		func(p models.Progress) int { return p.CourseID },
		func(c models.Course) int { return c.ID },
	)
	byUser := IndexBy(users, func(u models.User) int { return u.ID })

	rows := make([]FlatProgressRow, 0, len(joined))
	for _, j := range joined {
		p, c := j.Left, j.Right
		row := FlatProgressRow{
			ProgressID:       p.ID,
			UserID:           p.UserID,
			CourseID:         c.ID,
			CourseName:       c.Name,
			CompletedLessons: p.CompletedLessons,
			TotalLessons:     c.TotalLessons,
			LastActivity:     p.LastActivity,
		}
		if u, ok := byUser[p.UserID]; ok {
			row.UserName = u[0].Name
			row.Region = u[0].Region
		}
		if rate, err := CompletionRate(p.CompletedLessons, c.TotalLessons); err != nil {
			row.CompletionRate = Failed[decimal.Decimal](err)
		} else {
			row.CompletionRate = OK(rate)
		}
		rows = append(rows, row)
	}
	return rows, stats
}

// BuildLearningReport runs the learning-platform pipeline for one filter.
// Subscriptions and progress follow their user's region; book sales carry
// their own region.
func BuildLearningReport(in LearningInput, filter RegionFilter, f *Formatter) *LearningReport {
	users := Where(in.Users, func(u models.User) bool { return filter.Matches(u.Region) })
	regionOf := IndexBy(in.Users, func(u models.User) int { return u.ID })
	userMatches := func(id int) bool {
		if filter.IsAll() {
			return true
		}
		u, ok := regionOf[id]
		return ok && filter.Matches(u[0].Region)
	}

	subs := Where(in.Subscriptions, func(s models.Subscription) bool { return userMatches(s.UserID) })
	allProgress, stats := FlattenProgress(in.Progress, in.Courses, in.Users)
	progress := Where(allProgress, func(r FlatProgressRow) bool { return userMatches(r.UserID) })
	bookSales := Where(in.BookSales, func(b models.BookSale) bool { return filter.Matches(b.Region) })

	amount := func(b models.BookSale) decimal.Decimal { return b.TotalAmount }
	monthly := SumBy(bookSales, func(b models.BookSale) string { return MonthLabel(b.SaleDate) }, amount).SortedByKey()

	withBook, bookStats := InnerJoin(bookSales, in.Books,
		func(b models.BookSale) int { return b.BookID },
		func(b models.Book) int { return b.ID },
	)
	byFormat := SumBy(withBook,
		func(j Joined[models.BookSale, models.Book]) string { return j.Right.Format },
		func(j Joined[models.BookSale, models.Book]) decimal.Decimal { return j.Left.TotalAmount },
	)

	bySource := SumBy(in.Revenues,
		func(r models.Revenue) string { return string(r.Source) },
		func(r models.Revenue) decimal.Decimal { return r.Amount },
	)

	report := &LearningReport{
		Filter:            filter,
		MonthlyBookSales:  monthly,
		BookSalesByFormat: byFormat.SortedByValueDesc(),
		RevenueBySource:   bySource,
		RevenueShare:      Shares(bySource),
		Subscriptions:     subs,
		Progress:          progress,
		BookSales:         bookSales,
		Revenues:          in.Revenues,
		Attrition: JoinStats{
			Input:   stats.Input + bookStats.Input,
			Output:  stats.Output + bookStats.Output,
			Dropped: stats.Dropped + bookStats.Dropped,
		},
	}

	for _, r := range progress {
		switch {
		case r.TotalLessons == 0:
			report.Quality.ZeroLessonCourses++
		case r.CompletedLessons > r.TotalLessons:
			report.Quality.OverCompletedProgress++
		}
	}
	for _, b := range bookSales {
		if b.Quantity <= 0 {
			report.Quality.NonPositiveQuantity++
		}
	}

	renewed := len(Where(subs, func(s models.Subscription) bool { return s.Renewed }))
	report.Metrics = []Metric{
		f.Number("total_revenue", "Total revenue", UnitCurrency, OK(bySource.Total())),
		f.Count("learner_count", "Learners", len(users)),
		f.Number("books_sold", "Books sold", UnitCount,
			OK(Sum(bookSales, func(b models.BookSale) decimal.Decimal { return decimal.NewFromInt(int64(b.Quantity)) }))),
		f.Count("subscription_count", "Subscriptions", len(subs)),
		f.Number("retention_rate", "Retention rate", UnitPercent, RetentionRate(renewed, len(subs))),
		f.Number("average_completion", "Average completion", UnitPercent, AverageCompletion(progress)),
		f.Number("book_sales_growth", "Book sales growth", UnitPercent, MonthOverMonthGrowth(monthly)),
		f.Number("youtube_share", "YouTube membership share", UnitPercent,
			ShareOf(bySource, string(models.RevenueYoutubeMemberships))),
	}
	return report
}
