package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/seanhu1010/vue3-element-backend/repository"
)

var ErrInvalidPeriod = errors.New("invalid period")

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// histogram over order totals: ten width-200 buckets plus an open-ended one
const (
	bucketWidth = 200
	bucketCount = 10
)

type StatsService struct {
	repo *repository.StatsRepository
}

func NewStatsService(repo *repository.StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// ----- response shapes -----
type DatedSales struct {
	Date       string `json:"date"`
	TotalSales uint   `json:"total_sales"`
}

type CategorySales struct {
	Category string       `json:"category"`
	Data     []DatedSales `json:"data"`
}

type DishSales struct {
	Name       string `json:"name"`
	TotalSales uint   `json:"total_sales"`
}

type AmountBucket struct {
	Ranges     string `json:"ranges"`
	Statistics int    `json:"statistics"`
}

// timeRange resolves a period name into a window ending now.
func timeRange(period string) (time.Time, time.Time, error) {
	now := time.Now()
	switch period {
	case PeriodDay:
		return now.AddDate(0, 0, -1), now, nil
	case PeriodWeek:
		return now.AddDate(0, 0, -7), now, nil
	case PeriodMonth:
		return now.AddDate(0, 0, -30), now, nil
	}
	return time.Time{}, time.Time{}, ErrInvalidPeriod
}

// CategorySalesRank returns, per category, its day-by-day sales within the
// window. Only week and month windows are offered here.
func (s *StatsService) CategorySalesRank(period string) ([]CategorySales, error) {
	if period != PeriodWeek && period != PeriodMonth {
		return nil, ErrInvalidPeriod
	}
	start, end, err := timeRange(period)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.CategorySales(start, end)
	if err != nil {
		return nil, err
	}

	// group rows per category, keeping the query's ordering inside each
	index := make(map[string]int)
	result := make([]CategorySales, 0)
	for _, row := range rows {
		i, ok := index[row.Category]
		if !ok {
			i = len(result)
			index[row.Category] = i
			result = append(result, CategorySales{Category: row.Category})
		}
		result[i].Data = append(result[i].Data, DatedSales{Date: row.Date, TotalSales: row.TotalSales})
	}
	return result, nil
}

// DishSalesRank returns dishes ranked by quantity sold within the window.
func (s *StatsService) DishSalesRank(period string) ([]DishSales, error) {
	start, end, err := timeRange(period)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.DishSales(start, end)
	if err != nil {
		return nil, err
	}
	result := make([]DishSales, 0, len(rows))
	for _, row := range rows {
		result = append(result, DishSales{Name: row.Name, TotalSales: row.TotalSales})
	}
	return result, nil
}

// TotalAmountStatistics buckets the window's orders by total_amount into
// half-open [start, end) ranges. All buckets are emitted, zeros included.
func (s *StatsService) TotalAmountStatistics(period string) ([]AmountBucket, error) {
	start, end, err := timeRange(period)
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.OrderTotals(start, end)
	if err != nil {
		return nil, err
	}

	buckets := make([]AmountBucket, bucketCount+1)
	for i := 0; i < bucketCount; i++ {
		buckets[i].Ranges = fmt.Sprintf("%d-%d", i*bucketWidth, (i+1)*bucketWidth)
	}
	buckets[bucketCount].Ranges = fmt.Sprintf("%d-inf", bucketCount*bucketWidth)

	for _, total := range totals {
		if total < 0 {
			continue
		}
		i := int(total / bucketWidth)
		if i > bucketCount {
			i = bucketCount
		}
		buckets[i].Statistics++
	}
	return buckets, nil
}
