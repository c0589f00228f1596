package services

import (
	"testing"

	"github.com/seanhu1010/vue3-element-backend/entity"
	"github.com/seanhu1010/vue3-element-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidPeriod(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db))

	_, err := svc.DishSalesRank("year")
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.TotalAmountStatistics("")
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	// category rank only offers week and month
	_, err = svc.CategorySalesRank(PeriodDay)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestDishSalesRankEmptyWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db))

	result, err := svc.DishSalesRank(PeriodDay)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestDishSalesRankOrdersByQuantity(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(repository.NewStatsRepository(db))
	orders := NewOrderService(db, repository.NewOrderRepository(db))

	tofu := seedDish(t, db, "Mapo Tofu", 50, "Hot Dishes")
	salad := seedDish(t, db, "Cucumber Salad", 30, "Cold Dishes")
	order := seedOrder(t, db)

	_, err := orders.CreateLine(&LineRequest{Dish: tofu.ID, Order: order.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = orders.CreateLine(&LineRequest{Dish: salad.ID, Order: order.ID, Quantity: 5})
	require.NoError(t, err)

	result, err := stats.DishSalesRank(PeriodDay)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Cucumber Salad", result[0].Name)
	assert.Equal(t, uint(5), result[0].TotalSales)
	assert.Equal(t, "Mapo Tofu", result[1].Name)
	assert.Equal(t, uint(2), result[1].TotalSales)
}

func TestCategorySalesRankGroupsByCategory(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(repository.NewStatsRepository(db))
	orders := NewOrderService(db, repository.NewOrderRepository(db))

	tofu := seedDish(t, db, "Mapo Tofu", 50, "Hot Dishes")
	rice := seedDish(t, db, "Fried Rice", 25, "Hot Dishes")
	salad := seedDish(t, db, "Cucumber Salad", 30, "Cold Dishes")
	order := seedOrder(t, db)

	for _, line := range []LineRequest{
		{Dish: tofu.ID, Order: order.ID, Quantity: 2},
		{Dish: rice.ID, Order: order.ID, Quantity: 1},
		{Dish: salad.ID, Order: order.ID, Quantity: 4},
	} {
		_, err := orders.CreateLine(&line)
		require.NoError(t, err)
	}

	result, err := stats.CategorySalesRank(PeriodWeek)
	require.NoError(t, err)
	require.Len(t, result, 2)

	byCategory := map[string][]DatedSales{}
	for _, entry := range result {
		byCategory[entry.Category] = entry.Data
	}
	require.Len(t, byCategory["Hot Dishes"], 1)
	assert.Equal(t, uint(3), byCategory["Hot Dishes"][0].TotalSales)
	require.Len(t, byCategory["Cold Dishes"], 1)
	assert.Equal(t, uint(4), byCategory["Cold Dishes"][0].TotalSales)
}

func TestTotalAmountStatisticsBuckets(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(repository.NewStatsRepository(db))

	table := entity.Table{TableNumber: 3}
	require.NoError(t, db.Create(&table).Error)
	for _, total := range []float64{0, 199.99, 200, 1999.99, 2000, 2600} {
		order := entity.Order{TableID: table.ID, NumberOfPeople: 2, TotalAmount: total, TransactionStatus: entity.StatusUnpaid}
		require.NoError(t, db.Create(&order).Error)
	}

	result, err := stats.TotalAmountStatistics(PeriodDay)
	require.NoError(t, err)
	require.Len(t, result, 11)

	counts := map[string]int{}
	sum := 0
	for _, bucket := range result {
		counts[bucket.Ranges] = bucket.Statistics
		sum += bucket.Statistics
	}
	// every order lands in exactly one bucket
	assert.Equal(t, 6, sum)
	assert.Equal(t, 2, counts["0-200"])    // 0 and 199.99
	assert.Equal(t, 1, counts["200-400"])  // boundary 200 rolls up
	assert.Equal(t, 1, counts["1800-2000"])
	assert.Equal(t, 2, counts["2000-inf"]) // boundary 2000 and beyond
	assert.Equal(t, 0, counts["400-600"])

	// bucket order is fixed, zeros included
	assert.Equal(t, "0-200", result[0].Ranges)
	assert.Equal(t, "2000-inf", result[10].Ranges)
}

func TestTotalAmountStatisticsEmptyWindow(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(repository.NewStatsRepository(db))

	result, err := stats.TotalAmountStatistics(PeriodMonth)
	require.NoError(t, err)
	require.Len(t, result, 11)
	for _, bucket := range result {
		assert.Zero(t, bucket.Statistics)
	}
}

func TestTotalAmountStatisticsLeavesNegativeTotalsOut(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(repository.NewStatsRepository(db))

	table := entity.Table{TableNumber: 9}
	require.NoError(t, db.Create(&table).Error)
	for _, total := range []float64{-50, 120} {
		order := entity.Order{TableID: table.ID, NumberOfPeople: 1, TotalAmount: total, TransactionStatus: entity.StatusUnpaid}
		require.NoError(t, db.Create(&order).Error)
	}

	result, err := stats.TotalAmountStatistics(PeriodDay)
	require.NoError(t, err)

	sum := 0
	for _, bucket := range result {
		sum += bucket.Statistics
	}
	assert.Equal(t, 1, sum)
	assert.Equal(t, 1, result[0].Statistics) // a total below zero lands nowhere
}
