package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/seanhu1010/vue3-element-backend/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// unique shared-cache name so gorm's pooled connections see one database
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Table{},
		&entity.DishCategory{}, &entity.DishUnit{}, &entity.DishImage{}, &entity.Dish{},
		&entity.Order{}, &entity.DishDetail{},
		&entity.Employee{},
		&entity.User{}, &entity.UserProfile{},
	))
	return db
}

// seedDish creates a dish plus the category/unit/image rows it references.
func seedDish(t *testing.T, db *gorm.DB, name string, price float64, category string) *entity.Dish {
	t.Helper()
	cat := entity.DishCategory{Category: category}
	require.NoError(t, db.FirstOrCreate(&cat, entity.DishCategory{Category: category}).Error)
	unit := entity.DishUnit{Unit: "portion"}
	require.NoError(t, db.FirstOrCreate(&unit, entity.DishUnit{Unit: "portion"}).Error)
	img := entity.DishImage{File: "images/" + name + ".jpg"}
	require.NoError(t, db.Create(&img).Error)

	dish := entity.Dish{
		Name:       name,
		Price:      price,
		IsOnSale:   true,
		CategoryID: cat.ID,
		FileID:     img.ID,
		UnitID:     unit.ID,
	}
	require.NoError(t, db.Create(&dish).Error)
	return &dish
}

func seedOrder(t *testing.T, db *gorm.DB) *entity.Order {
	t.Helper()
	table := entity.Table{TableNumber: 1}
	require.NoError(t, db.FirstOrCreate(&table, entity.Table{TableNumber: 1}).Error)
	order := entity.Order{TableID: table.ID, NumberOfPeople: 2, TransactionStatus: entity.StatusUnpaid}
	require.NoError(t, db.Create(&order).Error)
	return &order
}
