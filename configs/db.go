package configs

import (
	"strings"

	"github.com/seanhu1010/vue3-element-backend/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// withForeignKeys adds _foreign_keys=on to a sqlite DSN. The pragma is
// per-connection, so it has to ride on the DSN to cover every pooled
// connection, not a one-off Exec.
func withForeignKeys(source string) string {
	if strings.Contains(source, "_foreign_keys=") {
		return source
	}
	if strings.Contains(source, "?") {
		return source + "&_foreign_keys=on"
	}
	return source + "?_foreign_keys=on"
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(withForeignKeys(source)), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.Table{},
		&entity.DishCategory{}, &entity.DishUnit{}, &entity.DishImage{}, &entity.Dish{},
		&entity.Order{}, &entity.DishDetail{},
		&entity.Employee{},
		&entity.User{}, &entity.UserProfile{},
	)
}
