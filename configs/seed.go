package configs

import (
	"log"

	"github.com/seanhu1010/vue3-element-backend/entity"
)

// Seed ค่า lookup เริ่มต้น (idempotent)
func SeedLookups() error {
	db := DB()

	// Tables 1..10
	for i := uint(1); i <= 10; i++ {
		if err := db.FirstOrCreate(&entity.Table{}, entity.Table{TableNumber: i}).Error; err != nil {
			return err
		}
	}

	// Dish lookups
	for _, name := range []string{"Hot Dishes", "Cold Dishes", "Soups", "Drinks"} {
		db.FirstOrCreate(&entity.DishCategory{}, entity.DishCategory{Category: name})
	}
	for _, name := range []string{"portion", "bowl", "cup", "bottle"} {
		db.FirstOrCreate(&entity.DishUnit{}, entity.DishUnit{Unit: name})
	}

	log.Println("lookup tables seeded")
	return nil
}
