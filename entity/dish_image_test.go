package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestDishImageNameDerivedOnFirstSave(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:dish_image_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&DishImage{}))

	img := DishImage{File: "images/sweet-and-sour-pork.jpg"}
	require.NoError(t, db.Create(&img).Error)
	assert.Equal(t, "sweet-and-sour-pork", img.Name)

	// a caller-supplied name is left alone
	named := DishImage{File: "images/braised-eggplant.png", Name: "Eggplant"}
	require.NoError(t, db.Create(&named).Error)
	assert.Equal(t, "Eggplant", named.Name)

	// later saves never overwrite the derived name
	img.Name = "Sweet and Sour Pork"
	require.NoError(t, db.Save(&img).Error)
	var got DishImage
	require.NoError(t, db.First(&got, img.ID).Error)
	assert.Equal(t, "Sweet and Sour Pork", got.Name)
}
