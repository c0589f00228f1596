package services

import (
	"testing"

	"github.com/seanhu1010/vue3-element-backend/entity"
	"github.com/seanhu1010/vue3-element-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteMultiple(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(repository.NewEmployeeRepository(db))

	var ids []uint
	for _, name := range []string{"A", "B", "C"} {
		emp := entity.Employee{EmployeeNumber: "E" + name, Name: name, Gender: entity.GenderMale, Position: "waiter"}
		require.NoError(t, db.Create(&emp).Error)
		ids = append(ids, emp.ID)
	}

	assert.ErrorIs(t, svc.DeleteMultiple(nil), ErrNoEmployeeIDs)
	assert.ErrorIs(t, svc.DeleteMultiple([]uint{}), ErrNoEmployeeIDs)

	// any unknown id fails before anything is deleted
	assert.ErrorIs(t, svc.DeleteMultiple([]uint{ids[0], 9999}), ErrEmployeeNotFound)
	var count int64
	db.Model(&entity.Employee{}).Count(&count)
	assert.EqualValues(t, 3, count)

	// valid ids remove exactly those rows
	require.NoError(t, svc.DeleteMultiple(ids[:2]))
	var remaining []entity.Employee
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "C", remaining[0].Name)
}
