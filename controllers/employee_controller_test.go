package controllers_test

import (
	"net/http"
	"testing"

	"github.com/seanhu1010/vue3-element-backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCRUD(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/employees", map[string]any{
		"employee_number": "E001",
		"name":            "Zhang San",
		"gender":          "male",
		"position":        "waiter",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	decodeBody(t, w, &created)
	assert.Equal(t, "E001", created["employee_number"])
	assert.Equal(t, false, created["is_resigned"])

	// bad enum value is a 400 with a msg body
	w = doJSON(t, r, http.MethodPost, "/employees", map[string]any{
		"employee_number": "E002",
		"name":            "Li Si",
		"gender":          "other",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errBody map[string]any
	decodeBody(t, w, &errBody)
	assert.Contains(t, errBody, "msg")

	// duplicate employee number is rejected
	w = doJSON(t, r, http.MethodPost, "/employees", map[string]any{
		"employee_number": "E001",
		"name":            "Wang Wu",
		"gender":          "female",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	decodeBody(t, w, &list)
	assert.Len(t, list, 1)
}

func TestEmployeeDeleteMultiple(t *testing.T) {
	r, db := newTestServer(t)

	var ids []uint
	for _, n := range []string{"E001", "E002", "E003"} {
		emp := entity.Employee{EmployeeNumber: n, Name: n, Gender: entity.GenderFemale, Position: "chef"}
		require.NoError(t, db.Create(&emp).Error)
		ids = append(ids, emp.ID)
	}

	// empty id list → 400
	w := doJSON(t, r, http.MethodPost, "/employees/delete-multiple/", map[string]any{"ids": []uint{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown id → 404, nothing deleted
	w = doJSON(t, r, http.MethodPost, "/employees/delete-multiple/", map[string]any{"ids": []uint{ids[0], 9999}})
	assert.Equal(t, http.StatusNotFound, w.Code)
	var count int64
	db.Model(&entity.Employee{}).Count(&count)
	assert.EqualValues(t, 3, count)

	// valid ids → success, exactly those rows removed
	w = doJSON(t, r, http.MethodPost, "/employees/delete-multiple/", map[string]any{"ids": ids[:2]})
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	decodeBody(t, w, &body)
	assert.Equal(t, "success", body["status"])

	var remaining []entity.Employee
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "E003", remaining[0].EmployeeNumber)
}
