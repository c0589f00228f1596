package controllers_test

import (
	"net/http"
	"testing"

	"github.com/seanhu1010/vue3-element-backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginFlow(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/user-resource/register", map[string]any{
		"username": "alice", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	decodeBody(t, w, &body)
	assert.Equal(t, "Registration successful.", body["msg"])

	// duplicate username → 400 and no extra row
	w = doJSON(t, r, http.MethodPost, "/user-resource/register", map[string]any{
		"username": "alice", "password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var count int64
	db.Model(&entity.User{}).Where("username = ?", "alice").Count(&count)
	assert.EqualValues(t, 1, count)

	// missing password → 400
	w = doJSON(t, r, http.MethodPost, "/user-resource/register", map[string]any{
		"username": "bob",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// wrong password → 400, no token
	w = doJSON(t, r, http.MethodPost, "/user-resource/login", map[string]any{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body = map[string]any{}
	decodeBody(t, w, &body)
	assert.NotContains(t, body, "token")

	// correct credentials → 200 with a non-empty token
	w = doJSON(t, r, http.MethodPost, "/user-resource/login", map[string]any{
		"username": "alice", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body = map[string]any{}
	decodeBody(t, w, &body)
	assert.Equal(t, "Login successful.", body["msg"])
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	// the user list is gated on that token
	w = authedGet(t, r, "/user-resource", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = authedGet(t, r, "/user-resource", token)
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]any
	decodeBody(t, w, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0]["username"])
}

func TestRegisterProfileHandling(t *testing.T) {
	r, db := newTestServer(t)

	// full profile is stored
	w := doJSON(t, r, http.MethodPost, "/user-resource/register", map[string]any{
		"username": "erin", "password": "pw",
		"avatar": "avatars/erin.png", "gender": "female", "occupation": "cashier",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// partial profile is silently dropped
	w = doJSON(t, r, http.MethodPost, "/user-resource/register", map[string]any{
		"username": "dave", "password": "pw", "gender": "male",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var profiles int64
	db.Model(&entity.UserProfile{}).Count(&profiles)
	assert.EqualValues(t, 1, profiles)

	// out-of-enum gender → 400
	w = doJSON(t, r, http.MethodPost, "/user-resource/register", map[string]any{
		"username": "mallory", "password": "pw",
		"avatar": "a.png", "gender": "robot", "occupation": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
