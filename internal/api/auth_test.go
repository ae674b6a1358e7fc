package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginFlow(t *testing.T) {
	testDB := SetupTestDB(t)
	router := NewTestRouter(testDB)

	w := PerformRequest(router, "POST", "/api/v1/auth/register", map[string]interface{}{
		"username": "craftsman",
		"email":    "craftsman@example.com",
		"password": "supersecret1",
		"name":     "Jo Craftsman",
		"job":      "Joiner",
	}, "")
	require.Equal(t, 201, w.Code)

	var registered map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered["token"])
	assert.Equal(t, "craftsman", registered["username"])

	// Same username again conflicts.
	w = PerformRequest(router, "POST", "/api/v1/auth/register", map[string]interface{}{
		"username": "craftsman",
		"email":    "other@example.com",
		"password": "supersecret1",
	}, "")
	assert.Equal(t, 409, w.Code)

	// Wrong password.
	w = PerformRequest(router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "craftsman@example.com",
		"password": "wrongpassword",
	}, "")
	assert.Equal(t, 401, w.Code)

	w = PerformRequest(router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "craftsman@example.com",
		"password": "supersecret1",
	}, "")
	require.Equal(t, 200, w.Code)

	var loggedIn map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loggedIn))
	assert.NotEmpty(t, loggedIn["token"])
}

func TestRegisterValidation(t *testing.T) {
	testDB := SetupTestDB(t)
	router := NewTestRouter(testDB)

	w := PerformRequest(router, "POST", "/api/v1/auth/register", map[string]interface{}{
		"username": "ab",
		"email":    "not-an-email",
		"password": "short",
	}, "")
	assert.Equal(t, 400, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "errors")
}

func TestLogoutInvalidatesToken(t *testing.T) {
	testDB := SetupTestDB(t)
	router := NewTestRouter(testDB)

	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/auth/logout", nil, token)
	require.Equal(t, 200, w.Code)

	// The session behind the token is gone.
	w = PerformRequest(router, "POST", "/api/v1/posts", map[string]interface{}{
		"title": "After logout",
	}, token)
	assert.Equal(t, 401, w.Code)
}

func TestDeleteAccountCascades(t *testing.T) {
	testDB := SetupTestDB(t)
	router := NewTestRouter(testDB)

	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "GET", "/api/v1/profiles", nil, "")
	require.Equal(t, 200, w.Code)
	var listing struct {
		Profiles []ProfileResponse `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.Profiles, 1)
	profileID := listing.Profiles[0].ID

	w = PerformRequest(router, "DELETE", "/api/v1/account", nil, token)
	require.Equal(t, 204, w.Code)

	// Profile is gone.
	w = PerformRequest(router, "GET", "/api/v1/profiles/"+profileID, nil, "")
	assert.Equal(t, 404, w.Code)

	// The token no longer works.
	w = PerformRequest(router, "DELETE", "/api/v1/account", nil, token)
	assert.Equal(t, 401, w.Code)
}

func TestDeleteAccountRequiresAuth(t *testing.T) {
	testDB := SetupTestDB(t)
	router := NewTestRouter(testDB)

	w := PerformRequest(router, "DELETE", "/api/v1/account", nil, "")
	assert.Equal(t, 401, w.Code)
}
