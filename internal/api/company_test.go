package api

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyLimitPerOwner(t *testing.T) {
	testDB := SetupTestDB(t)
	router := NewTestRouter(testDB)

	_, token := CreateTestUserAndToken(t, testDB)

	for i := 0; i < 3; i++ {
		w := PerformRequest(router, "POST", "/api/v1/companies", map[string]interface{}{
			"name":     fmt.Sprintf("Workshop %d", i),
			"location": "Bremen",
		}, token)
		require.Equal(t, 201, w.Code)
	}

	w := PerformRequest(router, "POST", "/api/v1/companies", map[string]interface{}{
		"name":     "Workshop 4",
		"location": "Bremen",
	}, token)
	assert.Equal(t, 422, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "max limit of 3 companies")
}

func TestCompanyNameLocationPairIsGlobal(t *testing.T) {
	testDB := SetupTestDB(t)
	router := NewTestRouter(testDB)

	_, firstToken := CreateTestUserAndToken(t, testDB)
	_, secondToken := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/companies", map[string]interface{}{
		"name":     "Vogt Painting",
		"location": "Leipzig",
	}, firstToken)
	require.Equal(t, 201, w.Code)

	// The same pair conflicts even for a different owner.
	w = PerformRequest(router, "POST", "/api/v1/companies", map[string]interface{}{
		"name":     "Vogt Painting",
		"location": "Leipzig",
	}, secondToken)
	assert.Equal(t, 409, w.Code)

	// Same name in a different location is fine.
	w = PerformRequest(router, "POST", "/api/v1/companies", map[string]interface{}{
		"name":     "Vogt Painting",
		"location": "Dresden",
	}, secondToken)
	assert.Equal(t, 201, w.Code)
}

func TestCompanyOwnershipOnUpdateAndDelete(t *testing.T) {
	testDB := SetupTestDB(t)
	router := NewTestRouter(testDB)

	_, ownerToken := CreateTestUserAndToken(t, testDB)
	_, otherToken := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/companies", map[string]interface{}{
		"name":     "Kurz Electrics",
		"location": "Essen",
	}, ownerToken)
	require.Equal(t, 201, w.Code)

	var company CompanyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &company))

	w = PerformRequest(router, "PUT", "/api/v1/companies/"+company.ID, map[string]interface{}{
		"name": "Stolen Electrics",
	}, otherToken)
	assert.Equal(t, 403, w.Code)

	w = PerformRequest(router, "DELETE", "/api/v1/companies/"+company.ID, nil, otherToken)
	assert.Equal(t, 403, w.Code)

	w = PerformRequest(router, "PUT", "/api/v1/companies/"+company.ID, map[string]interface{}{
		"name": "Kurz Elektrik",
	}, ownerToken)
	require.Equal(t, 200, w.Code)

	var updated CompanyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Kurz Elektrik", updated.Name)

	w = PerformRequest(router, "DELETE", "/api/v1/companies/"+company.ID, nil, ownerToken)
	assert.Equal(t, 204, w.Code)
}

func TestCompanyEmployeeCount(t *testing.T) {
	testDB := SetupTestDB(t)
	router := NewTestRouter(testDB)

	_, ownerToken := CreateTestUserAndToken(t, testDB)
	_, employeeToken := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/companies", map[string]interface{}{
		"name":     "Beck Woodworks",
		"location": "Hamburg",
	}, ownerToken)
	require.Equal(t, 201, w.Code)

	var company CompanyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &company))
	assert.Equal(t, int64(0), company.EmployeeCount)

	// The employee sets the company on their own profile.
	w = PerformRequest(router, "GET", "/api/v1/profiles", nil, "")
	require.Equal(t, 200, w.Code)
	var listing struct {
		Profiles []ProfileResponse `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))

	var employeeProfileID string
	for _, p := range listing.Profiles {
		w := PerformRequest(router, "PUT", "/api/v1/profiles/"+p.ID, map[string]interface{}{
			"employer_id": company.ID,
		}, employeeToken)
		if w.Code == 200 {
			employeeProfileID = p.ID
			break
		}
	}
	require.NotEmpty(t, employeeProfileID)

	w = PerformRequest(router, "GET", "/api/v1/companies/"+company.ID, nil, "")
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &company))
	assert.Equal(t, int64(1), company.EmployeeCount)
}
