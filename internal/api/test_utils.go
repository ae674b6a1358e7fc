package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/craftnet/backend/internal/database"
	"github.com/craftnet/backend/internal/service"
	"github.com/craftnet/backend/internal/types"
)

// TestDB holds the in-memory test database and services.
type TestDB struct {
	DB          *gorm.DB
	AuthService *service.AuthService
	Sessions    *service.MemorySessionStore
}

// SetupTestDB opens an isolated in-memory SQLite database and migrates the
// full schema. Each call gets its own DSN so tests never share state.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sessions := service.NewMemorySessionStore()
	return &TestDB{
		DB:          db,
		AuthService: service.NewAuthService(db, sessions, "test-secret"),
		Sessions:    sessions,
	}
}

// NewTestRouter builds a router with every API route registered against
// the test database, mirroring the production wiring minus Redis and S3.
func NewTestRouter(testDB *TestDB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	NewAuthHandler(testDB.AuthService).RegisterRoutes(v1)
	NewProfileHandler(service.NewProfileService(testDB.DB), testDB.AuthService, service.NewMediaService(nil)).RegisterRoutes(v1)
	NewCompanyHandler(service.NewCompanyService(testDB.DB), testDB.AuthService).RegisterRoutes(v1)
	NewPostHandler(service.NewPostService(testDB.DB), testDB.AuthService, nil).RegisterRoutes(v1)
	NewCommentHandler(service.NewCommentService(testDB.DB), testDB.AuthService).RegisterRoutes(v1)
	NewFollowerHandler(service.NewFollowerService(testDB.DB), testDB.AuthService).RegisterRoutes(v1)

	return router
}

// CreateTestUserAndToken registers a fresh user through the real auth
// service and returns their id and a valid token.
func CreateTestUserAndToken(t *testing.T, testDB *TestDB) (uuid.UUID, string) {
	t.Helper()

	suffix := uuid.NewString()[:8]
	user, token, err := testDB.AuthService.Register(context.Background(), &types.RegisterRequest{
		Username: "testuser_" + suffix,
		Email:    fmt.Sprintf("testuser+%s@example.com", suffix),
		Password: "testpassword123",
		Name:     "Test User",
		Job:      "Tester",
	})
	if err != nil {
		t.Fatalf("failed to register test user: %v", err)
	}
	return user.ID, token
}

// PerformRequest issues a request against the router, optionally with a
// JSON body and bearer token.
func PerformRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
