package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/db/repositories"
	"pyc-official/secretariat/internal/metrics"
	"pyc-official/secretariat/internal/models/dtos"
	gormModels "pyc-official/secretariat/internal/models/gorm"
	"pyc-official/secretariat/internal/services"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// promauto registers into the default registry; a second call in the same
// test binary would panic, so all tests share one registry.
var testMetrics = metrics.NewMetricsRegistry()

func setupTestHandlers(t *testing.T) (*Handlers, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&gormModels.Member{},
		&gormModels.Registration{},
		&gormModels.NewsItem{},
		&gormModels.ContentItem{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	memberRepo := repositories.NewMemberRepository(db)
	regRepo := repositories.NewRegistrationRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	contentRepo := repositories.NewContentRepository(db)

	newsSvc := services.NewNewsService(newsRepo)
	contentSvc := services.NewContentService(contentRepo)

	deps := &Dependencies{
		Repo: &Repositories{
			Members:       memberRepo,
			Registrations: regRepo,
			News:          newsRepo,
			Content:       contentRepo,
		},
		Services: &Services{
			Cache:        common.NewCacheService(60, 60),
			Profile:      services.NewProfileService(memberRepo, regRepo, time.UTC),
			Checkin:      services.NewCheckinService(memberRepo, time.UTC),
			Registration: services.NewRegistrationService(regRepo),
			News:         newsSvc,
			Content:      contentSvc,
			Feed:         services.NewFeedService(newsSvc, contentSvc),
		},
		Metrics:  testMetrics,
		Location: time.UTC,
	}

	return NewHandlers(deps), db
}

func TestCreateRegistration_Success(t *testing.T) {
	handlers, db := setupTestHandlers(t)

	body, _ := json.Marshal(dtos.CreateRegistrationRequest{
		Name:  "Test Volunteer",
		Email: "volunteer@example.com",
		City:  "Karachi",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handlers.CreateRegistration()(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var stored gormModels.Registration
	if err := db.Where("email = ?", "volunteer@example.com").First(&stored).Error; err != nil {
		t.Fatalf("Registration not stored: %v", err)
	}
	if stored.Status != "pending" {
		t.Errorf("Expected pending status, got %s", stored.Status)
	}
}

func TestCreateRegistration_RejectsMissingEmail(t *testing.T) {
	handlers, _ := setupTestHandlers(t)

	body, _ := json.Marshal(dtos.CreateRegistrationRequest{Name: "No Email"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/registrations", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handlers.CreateRegistration()(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestListNews_ReturnsStoredItems(t *testing.T) {
	handlers, db := setupTestHandlers(t)

	db.Create(&gormModels.NewsItem{Title: "Launch event", Description: "We launched", Date: "2025-06-01"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/news", nil)
	rec := httptest.NewRecorder()

	handlers.ListNews()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Status string                `json:"status"`
		Data   []gormModels.NewsItem `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Expected ok status, got %s", resp.Status)
	}
	if len(resp.Data) != 1 || resp.Data[0].Title != "Launch event" {
		t.Errorf("Unexpected news payload: %+v", resp.Data)
	}
}

func TestGetFeed_BundlesNewsAndContent(t *testing.T) {
	handlers, db := setupTestHandlers(t)

	db.Create(&gormModels.NewsItem{Title: "Story", Date: "2025-06-01"})
	db.Create(&gormModels.ContentItem{Title: "Drive", Type: "showcase", Date: "2025-06-02"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	rec := httptest.NewRecorder()

	handlers.GetFeed()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data dtos.FeedResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if len(resp.Data.News) != 1 || len(resp.Data.Content) != 1 {
		t.Errorf("Expected 1 news and 1 content item, got %d/%d", len(resp.Data.News), len(resp.Data.Content))
	}
}
