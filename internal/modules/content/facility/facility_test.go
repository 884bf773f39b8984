package facility

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sman1gebog/web-core/internal/database"
	"github.com/sman1gebog/web-core/internal/modules/storage/upload"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	uploads := upload.NewService(db, t.TempDir(), "http://localhost:5000", nil)
	router := gin.New()
	api := router.Group("/api")
	passMW := func(c *gin.Context) { c.Next() }
	NewHandler(NewService(db, uploads)).RegisterRoutes(api, passMW)
	return router
}

func postForm(t *testing.T, router *gin.Engine, method, path string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateFacilityRequiresName(t *testing.T) {
	router := testRouter(t)

	rec := postForm(t, router, "POST", "/api/facilities", map[string]string{
		"description": "tanpa nama",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestPartialPutKeepsUnspecifiedFields(t *testing.T) {
	router := testRouter(t)

	rec := postForm(t, router, "POST", "/api/facilities", map[string]string{
		"name":        "Perpustakaan",
		"description": "Koleksi 5000 buku",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	var created struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	rec = postForm(t, router, "PUT", fmt.Sprintf("/api/facilities/%d", created.ID), map[string]string{
		"name": "Perpustakaan Digital",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/facilities", nil)
	router.ServeHTTP(w, req)

	var items []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 facility, got %d", len(items))
	}
	if items[0].Name != "Perpustakaan Digital" {
		t.Errorf("name = %q", items[0].Name)
	}
	if items[0].Description != "Koleksi 5000 buku" {
		t.Errorf("description should be untouched, got %q", items[0].Description)
	}
}

func TestCreateFacilityPersistsCategory(t *testing.T) {
	router := testRouter(t)

	rec := postForm(t, router, "POST", "/api/facilities", map[string]string{
		"name":        "Lab Komputer",
		"description": "30 unit PC",
		"category":    "Akademik",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	var created struct {
		ID       uint   `json:"id"`
		Category string `json:"category"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.Category != "Akademik" {
		t.Errorf("category = %q", created.Category)
	}

	rec = postForm(t, router, "PUT", fmt.Sprintf("/api/facilities/%d", created.ID), map[string]string{
		"category": "Umum",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("put failed: %d: %s", rec.Code, rec.Body.String())
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/facilities", nil)
	router.ServeHTTP(w, req)
	var items []struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 facility, got %d", len(items))
	}
	if items[0].Category != "Umum" {
		t.Errorf("category = %q", items[0].Category)
	}
	if items[0].Name != "Lab Komputer" {
		t.Errorf("name should be untouched, got %q", items[0].Name)
	}
}

func TestUpdateMissingFacilityStillReportsSuccess(t *testing.T) {
	router := testRouter(t)

	rec := postForm(t, router, "PUT", "/api/facilities/424242", map[string]string{
		"name": "Tidak ada",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
