package gallery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
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

func testRouter(t *testing.T) (*gin.Engine, string) {
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

	dir := t.TempDir()
	uploads := upload.NewService(db, dir, "http://localhost:5000", nil)
	router := gin.New()
	api := router.Group("/api")
	passMW := func(c *gin.Context) { c.Next() }
	NewHandler(NewService(db, uploads)).RegisterRoutes(api, passMW)
	return router, dir
}

func postPhoto(t *testing.T, router *gin.Engine, fields map[string]string, withImage bool) *httptest.ResponseRecorder {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if withImage {
		fw, err := w.CreateFormFile("image", "foto.jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("fake-jpeg-bytes")); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/gallery/photos", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreatePhotoRequiresImage(t *testing.T) {
	router, _ := testRouter(t)

	rec := postPhoto(t, router, map[string]string{"title": "Upacara"}, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Image is required") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestCreatePhotoRequiresTitle(t *testing.T) {
	router, _ := testRouter(t)

	rec := postPhoto(t, router, nil, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Title is required") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestCreateListDeletePhoto(t *testing.T) {
	router, dir := testRouter(t)

	rec := postPhoto(t, router, map[string]string{
		"title":       "Upacara Bendera",
		"description": "Upacara hari Senin",
	}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	var created struct {
		ID          uint   `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		Category    string `json:"category"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.Category != "Lainnya" {
		t.Errorf("expected default category, got %q", created.Category)
	}
	if created.Description != "Upacara hari Senin" {
		t.Errorf("description = %q", created.Description)
	}
	if !strings.Contains(created.ImageURL, "/uploads/") {
		t.Errorf("image_url = %q", created.ImageURL)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 stored file, got %d", len(entries))
	}
	stored := filepath.Join(dir, entries[0].Name())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/gallery/photos", nil)
	router.ServeHTTP(w, req)
	var items []struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(items) != 1 || items[0].ID != created.ID {
		t.Fatalf("unexpected list: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", fmt.Sprintf("/api/gallery/photos/%d", created.ID), nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %d: %s", w.Code, w.Body.String())
	}

	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Errorf("stored file should be removed, stat err = %v", err)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/gallery/photos", nil)
	router.ServeHTTP(w, req)
	if body := bytes.TrimSpace(w.Body.Bytes()); string(body) != "[]" {
		t.Errorf("expected empty list, got %s", body)
	}
}

func TestDeleteMissingPhotoStillReportsSuccess(t *testing.T) {
	router, _ := testRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/gallery/photos/9999", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
