package sections

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sman1gebog/web-core/internal/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testDB(t *testing.T) *gorm.DB {
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
	return db
}

func testRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	api := router.Group("/api")
	passMW := func(c *gin.Context) { c.Next() }
	NewProfileHandler(db).RegisterRoutes(api, passMW)
	NewPPDBHandler(db).RegisterRoutes(api, passMW)
	return router
}

func TestUpsertWithoutSeededRows(t *testing.T) {
	db := testDB(t)
	router := testRouter(db)

	body := `{"visi_misi":{"visi":"Unggul"},"sejarah":{"paragraphs":["Berdiri 1990"]}}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/profile", nil)
	router.ServeHTTP(w, req)

	var out map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(out))
	}
	var visiMisi struct {
		Visi string `json:"visi"`
	}
	if err := json.Unmarshal(out["visi_misi"], &visiMisi); err != nil {
		t.Fatalf("unmarshal visi_misi: %v", err)
	}
	if visiMisi.Visi != "Unggul" {
		t.Errorf("visi = %q", visiMisi.Visi)
	}
}

func TestPartialPutLeavesOtherKeysUntouched(t *testing.T) {
	db := testDB(t)
	router := testRouter(db)

	seed := `{"timeline":{"items":[]},"requirements":{"items":["Ijazah"]},"contact":{"phone":"123"}}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/ppdb", strings.NewReader(seed))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("seed put failed: %d", w.Code)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("PUT", "/api/ppdb", strings.NewReader(`{"timeline":{"items":[{"label":"Seleksi"}]}}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("partial put failed: %d", w.Code)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/ppdb", nil)
	router.ServeHTTP(w, req)

	var out map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var contact struct {
		Phone string `json:"phone"`
	}
	if err := json.Unmarshal(out["contact"], &contact); err != nil {
		t.Fatalf("unmarshal contact: %v", err)
	}
	if contact.Phone != "123" {
		t.Errorf("contact should be untouched, got %s", out["contact"])
	}
	if !strings.Contains(string(out["timeline"]), "Seleksi") {
		t.Errorf("timeline not updated: %s", out["timeline"])
	}
}

func TestUnknownAndNullKeysAreSkipped(t *testing.T) {
	db := testDB(t)
	store := NewStore(db, "ppdb_content", PPDBKeys)

	payload := map[string]json.RawMessage{
		"timeline":  json.RawMessage(`{"items":[]}`),
		"contact":   json.RawMessage("null"),
		"not_a_key": json.RawMessage(`{"x":1}`),
	}
	if err := store.Apply(payload); err != nil {
		t.Fatalf("apply: %v", err)
	}

	out, err := store.Fetch()
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected only timeline to be written, got %d keys", len(out))
	}
	if _, ok := out["timeline"]; !ok {
		t.Error("timeline missing")
	}
}

func TestMalformedStoredContentFoldsToEmptyObject(t *testing.T) {
	db := testDB(t)

	err := db.Exec(
		"INSERT INTO profile_content (section_key, content, updated_at) VALUES (?, ?, ?)",
		"sejarah", "not-json", time.Now(),
	).Error
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	store := NewStore(db, "profile_content", ProfileKeys)
	out, err := store.Fetch()
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(out["sejarah"]) != "{}" {
		t.Errorf("expected empty object, got %s", out["sejarah"])
	}
}

func TestRepeatedUpsertOverwritesSameKey(t *testing.T) {
	db := testDB(t)
	store := NewStore(db, "profile_content", ProfileKeys)

	for i := 1; i <= 3; i++ {
		payload := map[string]json.RawMessage{
			"osis": json.RawMessage(fmt.Sprintf(`{"rev":%d}`, i)),
		}
		if err := store.Apply(payload); err != nil {
			t.Fatalf("apply rev %d: %v", i, err)
		}
	}

	out, err := store.Fetch()
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	var rev struct {
		Rev int `json:"rev"`
	}
	if err := json.Unmarshal(out["osis"], &rev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rev.Rev != 3 {
		t.Errorf("expected last write to win, got rev %d", rev.Rev)
	}

	var count int64
	db.Table("profile_content").Count(&count)
	if count != 1 {
		t.Errorf("expected a single row, got %d", count)
	}
}
