package sections

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sman1gebog/web-core/internal/pkg/response"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileKeys are the recognized sections of the school profile page.
var ProfileKeys = []string{
	"visi_misi",
	"sejarah",
	"struktur_organisasi",
	"kepala_sekolah",
	"osis",
	"struktur_kurikulum",
	"program_unggulan",
}

// PPDBKeys are the recognized sections of the admission (PPDB) page.
var PPDBKeys = []string{"timeline", "requirements", "contact"}

var emptyObject = json.RawMessage("{}")

type sectionRow struct {
	SectionKey string
	Content    datatypes.JSON
}

// Store reads and writes one key/JSON-value content table. Only keys in its
// recognized set are ever written.
type Store struct {
	db    *gorm.DB
	table string
	keys  []string
}

func NewStore(db *gorm.DB, table string, keys []string) *Store {
	return &Store{db: db, table: table, keys: keys}
}

// Fetch folds all rows into a map keyed by section_key. A row whose content
// is not valid JSON folds to an empty object.
func (s *Store) Fetch() (map[string]json.RawMessage, error) {
	var rows []sectionRow
	if err := s.db.Table(s.table).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		content := json.RawMessage(row.Content)
		if !json.Valid(content) {
			content = emptyObject
		}
		out[row.SectionKey] = content
	}
	return out, nil
}

// Apply upserts every recognized, non-null key of the payload. All writes of
// one call run in a single transaction.
func (s *Store) Apply(payload map[string]json.RawMessage) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, key := range s.keys {
			raw, ok := payload[key]
			if !ok || isJSONNull(raw) {
				continue
			}
			row := map[string]interface{}{
				"section_key": key,
				"content":     datatypes.JSON(raw),
				"updated_at":  time.Now(),
			}
			err := tx.Table(s.table).Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "section_key"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"content":    datatypes.JSON(raw),
					"updated_at": time.Now(),
				}),
			}).Create(row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func isJSONNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Handler exposes one section store at a fixed route path.
type Handler struct {
	store      *Store
	path       string
	updatedMsg string
}

// NewProfileHandler serves the profile_content table at /profile.
func NewProfileHandler(db *gorm.DB) *Handler {
	return &Handler{
		store:      NewStore(db, "profile_content", ProfileKeys),
		path:       "/profile",
		updatedMsg: "Profile updated successfully",
	}
}

// NewPPDBHandler serves the ppdb_content table at /ppdb.
func NewPPDBHandler(db *gorm.DB) *Handler {
	return &Handler{
		store:      NewStore(db, "ppdb_content", PPDBKeys),
		path:       "/ppdb",
		updatedMsg: "PPDB content updated successfully",
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET(h.path, h.get)
	rg.PUT(h.path, authMW, h.put)
}

func (h *Handler) get(c *gin.Context) {
	out, err := h.store.Fetch()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}

func (h *Handler) put(c *gin.Context) {
	var payload map[string]json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}
	if err := h.store.Apply(payload); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Message(c, h.updatedMsg)
}
