package upload

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sman1gebog/web-core/internal/models"
	"github.com/sman1gebog/web-core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service stores uploaded images on local disk and tracks them in
// file_references so replaced or deleted images can be cleaned up.
type Service struct {
	db        *gorm.DB
	dir       string
	publicURL string
	log       *zap.Logger
}

// NewService builds an upload service. A nil logger disables logging.
func NewService(db *gorm.DB, dir, publicURL string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{db: db, dir: dir, publicURL: strings.TrimRight(publicURL, "/"), log: log}
}

// Store saves the uploaded file and records a pending file reference.
// It returns the public URL of the stored file.
func (s *Service) Store(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	name := s.buildFileName(fh.Filename)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(fh, filepath.Join(s.dir, name)); err != nil {
		return "", err
	}

	fileURL := s.URLFor(name)
	err := s.db.Create(&models.FileReference{
		FileURL:  fileURL,
		FileName: name,
		Status:   "pending",
	}).Error
	if err != nil {
		// Orphan cleanup will miss this file; worth a trace.
		s.log.Warn("file reference not recorded",
			zap.String("file", name), zap.Error(err))
	}
	return fileURL, nil
}

// Attach marks a stored file as referenced by a content row.
func (s *Service) Attach(fileURL, refType string, refID uint) {
	if strings.TrimSpace(fileURL) == "" {
		return
	}
	_ = s.db.Model(&models.FileReference{}).
		Where("file_url = ?", fileURL).
		Updates(map[string]interface{}{
			"status":   "active",
			"ref_type": refType,
			"ref_id":   refID,
		}).Error
}

// Remove deletes the on-disk file behind fileURL and its reference row.
// Unknown or external URLs are ignored.
func (s *Service) Remove(fileURL string) {
	name, ok := s.nameFromURL(fileURL)
	if !ok {
		return
	}
	_ = os.Remove(filepath.Join(s.dir, name))
	_ = s.db.Where("file_url = ? OR file_name = ?", fileURL, name).
		Delete(&models.FileReference{}).Error
}

// CleanupOrphans removes pending uploads older than maxAge that were never
// attached to a content row.
func (s *Service) CleanupOrphans(maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	var refs []models.FileReference
	if err := s.db.Where("status = ? AND created_at <= ?", "pending", cutoff).
		Find(&refs).Error; err != nil {
		return 0, err
	}

	deleted := 0
	for _, ref := range refs {
		if name := safeName(ref.FileName); name != "" {
			_ = os.Remove(filepath.Join(s.dir, name))
		}
		if err := s.db.Delete(&models.FileReference{}, "id = ?", ref.ID).Error; err == nil {
			deleted++
		}
	}
	return deleted, nil
}

// URLFor returns the public URL of a stored file name.
func (s *Service) URLFor(name string) string {
	return s.publicURL + "/uploads/" + name
}

// buildFileName keeps the millisecond-timestamp naming of stored files and
// falls back to a uuid suffix when two uploads land in the same millisecond.
func (s *Service) buildFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(original)))
	if ext == "" || len(ext) > 10 || !isSafeSegment(ext[1:]) {
		ext = ".dat"
	}
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	name := ts + ext
	if _, err := os.Stat(filepath.Join(s.dir, name)); err == nil {
		name = ts + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8] + ext
	}
	return name
}

// nameFromURL extracts the stored file name from an upload URL.
func (s *Service) nameFromURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	idx := strings.LastIndex(raw, "/uploads/")
	if idx < 0 {
		return "", false
	}
	name := safeName(raw[idx+len("/uploads/"):])
	if name == "" {
		return "", false
	}
	return name, true
}

// safeName returns the base name of raw only when it is a safe path segment.
func safeName(raw string) string {
	name := filepath.Base(strings.TrimSpace(raw))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return ""
	}
	if !isSafeSegment(name) {
		return ""
	}
	return name
}

func isSafeSegment(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			continue
		}
		return false
	}
	return true
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/upload", authMW, h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}
	url, err := h.svc.Store(c, fh)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"url": url})
}
