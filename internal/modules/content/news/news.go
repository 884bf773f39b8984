package news

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sman1gebog/web-core/internal/models"
	"github.com/sman1gebog/web-core/internal/modules/storage/upload"
	"github.com/sman1gebog/web-core/internal/pkg/response"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	db      *gorm.DB
	uploads *upload.Service
}

func NewService(db *gorm.DB, uploads *upload.Service) *Service {
	return &Service{db: db, uploads: uploads}
}

func (s *Service) List() ([]models.News, error) {
	items := []models.News{}
	err := s.db.Order("date DESC, created_at DESC").Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id uint) (*models.News, error) {
	var n models.News
	if err := s.db.First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (s *Service) Create(n *models.News) error {
	if err := s.db.Create(n).Error; err != nil {
		return err
	}
	if n.Image != nil {
		s.uploads.Attach(*n.Image, "news", n.ID)
	}
	return nil
}

// Update applies the given column updates. A replaced image has its old file
// removed from disk.
func (s *Service) Update(id uint, updates map[string]interface{}) error {
	if newImage, ok := updates["image"]; ok {
		if old, err := s.GetByID(id); err != nil {
			return err
		} else if old != nil && old.Image != nil {
			s.uploads.Remove(*old.Image)
		}
		if url, ok := newImage.(string); ok {
			s.uploads.Attach(url, "news", id)
		}
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&models.News{}).Where("id = ?", id).Updates(updates).Error
}

func (s *Service) Delete(id uint) error {
	n, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if n != nil && n.Image != nil {
		s.uploads.Remove(*n.Image)
	}
	return s.db.Delete(&models.News{}, "id = ?", id).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/news")
	g.GET("", h.list)
	g.GET("/:id", h.getByID)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) getByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	n, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if n == nil {
		response.NotFoundMsg(c, "News not found")
		return
	}
	response.OK(c, n)
}

func (h *Handler) create(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	content := c.PostForm("content")
	if title == "" || strings.TrimSpace(content) == "" {
		response.BadRequest(c, "Title and content are required")
		return
	}

	n := models.News{
		Title:    title,
		Content:  content,
		Category: c.PostForm("category"),
		Date:     time.Now(),
	}
	if raw := strings.TrimSpace(c.PostForm("date")); raw != "" {
		if d, err := time.Parse(dateLayout, raw); err == nil {
			n.Date = d
		}
	}
	if fh, err := c.FormFile("image"); err == nil {
		url, err := h.svc.uploads.Store(c, fh)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		n.Image = &url
	}

	if err := h.svc.Create(&n); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"message": "News created successfully",
		"id":      n.ID,
		"image":   n.Image,
	})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if title, ok := c.GetPostForm("title"); ok {
		updates["title"] = title
	}
	if content, ok := c.GetPostForm("content"); ok {
		updates["content"] = content
	}
	if category, ok := c.GetPostForm("category"); ok {
		updates["category"] = category
	}
	if raw, ok := c.GetPostForm("date"); ok {
		if d, err := time.Parse(dateLayout, strings.TrimSpace(raw)); err == nil {
			updates["date"] = d
		}
	}
	if fh, err := c.FormFile("image"); err == nil {
		url, err := h.svc.uploads.Store(c, fh)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		updates["image"] = url
	}

	if err := h.svc.Update(id, updates); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Message(c, "News updated successfully")
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Message(c, "News deleted successfully")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
