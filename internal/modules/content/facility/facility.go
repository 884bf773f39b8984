package facility

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sman1gebog/web-core/internal/models"
	"github.com/sman1gebog/web-core/internal/modules/storage/upload"
	"github.com/sman1gebog/web-core/internal/pkg/response"
	"gorm.io/gorm"
)

type Service struct {
	db      *gorm.DB
	uploads *upload.Service
}

func NewService(db *gorm.DB, uploads *upload.Service) *Service {
	return &Service{db: db, uploads: uploads}
}

func (s *Service) List() ([]models.Facility, error) {
	items := []models.Facility{}
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id uint) (*models.Facility, error) {
	var m models.Facility
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(m *models.Facility) error {
	if err := s.db.Create(m).Error; err != nil {
		return err
	}
	if m.Image != nil {
		s.uploads.Attach(*m.Image, "facility", m.ID)
	}
	return nil
}

func (s *Service) Update(id uint, updates map[string]interface{}) error {
	if newImage, ok := updates["image"]; ok {
		if old, err := s.GetByID(id); err != nil {
			return err
		} else if old != nil && old.Image != nil {
			s.uploads.Remove(*old.Image)
		}
		if url, ok := newImage.(string); ok {
			s.uploads.Attach(url, "facility", id)
		}
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&models.Facility{}).Where("id = ?", id).Updates(updates).Error
}

func (s *Service) Delete(id uint) error {
	m, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if m != nil && m.Image != nil {
		s.uploads.Remove(*m.Image)
	}
	return s.db.Delete(&models.Facility{}, "id = ?", id).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/facilities")
	g.GET("", h.list)

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

func (h *Handler) create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		response.BadRequest(c, "Name is required")
		return
	}

	m := models.Facility{
		Name:        name,
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
	}
	if fh, err := c.FormFile("image"); err == nil {
		url, err := h.svc.uploads.Store(c, fh)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		m.Image = &url
	}

	if err := h.svc.Create(&m); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if name, ok := c.GetPostForm("name"); ok {
		updates["name"] = name
	}
	if description, ok := c.GetPostForm("description"); ok {
		updates["description"] = description
	}
	if category, ok := c.GetPostForm("category"); ok {
		updates["category"] = category
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
	response.Message(c, "Facility updated successfully")
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
	response.Message(c, "Facility deleted successfully")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
