package staff

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

func (s *Service) List() ([]models.SchoolStaff, error) {
	items := []models.SchoolStaff{}
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id uint) (*models.SchoolStaff, error) {
	var m models.SchoolStaff
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(m *models.SchoolStaff) error {
	if err := s.db.Create(m).Error; err != nil {
		return err
	}
	if m.Photo != nil {
		s.uploads.Attach(*m.Photo, "staff", m.ID)
	}
	return nil
}

func (s *Service) Update(id uint, updates map[string]interface{}) error {
	if newPhoto, ok := updates["photo"]; ok {
		if old, err := s.GetByID(id); err != nil {
			return err
		} else if old != nil && old.Photo != nil {
			s.uploads.Remove(*old.Photo)
		}
		if url, ok := newPhoto.(string); ok {
			s.uploads.Attach(url, "staff", id)
		}
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&models.SchoolStaff{}).Where("id = ?", id).Updates(updates).Error
}

func (s *Service) Delete(id uint) error {
	m, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if m != nil && m.Photo != nil {
		s.uploads.Remove(*m.Photo)
	}
	return s.db.Delete(&models.SchoolStaff{}, "id = ?", id).Error
}

func validPosition(p string) bool {
	for _, v := range models.StaffPositions {
		if v == p {
			return true
		}
	}
	return false
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/staff")
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
	position := strings.TrimSpace(c.PostForm("position"))
	if position == "" {
		position = "Guru"
	}
	if !validPosition(position) {
		response.BadRequest(c, "Invalid position")
		return
	}

	m := models.SchoolStaff{
		Name:     name,
		NIP:      c.PostForm("nip"),
		Position: position,
		Subject:  c.PostForm("subject"),
	}
	if fh, err := c.FormFile("photo"); err == nil {
		url, err := h.svc.uploads.Store(c, fh)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		m.Photo = &url
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
	if nip, ok := c.GetPostForm("nip"); ok {
		updates["nip"] = nip
	}
	if position, ok := c.GetPostForm("position"); ok {
		if !validPosition(position) {
			response.BadRequest(c, "Invalid position")
			return
		}
		updates["position"] = position
	}
	if subject, ok := c.GetPostForm("subject"); ok {
		updates["subject"] = subject
	}
	if fh, err := c.FormFile("photo"); err == nil {
		url, err := h.svc.uploads.Store(c, fh)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		updates["photo"] = url
	}

	if err := h.svc.Update(id, updates); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Message(c, "Staff updated successfully")
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
	response.Message(c, "Staff deleted successfully")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
