package gallery

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

func (s *Service) List() ([]models.GalleryPhoto, error) {
	items := []models.GalleryPhoto{}
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *Service) Create(p *models.GalleryPhoto) error {
	if err := s.db.Create(p).Error; err != nil {
		return err
	}
	s.uploads.Attach(p.ImageURL, "gallery", p.ID)
	return nil
}

func (s *Service) Delete(id uint) error {
	var p models.GalleryPhoto
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	s.uploads.Remove(p.ImageURL)
	return s.db.Delete(&models.GalleryPhoto{}, "id = ?", id).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/gallery")
	g.GET("/photos", h.list)

	a := g.Group("", authMW)
	a.POST("/photos", h.create)
	a.DELETE("/photos/:id", h.delete)
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
	fh, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Image is required")
		return
	}
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		response.BadRequest(c, "Title is required")
		return
	}
	category := strings.TrimSpace(c.PostForm("category"))
	if category == "" {
		category = "Lainnya"
	}

	url, err := h.svc.uploads.Store(c, fh)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	p := models.GalleryPhoto{
		Title:       title,
		Description: c.PostForm("description"),
		ImageURL:    url,
		Category:    category,
	}
	if err := h.svc.Create(&p); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Message(c, "Photo deleted successfully")
}
