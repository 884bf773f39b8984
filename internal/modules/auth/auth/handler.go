package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sman1gebog/web-core/internal/middleware"
	"github.com/sman1gebog/web-core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/login", h.login)
	rg.POST("/logout", authMW, h.logout)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	token, user, err := h.svc.Login(dto.Username, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.Unauthorized(c, "Invalid credentials")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, loginResponse{
		Message: "Login successful",
		Token:   token,
		User:    toLoginUser(user),
	})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.svc.Logout(middleware.CurrentUserID(c), middleware.CurrentSessionID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Message(c, "Logged out successfully")
}
