package health

import (
	"github.com/gin-gonic/gin"
	"github.com/sman1gebog/web-core/internal/pkg/response"
	"gorm.io/gorm"
)

// RegisterRoutes exposes the database connectivity probe.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	rg.GET("/test-db", func(c *gin.Context) {
		var row struct {
			Solution int
		}
		if err := db.Raw("SELECT 1+1 AS solution").Scan(&row).Error; err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, gin.H{
			"message":  "Database Connected Successfully!",
			"solution": row.Solution,
		})
	})
}
