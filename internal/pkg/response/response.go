package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 response with the payload as-is. List endpoints pass bare
// slices; the admin UI expects unwrapped arrays.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message sends a 200 acknowledgement of the form {"message": ...}.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

// NotFoundMsg sends a 404 error response.
func NotFoundMsg(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": message})
}

// InternalError sends a 500 error response echoing the underlying error text.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
