package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/models"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
//
// Note: This function only works for resources with an ID, not for calculated endpoints (like /months)
func resourceOptionsDetail[R models.Transaction | models.Budget | models.User](c *gin.Context, resource R, allow func(*gin.Context)) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	allow(c)
}
