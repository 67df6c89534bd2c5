package controllers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"society-billing-service/services/container"
)

// BaseController is the common interface of all controllers
type BaseController interface {
	GetContainer() *container.ServiceContainer
	GetContext() *gin.Context
}

// BaseControllerImpl is the common controller implementation
type BaseControllerImpl struct {
	Container *container.ServiceContainer
	Context   *gin.Context
}

// GetContainer implements BaseController
func (c *BaseControllerImpl) GetContainer() *container.ServiceContainer {
	return c.Container
}

// GetContext implements BaseController
func (c *BaseControllerImpl) GetContext() *gin.Context {
	return c.Context
}

// ControllerFactory creates controllers bound to the service container
type ControllerFactory struct {
	Container *container.ServiceContainer
}

// NewControllerFactory creates a new controller factory
func NewControllerFactory(container *container.ServiceContainer) *ControllerFactory {
	return &ControllerFactory{
		Container: container,
	}
}

// storageTimeout bounds every storage call issued on behalf of one
// client action; a stalled database no longer stalls the action forever.
const storageTimeout = 5 * time.Second

// requestContext derives the bounded context for storage calls
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storageTimeout)
}

// parsePagination reads page/page_size query parameters with defaults
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}

// parseIDParam reads a numeric :id path parameter
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
