package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"society-billing-service/internal/error/code"
	"society-billing-service/internal/error/response"
	"society-billing-service/models"
	"society-billing-service/services"
	"society-billing-service/services/container"
)

// InterfaceAdminController defines the operator account controller interface
type InterfaceAdminController interface {
	GetAdmins()
	GetAdmin()
	CreateAdmin()
	UpdateAdmin()
	DeleteAdmin()
}

// AdminController handles operator account requests
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// AdminRequest represents an operator account creation request
type AdminRequest struct {
	Username string `json:"username" binding:"required" example:"office"`
	Password string `json:"password" binding:"required,min=6" example:"changeme"`
}

// AdminUpdateRequest represents an operator account update request
type AdminUpdateRequest struct {
	Username *string `json:"username" example:"office"`
	Password *string `json:"password" example:"changeme"`
}

// GetAdmins lists operator accounts
// @Summary      List operators
// @Description  Returns operator accounts with pagination
// @Tags         Admin
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admins [get]
func (c *AdminController) GetAdmins() {
	page, pageSize := parsePagination(c.Ctx)

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admins, total, err := adminService.GetAllAdmins(ctx, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list operators", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
		"data":       admins,
	})
}

// GetAdmin returns one operator account
// @Summary      Get operator
// @Description  Returns one operator account by id
// @Tags         Admin
// @Produce      json
// @Param        id path int true "Admin ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admins/{id} [get]
func (c *AdminController) GetAdmin() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid admin id")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, admin)
}

// CreateAdmin registers an operator account
// @Summary      Create operator
// @Description  Registers a new operator account
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body AdminRequest true "Operator details"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /admins [post]
func (c *AdminController) CreateAdmin() {
	var req AdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "username and password (min 6 chars) are required")
		return
	}

	admin := &models.Admin{
		Username: req.Username,
		Password: req.Password,
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, services.ErrAdminExists) {
			response.Fail(c.Ctx, code.ErrAdminAlreadyExist, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to create operator", nil)
		return
	}

	admin.Password = ""
	response.Success(c.Ctx, admin)
}

// UpdateAdmin updates an operator account
// @Summary      Update operator
// @Description  Updates the supplied operator fields; a new password is re-hashed
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Admin ID"
// @Param        request body AdminUpdateRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admins/{id} [patch]
func (c *AdminController) UpdateAdmin() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid admin id")
		return
	}

	var req AdminUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "invalid update payload")
		return
	}

	updates := make(map[string]interface{})
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Password != nil {
		updates["password"] = *req.Password
	}
	if len(updates) == 0 {
		response.ParamError(c.Ctx, "no fields to update")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.UpdateAdmin(ctx, id, updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
		case errors.Is(err, services.ErrAdminExists):
			response.Fail(c.Ctx, code.ErrAdminAlreadyExist, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to update operator", nil)
		}
		return
	}

	admin.Password = ""
	response.Success(c.Ctx, admin)
}

// DeleteAdmin removes an operator account
// @Summary      Delete operator
// @Description  Deletes an operator account; the last remaining account cannot be deleted
// @Tags         Admin
// @Produce      json
// @Param        id path int true "Admin ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admins/{id} [delete]
func (c *AdminController) DeleteAdmin() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid admin id")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.DeleteAdmin(ctx, id); err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
		case errors.Is(err, services.ErrLastAdmin):
			response.FailWithMessage(c.Ctx, code.ErrValidation, "cannot delete the last operator account", nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to delete operator", nil)
		}
		return
	}

	response.Success(c.Ctx, nil)
}

// HandleAdminFunc returns a gin handler dispatching admin requests
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getAdmins":
			controller.GetAdmins()
		case "getAdmin":
			controller.GetAdmin()
		case "createAdmin":
			controller.CreateAdmin()
		case "updateAdmin":
			controller.UpdateAdmin()
		case "deleteAdmin":
			controller.DeleteAdmin()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
