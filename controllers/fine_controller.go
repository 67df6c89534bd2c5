package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"society-billing-service/internal/error/code"
	"society-billing-service/internal/error/response"
	"society-billing-service/middleware"
	"society-billing-service/models"
	"society-billing-service/services"
	"society-billing-service/services/container"
)

// InterfaceFineController defines the fine controller interface
type InterfaceFineController interface {
	GetFines()
	GetFine()
	CreateFine()
	UpdateFineStatus()
	DeleteFine()
}

// FineController handles fine ledger requests
type FineController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFineController creates a new fine controller
func NewFineController(ctx *gin.Context, container *container.ServiceContainer) *FineController {
	return &FineController{
		Ctx:       ctx,
		Container: container,
	}
}

// FineRequest represents a fine creation request
type FineRequest struct {
	HouseID uint   `json:"house_id" binding:"required" example:"1"`
	Amount  int    `json:"amount" binding:"required" example:"500"`
	Reason  string `json:"reason" binding:"required" example:"Construction debris on street"`
	Status  string `json:"status" example:"pending"`
}

// FineStatusRequest represents a fine status update request
type FineStatusRequest struct {
	Status string `json:"status" binding:"required" example:"submitted"`
}

// GetFines lists fines
// @Summary      List fines
// @Description  Returns fines with pagination, optionally filtered by house
// @Tags         Fine
// @Produce      json
// @Param        house_id query int false "Restrict to one house"
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /fines [get]
func (c *FineController) GetFines() {
	page, pageSize := parsePagination(c.Ctx)

	var houseID uint
	if raw := c.Ctx.Query("house_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.ParamError(c.Ctx, "invalid house_id filter")
			return
		}
		houseID = uint(parsed)
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	fineService := c.Container.GetService("fine").(services.InterfaceFineService)
	fines, total, err := fineService.GetAllFines(ctx, houseID, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list fines", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
		"data":       fines,
	})
}

// GetFine returns one fine
// @Summary      Get fine
// @Description  Returns one fine by id
// @Tags         Fine
// @Produce      json
// @Param        id path int true "Fine ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /fines/{id} [get]
func (c *FineController) GetFine() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid fine id")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	fineService := c.Container.GetService("fine").(services.InterfaceFineService)
	fine, err := fineService.GetFineByID(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrFineNotFound) {
			response.Fail(c.Ctx, code.ErrFineNotFound, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, fine)
}

// CreateFine records a fine against a house
// @Summary      Record fine
// @Description  Records a fine; the amount is operator supplied and independent of the tariff
// @Tags         Fine
// @Accept       json
// @Produce      json
// @Param        request body FineRequest true "Fine details"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /fines [post]
func (c *FineController) CreateFine() {
	var req FineRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "house_id, amount and reason are required")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	if _, err := houseService.GetHouseByID(ctx, req.HouseID); err != nil {
		if errors.Is(err, services.ErrHouseNotFound) {
			response.Fail(c.Ctx, code.ErrHouseNotFound, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	fine := &models.Fine{
		HouseID: req.HouseID,
		Amount:  req.Amount,
		Reason:  req.Reason,
		Status:  models.BillStatus(req.Status),
	}

	fineService := c.Container.GetService("fine").(services.InterfaceFineService)
	if err := fineService.CreateFine(ctx, fine); err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			response.FailWithMessage(c.Ctx, code.ErrInvalidBillStatus, err.Error(), nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to record fine", nil)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, fine)
}

// UpdateFineStatus changes the status of a fine
// @Summary      Update fine status
// @Description  Sets one fine to pending, submitted or overdue
// @Tags         Fine
// @Accept       json
// @Produce      json
// @Param        id path int true "Fine ID"
// @Param        request body FineStatusRequest true "New status"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /fines/{id} [patch]
func (c *FineController) UpdateFineStatus() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid fine id")
		return
	}

	var req FineStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "status is required")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	fineService := c.Container.GetService("fine").(services.InterfaceFineService)
	fine, err := fineService.UpdateFineStatus(ctx, id, models.BillStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFineNotFound):
			response.Fail(c.Ctx, code.ErrFineNotFound, nil)
		case errors.Is(err, services.ErrInvalidStatus):
			response.FailWithMessage(c.Ctx, code.ErrInvalidBillStatus, err.Error(), nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to update fine", nil)
		}
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, fine)
}

// DeleteFine removes a fine
// @Summary      Delete fine
// @Description  Deletes one fine
// @Tags         Fine
// @Produce      json
// @Param        id path int true "Fine ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /fines/{id} [delete]
func (c *FineController) DeleteFine() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid fine id")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	fineService := c.Container.GetService("fine").(services.InterfaceFineService)
	if err := fineService.DeleteFine(ctx, id); err != nil {
		if errors.Is(err, services.ErrFineNotFound) {
			response.Fail(c.Ctx, code.ErrFineNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to delete fine", nil)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, nil)
}

// HandleFineFunc returns a gin handler dispatching fine requests
func HandleFineFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFineController(ctx, container)

		switch method {
		case "getFines":
			controller.GetFines()
		case "getFine":
			controller.GetFine()
		case "createFine":
			controller.CreateFine()
		case "updateFineStatus":
			controller.UpdateFineStatus()
		case "deleteFine":
			controller.DeleteFine()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
