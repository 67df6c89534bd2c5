package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"society-billing-service/internal/error/code"
	"society-billing-service/internal/error/response"
	"society-billing-service/middleware"
	"society-billing-service/models"
	"society-billing-service/services"
	"society-billing-service/services/container"
)

// InterfaceHouseController defines the house controller interface
type InterfaceHouseController interface {
	GetHouses()
	GetHouse()
	CreateHouse()
	DeleteHouse()
	GetHouseBills()
	GetHouseFines()
}

// HouseController handles house registry requests
type HouseController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHouseController creates a new house controller
func NewHouseController(ctx *gin.Context, container *container.ServiceContainer) *HouseController {
	return &HouseController{
		Ctx:       ctx,
		Container: container,
	}
}

// HouseRequest represents a house registration request
type HouseRequest struct {
	HouseNumber  string `json:"house_number" binding:"required" example:"B-114"`
	ResidentName string `json:"resident_name" binding:"required" example:"Muhammad Asif"`
	HouseSize    string `json:"house_size" binding:"required" example:"10 marla"`
	Phone        string `json:"phone" example:"03001234567"`
}

// GetHouses lists registered houses
// @Summary      List houses
// @Description  Returns all registered houses with pagination
// @Tags         House
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /houses [get]
func (c *HouseController) GetHouses() {
	page, pageSize := parsePagination(c.Ctx)

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	houses, total, err := houseService.GetAllHouses(ctx, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list houses", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
		"data":       houses,
	})
}

// GetHouse returns one house
// @Summary      Get house
// @Description  Returns one house by id
// @Tags         House
// @Produce      json
// @Param        id path int true "House ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /houses/{id} [get]
func (c *HouseController) GetHouse() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid house id")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	house, err := houseService.GetHouseByID(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrHouseNotFound) {
			response.Fail(c.Ctx, code.ErrHouseNotFound, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, house)
}

// CreateHouse registers a new house
// @Summary      Register house
// @Description  Registers a new house; the size descriptor must parse to a positive area
// @Tags         House
// @Accept       json
// @Produce      json
// @Param        request body HouseRequest true "House details"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /houses [post]
func (c *HouseController) CreateHouse() {
	var req HouseRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "house number, resident name and house size are required")
		return
	}

	house := &models.House{
		HouseNumber:  req.HouseNumber,
		ResidentName: req.ResidentName,
		HouseSize:    req.HouseSize,
		Phone:        req.Phone,
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	if err := houseService.CreateHouse(ctx, house); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSizeFormat):
			response.FailWithMessage(c.Ctx, code.ErrInvalidHouseSize, err.Error(), nil)
		case errors.Is(err, services.ErrHouseExists):
			response.Fail(c.Ctx, code.ErrHouseAlreadyExist, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to register house", nil)
		}
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, house)
}

// DeleteHouse removes a house and its bills
// @Summary      Delete house
// @Description  Deletes a house together with its bills; fines are kept (bills-only cascade)
// @Tags         House
// @Produce      json
// @Param        id path int true "House ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /houses/{id} [delete]
func (c *HouseController) DeleteHouse() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid house id")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	if err := houseService.DeleteHouse(ctx, id); err != nil {
		if errors.Is(err, services.ErrHouseNotFound) {
			response.Fail(c.Ctx, code.ErrHouseNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to delete house", nil)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, nil)
}

// GetHouseBills lists the bills of one house
// @Summary      List house bills
// @Description  Returns all bills issued to one house
// @Tags         House
// @Produce      json
// @Param        id path int true "House ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /houses/{id}/bills [get]
func (c *HouseController) GetHouseBills() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid house id")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	bills, err := houseService.GetHouseBills(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrHouseNotFound) {
			response.Fail(c.Ctx, code.ErrHouseNotFound, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, bills)
}

// GetHouseFines lists the fines of one house
// @Summary      List house fines
// @Description  Returns all fines issued to one house
// @Tags         House
// @Produce      json
// @Param        id path int true "House ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /houses/{id}/fines [get]
func (c *HouseController) GetHouseFines() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid house id")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	houseService := c.Container.GetService("house").(services.InterfaceHouseService)
	fines, err := houseService.GetHouseFines(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrHouseNotFound) {
			response.Fail(c.Ctx, code.ErrHouseNotFound, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, fines)
}

// HandleHouseFunc returns a gin handler dispatching house requests
func HandleHouseFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHouseController(ctx, container)

		switch method {
		case "getHouses":
			controller.GetHouses()
		case "getHouse":
			controller.GetHouse()
		case "createHouse":
			controller.CreateHouse()
		case "deleteHouse":
			controller.DeleteHouse()
		case "getHouseBills":
			controller.GetHouseBills()
		case "getHouseFines":
			controller.GetHouseFines()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
