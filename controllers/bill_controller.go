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

// InterfaceBillController defines the bill controller interface
type InterfaceBillController interface {
	GetBills()
	GetBill()
	CreateBill()
	UpdateBill()
	DeleteBill()
}

// BillController handles bill lifecycle requests
type BillController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBillController creates a new bill controller
func NewBillController(ctx *gin.Context, container *container.ServiceContainer) *BillController {
	return &BillController{
		Ctx:       ctx,
		Container: container,
	}
}

// BillRequest represents a bill creation request
type BillRequest struct {
	HouseID uint   `json:"house_id" binding:"required" example:"1"`
	Month   string `json:"month" binding:"required" example:"2026-08"`
	DueDate string `json:"due_date" binding:"required" example:"2026-08-10"`
}

// BillUpdateRequest represents a partial bill update request
type BillUpdateRequest struct {
	Amount  *float64 `json:"amount" example:"1000"`
	Month   *string  `json:"month" example:"2026-08"`
	Status  *string  `json:"status" example:"submitted"`
	DueDate *string  `json:"due_date" example:"2026-08-10"`
}

// GetBills lists bills
// @Summary      List bills
// @Description  Returns bills with pagination, optionally filtered by house
// @Tags         Bill
// @Produce      json
// @Param        house_id query int false "Restrict to one house"
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /bills [get]
func (c *BillController) GetBills() {
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

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bills, total, err := billService.GetAllBills(ctx, houseID, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list bills", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
		"data":       bills,
	})
}

// GetBill returns one bill
// @Summary      Get bill
// @Description  Returns one bill by id
// @Tags         Bill
// @Produce      json
// @Param        id path int true "Bill ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /bills/{id} [get]
func (c *BillController) GetBill() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid bill id")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bill, err := billService.GetBillByID(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			response.Fail(c.Ctx, code.ErrBillNotFound, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, bill)
}

// CreateBill issues a monthly bill
// @Summary      Issue bill
// @Description  Issues a monthly bill for a house; charges derive from the house size and the tariff
// @Tags         Bill
// @Accept       json
// @Produce      json
// @Param        request body BillRequest true "Bill details"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /bills [post]
func (c *BillController) CreateBill() {
	var req BillRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "house_id, month and due_date are required")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bill, err := billService.CreateBill(ctx, req.HouseID, req.Month, req.DueDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHouseNotFound):
			response.Fail(c.Ctx, code.ErrHouseNotFound, nil)
		case errors.Is(err, services.ErrInvalidSizeFormat):
			response.FailWithMessage(c.Ctx, code.ErrInvalidHouseSize, err.Error(), nil)
		case errors.Is(err, services.ErrInvalidDate):
			response.FailWithMessage(c.Ctx, code.ErrInvalidBillDate, err.Error(), nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to issue bill", nil)
		}
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, bill)
}

// UpdateBill applies a partial update to a bill
// @Summary      Update bill
// @Description  Updates the supplied bill fields; a status change propagates to every fine of the house
// @Tags         Bill
// @Accept       json
// @Produce      json
// @Param        id path int true "Bill ID"
// @Param        request body BillUpdateRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /bills/{id} [patch]
func (c *BillController) UpdateBill() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid bill id")
		return
	}

	var req BillUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "invalid update payload")
		return
	}

	updates := make(map[string]interface{})
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Month != nil {
		month, err := services.ParseBillDate(*req.Month)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrInvalidBillDate, err.Error(), nil)
			return
		}
		updates["month"] = month
	}
	if req.Status != nil {
		updates["status"] = models.BillStatus(*req.Status)
	}
	if req.DueDate != nil {
		due, err := services.ParseBillDate(*req.DueDate)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrInvalidBillDate, err.Error(), nil)
			return
		}
		updates["due_date"] = due
	}
	if len(updates) == 0 {
		response.ParamError(c.Ctx, "no fields to update")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bill, err := billService.UpdateBill(ctx, id, updates)
	if err != nil {
		var syncErr *services.SyncError
		switch {
		case errors.As(err, &syncErr):
			// The bill update itself succeeded; report the partial sync.
			middleware.PurgeCache()
			response.FailWithMessage(c.Ctx, code.ErrPartialSync, syncErr.Error(), gin.H{
				"bill":          bill,
				"fines_updated": syncErr.Updated,
				"fines_failed":  syncErr.Failed,
			})
		case errors.Is(err, services.ErrBillNotFound):
			response.Fail(c.Ctx, code.ErrBillNotFound, nil)
		case errors.Is(err, services.ErrInvalidStatus):
			response.FailWithMessage(c.Ctx, code.ErrInvalidBillStatus, err.Error(), nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to update bill", nil)
		}
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, bill)
}

// DeleteBill removes a bill
// @Summary      Delete bill
// @Description  Deletes one bill; fines of the house are kept
// @Tags         Bill
// @Produce      json
// @Param        id path int true "Bill ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /bills/{id} [delete]
func (c *BillController) DeleteBill() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid bill id")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	if err := billService.DeleteBill(ctx, id); err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			response.Fail(c.Ctx, code.ErrBillNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to delete bill", nil)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, nil)
}

// HandleBillFunc returns a gin handler dispatching bill requests
func HandleBillFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBillController(ctx, container)

		switch method {
		case "getBills":
			controller.GetBills()
		case "getBill":
			controller.GetBill()
		case "createBill":
			controller.CreateBill()
		case "updateBill":
			controller.UpdateBill()
		case "deleteBill":
			controller.DeleteBill()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
