package controllers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"society-billing-service/internal/error/code"
	"society-billing-service/internal/error/response"
	"society-billing-service/services"
	"society-billing-service/services/container"
)

// InterfaceStatementController defines the statement controller interface
type InterfaceStatementController interface {
	GetDashboard()
	GetStatement()
	DownloadStatement()
}

// StatementController handles dashboard and statement requests
type StatementController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStatementController creates a new statement controller
func NewStatementController(ctx *gin.Context, container *container.ServiceContainer) *StatementController {
	return &StatementController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetDashboard returns per-house billing summaries
// @Summary      Dashboard summaries
// @Description  Returns one summary row per house: last bill status, outstanding amount and latest due date
// @Tags         Statement
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /dashboard [get]
func (c *StatementController) GetDashboard() {
	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	statementService := c.Container.GetService("statement").(services.InterfaceStatementService)
	data, err := statementService.GetHouseSummaries(ctx)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to build dashboard", nil)
		return
	}

	response.Success(c.Ctx, data)
}

// GetStatement returns the aggregated statement of one house
// @Summary      House statement
// @Description  Returns the aggregated statement of one house, including payment history
// @Tags         Statement
// @Produce      json
// @Param        id path int true "House ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /houses/{id}/statement [get]
func (c *StatementController) GetStatement() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid house id")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	statementService := c.Container.GetService("statement").(services.InterfaceStatementService)
	statement, err := statementService.BuildStatement(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHouseNotFound):
			response.Fail(c.Ctx, code.ErrHouseNotFound, nil)
		case errors.Is(err, services.ErrNoBills):
			response.Fail(c.Ctx, code.ErrNoBills, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to build statement", nil)
		}
		return
	}

	response.Success(c.Ctx, statement)
}

// DownloadStatement renders the statement of one house as a PDF
// @Summary      Download statement PDF
// @Description  Renders the house statement as a printable PDF with resident and office copies
// @Tags         Statement
// @Produce      application/pdf
// @Param        id path int true "House ID"
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      404  {object}  ErrorResponse
// @Router       /houses/{id}/statement/pdf [get]
func (c *StatementController) DownloadStatement() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "invalid house id")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	statementService := c.Container.GetService("statement").(services.InterfaceStatementService)
	statement, err := statementService.BuildStatement(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHouseNotFound):
			response.Fail(c.Ctx, code.ErrHouseNotFound, nil)
		case errors.Is(err, services.ErrNoBills):
			response.Fail(c.Ctx, code.ErrNoBills, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to build statement", nil)
		}
		return
	}

	documentService := c.Container.GetService("document").(services.InterfaceDocumentService)
	pdf, err := documentService.RenderStatement(statement)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "failed to render statement", nil)
		return
	}

	filename := fmt.Sprintf("statement-%s.pdf", statement.HouseNumber)
	c.Ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Ctx.Data(code.StatusOK, "application/pdf", pdf)
}

// HandleStatementFunc returns a gin handler dispatching statement requests
func HandleStatementFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStatementController(ctx, container)

		switch method {
		case "getDashboard":
			controller.GetDashboard()
		case "getStatement":
			controller.GetStatement()
		case "downloadStatement":
			controller.DownloadStatement()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
