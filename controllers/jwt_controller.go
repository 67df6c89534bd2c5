package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"society-billing-service/internal/error/code"
	"society-billing-service/internal/error/response"
	"society-billing-service/services"
	"society-billing-service/services/container"
	"society-billing-service/utils"
)

// InterfaceJWTController defines the authentication controller interface
type InterfaceJWTController interface {
	Login()
}

// JWTController handles authentication requests
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new authentication controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginData is the payload returned after a successful login
type LoginData struct {
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	AdminID  uint   `json:"admin_id" example:"1"`
	Username string `json:"username" example:"admin"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Code    int         `json:"code" example:"100003"`
	Message string      `json:"message" example:"request parameter validation error"`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc returns a gin handler dispatching authentication requests
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// Login processes an operator login
// @Summary      Operator login
// @Description  Verifies operator credentials and returns a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  response.Response{data=LoginData}  "Success response with token"
// @Failure      400  {object}  ErrorResponse  "Bad request"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "username and password are required")
		return
	}

	ctx, cancel := requestContext(c.Ctx)
	defer cancel()

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	admin, err := adminService.GetAdminByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			response.Fail(c.Ctx, code.ErrAdminPasswordIncorrect, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	if !utils.CheckPasswordHash(req.Password, admin.Password) {
		response.Fail(c.Ctx, code.ErrAdminPasswordIncorrect, nil)
		return
	}

	token, err := jwtService.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "failed to generate token", nil)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    code.ErrSuccess,
		"message": "login successful",
		"data": LoginData{
			Token:    token,
			AdminID:  admin.ID,
			Username: admin.Username,
		},
	})
}
