package controllers

import (
	"ClinicDesk/models"
	"ClinicDesk/util"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AccountService interface {
	Signup(ctx context.Context, req models.SignupRequest) error
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	ListAccounts(ctx context.Context) ([]models.PublicAccount, error)
}

type AuthController struct {
	accounts AccountService
}

func NewAuthController(accounts AccountService) *AuthController {
	return &AuthController{accounts: accounts}
}

func (a *AuthController) Routes(router gin.IRouter) {
	router.POST("/signup", a.Signup)
	router.POST("/login", a.Login)
	router.GET("/users", a.ListUsers)
}

/*
* Bind the signup fields
* Pass to the service, which owns validation and uniqueness
 */
func (a *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := a.accounts.Signup(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.MessageResponse(util.USER_REGISTERED))
}

/*
* Bind the credentials and pass to the service
* redirectTo is only present for administrators
 */
func (a *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := a.accounts.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, util.RedirectResponse(result.Message, result.RedirectTo))
}

func (a *AuthController) ListUsers(c *gin.Context) {
	accounts, err := a.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}
