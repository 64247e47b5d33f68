package controller

import (
	"errors"
	"fe_exam_backend/internal/model"
	"fe_exam_backend/internal/service"
	"fe_exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAuthController(authService *service.AuthService, userService *service.UserService) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
	}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a learner account with the provided credentials
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "registration payload"
// @Success 201 {object} util.Response{data=object} "created"
// @Failure 400 {object} util.Response "invalid payload"
// @Failure 409 {object} util.Response "email already registered"
// @Failure 500 {object} util.Response "internal error"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.Student,
	}

	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, 409, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Authenticate a user
// @Description Verifies credentials and returns a JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "login payload"
// @Success 200 {object} util.Response{data=object} "token"
// @Failure 400 {object} util.Response "invalid payload"
// @Failure 401 {object} util.Response "invalid credentials"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "profile"
// @Failure 401 {object} util.Response "unauthorized"
// @Router /profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.UserService.GetStats(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
		"stats":     stats,
	})
}
