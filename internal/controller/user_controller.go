package controller

import (
	"errors"
	"fe_exam_backend/internal/service"
	"fe_exam_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetUsers godoc
// @Summary List users
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "page" default(1)
// @Param   limit query int false "page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /admin/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := c.UserService.GetUsers(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  users,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetUser godoc
// @Summary Single user
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "not found"
// @Router /admin/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	user, err := c.UserService.GetUser(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// UpdateUser godoc
// @Summary Update a user
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Param   body body service.UserUpdateRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "not found"
// @Router /admin/users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req service.UserUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateUser(uint(id), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Success 200 {object} util.Response
// @Router /admin/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	if err := c.UserService.DeleteUser(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// ResetPassword godoc
// @Summary Reset a user's password
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Param   body body ResetPasswordRequest true "new password"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "not found"
// @Router /admin/users/{id}/reset-password [post]
func (c *UserController) ResetPassword(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.ResetPassword(uint(id), req.Password); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// GetStats godoc
// @Summary Current user's answer stats
// @Tags users
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserStats}
// @Router /users/stats [get]
func (c *UserController) GetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.UserService.GetStats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
