package controller

import (
	"fe_exam_backend/internal/model"
	"fe_exam_backend/internal/service"
	"fe_exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	CoverageService *service.CoverageService
}

func NewAchievementController(coverageService *service.CoverageService) *AchievementController {
	return &AchievementController{CoverageService: coverageService}
}

// GetCoverage godoc
// @Summary Achievement map
// @Description Per-bank mastery map with aggregate counts, rates and the
// @Description next study goal
// @Tags achievements
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.CoverageReport}
// @Router /achievements/map [get]
func (c *AchievementController) GetCoverage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, c.CoverageService.Coverage(claims.UserID))
}

// GetQuestionsByLevel godoc
// @Summary Questions at one mastery level
// @Tags achievements
// @Produce  json
// @Security ApiKeyAuth
// @Param   level query string true "gold, silver or bronze"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Failure 400 {object} util.Response "invalid level"
// @Router /achievements/questions [get]
func (c *AchievementController) GetQuestionsByLevel(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	level := model.MasteryLevel(ctx.Query("level"))
	if !level.Valid() {
		util.BadRequest(ctx, util.ErrInvalidMastery.Error())
		return
	}

	questions := c.CoverageService.QuestionsByLevel(claims.UserID, level)
	util.Success(ctx, questions)
}
