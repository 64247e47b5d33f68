package controller

import (
	"errors"
	"fe_exam_backend/internal/service"
	"fe_exam_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

// swagger:model SubmitAnswerRequest
type SubmitAnswerRequest struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Choice     string `json:"choice" binding:"required"`
}

// SubmitAnswer godoc
// @Summary Answer one question
// @Description Grades the choice, records the answer event and returns the
// @Description verdict with the refreshed mastery label
// @Tags practice
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitAnswerRequest true "answer payload"
// @Success 200 {object} util.Response{data=service.AnswerOutcome}
// @Failure 400 {object} util.Response "invalid choice"
// @Failure 404 {object} util.Response "unknown question"
// @Router /practice/answers [post]
func (c *PracticeController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.PracticeService.SubmitAnswer(claims.UserID, req.QuestionID, req.Choice)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidChoice):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, outcome)
}

// GetHistory godoc
// @Summary Practice history
// @Description Pages through the user's answer events, newest first
// @Tags practice
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "page" default(1)
// @Param   limit query int false "page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /practice/history [get]
func (c *PracticeController) GetHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	events, total, err := c.PracticeService.History(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  events,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
