package controller

import (
	"errors"
	"fe_exam_backend/internal/service"
	"fe_exam_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	ExamService *service.ExamService
}

func NewExamController(examService *service.ExamService) *ExamController {
	return &ExamController{ExamService: examService}
}

// GetBanks godoc
// @Summary Available question banks
// @Description Year/season banks with their question counts
// @Tags exams
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]repository.BankInfo}
// @Router /exams/banks [get]
func (c *ExamController) GetBanks(ctx *gin.Context) {
	banks, err := c.ExamService.Banks()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, banks)
}

// swagger:model StartExamRequest
type StartExamRequest struct {
	Year   int    `json:"year" binding:"required"`
	Season string `json:"season" binding:"required"`
}

// StartExam godoc
// @Summary Start a timed mock exam
// @Tags exams
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body StartExamRequest true "bank selector"
// @Success 200 {object} util.Response{data=service.ExamSession}
// @Failure 404 {object} util.Response "unknown or empty bank"
// @Router /exams/start [post]
func (c *ExamController) StartExam(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.ExamService.Start(claims.UserID, req.Year, req.Season)
	if err != nil {
		if errors.Is(err, util.ErrBankNotFound) || errors.Is(err, util.ErrBankEmpty) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, session)
}

// swagger:model SubmitExamRequest
type SubmitExamRequest struct {
	Answers map[uint]string `json:"answers" binding:"required"`
}

// SubmitExam godoc
// @Summary Submit a mock exam
// @Description Grades the sitting; every answered question becomes an
// @Description answer event
// @Tags exams
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "exam result id"
// @Param   body body SubmitExamRequest true "answers keyed by question id"
// @Success 200 {object} util.Response{data=service.ExamOutcome}
// @Failure 404 {object} util.Response "unknown sitting"
// @Failure 409 {object} util.Response "already submitted"
// @Router /exams/{id}/submit [post]
func (c *ExamController) SubmitExam(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid exam id")
		return
	}

	var req SubmitExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.ExamService.Submit(claims.UserID, uint(id), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrExamNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrExamFinished):
			util.Error(ctx, 409, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, outcome)
}

// GetResults godoc
// @Summary Past mock-exam results
// @Tags exams
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ExamResult}
// @Router /exams/results [get]
func (c *ExamController) GetResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.ExamService.Results(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
