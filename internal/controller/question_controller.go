package controller

import (
	"errors"
	"fe_exam_backend/internal/service"
	"fe_exam_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// GetQuestions godoc
// @Summary List questions
// @Description Catalog questions, optionally filtered by genre
// @Tags questions
// @Produce  json
// @Security ApiKeyAuth
// @Param   genre query string false "genre filter"
// @Param   limit query int false "max results"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /questions [get]
func (c *QuestionController) GetQuestions(ctx *gin.Context) {
	genre := ctx.Query("genre")
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	questions, err := c.QuestionService.List(genre, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// GetRandomSet godoc
// @Summary Random practice set
// @Description Picks count random questions, optionally within one genre
// @Tags questions
// @Produce  json
// @Security ApiKeyAuth
// @Param   genre query string false "genre filter"
// @Param   count query int false "set size" default(10)
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /questions/random [get]
func (c *QuestionController) GetRandomSet(ctx *gin.Context) {
	genre := ctx.Query("genre")
	count, _ := strconv.Atoi(ctx.DefaultQuery("count", "10"))

	questions, err := c.QuestionService.RandomSet(genre, count)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// GetGenres godoc
// @Summary List genres
// @Tags questions
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]string}
// @Router /questions/genres [get]
func (c *QuestionController) GetGenres(ctx *gin.Context) {
	genres, err := c.QuestionService.Genres()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, genres)
}

// GetQuestion godoc
// @Summary Single question
// @Tags questions
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "question id"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response "not found"
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	question, err := c.QuestionService.GetQuestion(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, question)
}
