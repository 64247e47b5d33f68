package controller

import (
	"fe_exam_backend/internal/service"
	"fe_exam_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RankingController struct {
	RankingService *service.RankingService
}

func NewRankingController(rankingService *service.RankingService) *RankingController {
	return &RankingController{RankingService: rankingService}
}

// GetLeaderboard godoc
// @Summary Leaderboard
// @Description Top users by composite score, admins excluded
// @Tags ranking
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "entries to return" default(20)
// @Success 200 {object} util.Response{data=[]service.RankingEntry}
// @Router /ranking [get]
func (c *RankingController) GetLeaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	util.Success(ctx, c.RankingService.Leaderboard(limit, true))
}

// GetMyRank godoc
// @Summary Current user's rank and score breakdown
// @Tags ranking
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /ranking/me [get]
func (c *RankingController) GetMyRank(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	breakdown := c.RankingService.Score(claims.UserID)

	resp := gin.H{"score": breakdown}
	if rank, ok := c.RankingService.Rank(claims.UserID, true); ok {
		resp["rank"] = rank
	} else {
		resp["rank"] = nil
	}

	util.Success(ctx, resp)
}
