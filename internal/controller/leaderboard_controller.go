package controller

import (
	"bjj_academy_backend/internal/service"
	"bjj_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

// Top godoc
// @Summary 训练积分榜
// @Tags 训练
// @Produce json
// @Param limit query int false "榜单长度，默认20"
// @Success 200 {object} util.Response{data=[]model.LeaderboardEntry}
// @Router /api/leaderboard [get]
func (c *LeaderboardController) Top(ctx *gin.Context) {
	limit := util.QueryInt(ctx, "limit", util.DefaultPageSize)
	entries, err := c.LeaderboardService.Top(ctx.Request.Context(), int64(util.ClampLimit(limit)))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// MyScore godoc
// @Summary 我的积分
// @Tags 训练
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/leaderboard/me [get]
func (c *LeaderboardController) MyScore(ctx *gin.Context) {
	score, err := c.LeaderboardService.MyScore(ctx.Request.Context(), util.ViewerID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"points": score})
}
