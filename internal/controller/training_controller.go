package controller

import (
	"bjj_academy_backend/internal/service"
	"bjj_academy_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type TrainingController struct {
	TrainingService *service.TrainingService
}

func NewTrainingController(trainingService *service.TrainingService) *TrainingController {
	return &TrainingController{TrainingService: trainingService}
}

// LogSession godoc
// @Summary 记录一次训练
// @Tags 训练
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.TrainingLogInput true "训练记录"
// @Success 201 {object} util.Response{data=model.TrainingLog}
// @Router /api/training/logs [post]
func (c *TrainingController) LogSession(ctx *gin.Context) {
	var req service.TrainingLogInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	log, err := c.TrainingService.LogSession(ctx.Request.Context(), util.ViewerID(ctx), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, log)
}

// ListLogs godoc
// @Summary 我的训练记录
// @Tags 训练
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/training/logs [get]
func (c *TrainingController) ListLogs(ctx *gin.Context) {
	page := util.QueryInt(ctx, "page", 1)
	limit := util.QueryInt(ctx, "limit", util.DefaultPageSize)

	logs, total, err := c.TrainingService.ListLogs(util.ViewerID(ctx), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: logs, Total: total, Page: page, Limit: limit})
}

// DeleteLog godoc
// @Summary 删除训练记录
// @Tags 训练
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/training/logs/{id} [delete]
func (c *TrainingController) DeleteLog(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid log id")
		return
	}
	err := c.TrainingService.DeleteLog(util.ViewerID(ctx), id)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrContentNotFound):
			util.NotFound(ctx, "记录不存在")
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// WeeklyStats godoc
// @Summary 近一周训练统计
// @Tags 训练
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.WeeklyTrainingStats}
// @Router /api/training/stats/weekly [get]
func (c *TrainingController) WeeklyStats(ctx *gin.Context) {
	stats, err := c.TrainingService.WeeklyStats(util.ViewerID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// AddSparringVideo godoc
// @Summary 登记实战视频
// @Tags 训练
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.SparringVideoInput true "视频信息"
// @Success 201 {object} util.Response{data=model.SparringVideo}
// @Router /api/training/sparring [post]
func (c *TrainingController) AddSparringVideo(ctx *gin.Context) {
	var req service.SparringVideoInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	video, err := c.TrainingService.AddSparringVideo(util.ViewerID(ctx), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, video)
}

// ListSparringVideos godoc
// @Summary 我的实战视频
// @Tags 训练
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.SparringVideo}
// @Router /api/training/sparring [get]
func (c *TrainingController) ListSparringVideos(ctx *gin.Context) {
	videos, err := c.TrainingService.ListSparringVideos(util.ViewerID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, videos)
}
