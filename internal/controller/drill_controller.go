package controller

import (
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/internal/service"
	"bjj_academy_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type DrillController struct {
	DrillService *service.DrillService
}

func NewDrillController(drillService *service.DrillService) *DrillController {
	return &DrillController{DrillService: drillService}
}

// ListDrills godoc
// @Summary 磨合动作列表
// @Tags 磨合动作
// @Produce json
// @Param category query string false "分类过滤"
// @Param difficulty query string false "难度过滤"
// @Success 200 {object} util.Response{data=[]model.Drill}
// @Router /api/drills [get]
func (c *DrillController) ListDrills(ctx *gin.Context) {
	drills, err := c.DrillService.ListDrills(ctx.Query("category"), model.Difficulty(ctx.Query("difficulty")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, drills)
}

// DailyFree godoc
// @Summary 今日免费动作（游客可看）
// @Tags 磨合动作
// @Produce json
// @Success 200 {object} util.Response{data=model.Drill}
// @Failure 404 {object} util.Response
// @Router /api/drills/daily-free [get]
func (c *DrillController) DailyFree(ctx *gin.Context) {
	drill, err := c.DrillService.DailyFreeDrill()
	if err != nil {
		if errors.Is(err, util.ErrNoDailyFreeDrill) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, drill)
}

// WatchDrill godoc
// @Summary 播放动作（过访问门禁）
// @Tags 磨合动作
// @Produce json
// @Param id path int true "动作ID"
// @Success 200 {object} util.Response{data=model.Drill}
// @Failure 403 {object} util.Response "需要订阅或购买"
// @Failure 404 {object} util.Response
// @Router /api/drills/{id}/watch [get]
func (c *DrillController) WatchDrill(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid drill id")
		return
	}
	drill, err := c.DrillService.WatchDrill(util.ViewerID(ctx), id)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrContentNotFound):
			util.NotFound(ctx, "动作不存在")
		case errors.Is(err, util.ErrContentLocked):
			util.Error(ctx, 403, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, drill)
}

// CreateDrill godoc
// @Summary 创建动作（创作者）
// @Tags 磨合动作
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.DrillInput true "动作信息"
// @Success 201 {object} util.Response{data=model.Drill}
// @Router /api/drills [post]
func (c *DrillController) CreateDrill(ctx *gin.Context) {
	var req service.DrillInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	drill, err := c.DrillService.CreateDrill(util.ViewerID(ctx), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, drill)
}

// RotateDailyFree godoc
// @Summary 手动轮换今日免费动作（管理员）
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/drills/rotate-daily-free [post]
func (c *DrillController) RotateDailyFree(ctx *gin.Context) {
	if err := c.DrillService.RotateDailyFree(); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
