package controller

import (
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/internal/service"
	"bjj_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InteractionController struct {
	InteractionService *service.InteractionService
}

func NewInteractionController(interactionService *service.InteractionService) *InteractionController {
	return &InteractionController{InteractionService: interactionService}
}

// ToggleRequest 互动开关请求
// swagger:model ToggleRequest
type ToggleRequest struct {
	ContentType string `json:"contentType" binding:"required,oneof=drill lesson course sparring post"`
	ContentID   uint   `json:"contentId" binding:"required"`
	Kind        string `json:"kind" binding:"required,oneof=save like"`
}

// Toggle godoc
// @Summary 点赞/收藏开关
// @Description 幂等开关：再次提交同一组合即取消
// @Tags 互动
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ToggleRequest true "互动"
// @Success 200 {object} util.Response
// @Router /api/interactions/toggle [post]
func (c *InteractionController) Toggle(ctx *gin.Context) {
	var req ToggleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	active, err := c.InteractionService.Toggle(util.ViewerID(ctx),
		model.ContentType(req.ContentType), req.ContentID, model.InteractionKind(req.Kind))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"active": active})
}

// FollowCreator godoc
// @Summary 关注/取关创作者
// @Tags 互动
// @Produce json
// @Security BearerAuth
// @Param id path int true "创作者ID"
// @Success 200 {object} util.Response
// @Router /api/creators/{id}/follow [post]
func (c *InteractionController) FollowCreator(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid creator id")
		return
	}
	following, err := c.InteractionService.FollowCreator(util.ViewerID(ctx), id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"following": following})
}

// Following godoc
// @Summary 我关注的创作者ID列表
// @Tags 互动
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]int}
// @Router /api/creators/following [get]
func (c *InteractionController) Following(ctx *gin.Context) {
	ids, err := c.InteractionService.FollowedCreatorIDs(util.ViewerID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ids)
}
