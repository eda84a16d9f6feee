package controller

import (
	"bjj_academy_backend/internal/service"
	"bjj_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedController struct {
	FeedService *service.FeedService
}

func NewFeedController(feedService *service.FeedService) *FeedController {
	return &FeedController{FeedService: feedService}
}

// RecentPosts godoc
// @Summary 最近动态
// @Tags 动态
// @Produce json
// @Success 200 {object} util.Response{data=[]model.FeedPost}
// @Router /api/feed [get]
func (c *FeedController) RecentPosts(ctx *gin.Context) {
	posts, err := c.FeedService.RecentPosts(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, posts)
}

// CreatePost godoc
// @Summary 发布动态
// @Tags 动态
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.FeedPostInput true "动态内容"
// @Success 201 {object} util.Response{data=model.FeedPost}
// @Router /api/feed [post]
func (c *FeedController) CreatePost(ctx *gin.Context) {
	var req service.FeedPostInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	post, err := c.FeedService.CreatePost(ctx.Request.Context(), util.ViewerID(ctx), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, post)
}

// ToggleLike godoc
// @Summary 点赞/取消点赞动态
// @Tags 动态
// @Produce json
// @Security BearerAuth
// @Param id path int true "动态ID"
// @Success 200 {object} util.Response
// @Router /api/feed/{id}/like [post]
func (c *FeedController) ToggleLike(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid post id")
		return
	}
	liked, err := c.FeedService.ToggleLike(ctx.Request.Context(), util.ViewerID(ctx), id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"liked": liked})
}
