package controller

import (
	"bjj_academy_backend/internal/service"
	"bjj_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recService}
}

// RecommendedDrills godoc
// @Summary 个性化动作推荐
// @Description 登录用户按互动历史打分排序，游客得到随机顺序
// @Tags 推荐
// @Produce json
// @Param limit query int false "数量上限，默认30"
// @Success 200 {object} util.Response{data=[]model.Drill}
// @Router /api/recommendations/drills [get]
func (c *RecommendationController) RecommendedDrills(ctx *gin.Context) {
	limit := util.QueryInt(ctx, "limit", util.DefaultRecommendationLimit)
	drills := c.RecommendationService.GetPersonalizedDrills(util.ViewerID(ctx), util.ClampLimit(limit))
	util.Success(ctx, drills)
}

// RecommendedLessons godoc
// @Summary 个性化课时推荐
// @Tags 推荐
// @Produce json
// @Param limit query int false "数量上限，默认30"
// @Success 200 {object} util.Response{data=[]model.Lesson}
// @Router /api/recommendations/lessons [get]
func (c *RecommendationController) RecommendedLessons(ctx *gin.Context) {
	limit := util.QueryInt(ctx, "limit", util.DefaultRecommendationLimit)
	lessons := c.RecommendationService.GetPersonalizedLessons(util.ViewerID(ctx), util.ClampLimit(limit))
	util.Success(ctx, lessons)
}

// MyPreferences godoc
// @Summary 当前用户的推荐偏好快照
// @Tags 推荐
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.UserPreferences}
// @Router /api/recommendations/preferences [get]
func (c *RecommendationController) MyPreferences(ctx *gin.Context) {
	util.Success(ctx, c.RecommendationService.GetUserPreferences(util.ViewerID(ctx)))
}
