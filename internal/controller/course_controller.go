package controller

import (
	"bjj_academy_backend/internal/service"
	"bjj_academy_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
	AccessService *service.AccessService
}

func NewCourseController(courseService *service.CourseService, accessService *service.AccessService) *CourseController {
	return &CourseController{CourseService: courseService, AccessService: accessService}
}

// ListCourses godoc
// @Summary 课程列表
// @Tags 课程
// @Produce json
// @Param category query string false "分类过滤"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.ListCourses(ctx.Query("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary 课程详情（含课时列表）
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=service.CourseDetail}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}
	detail, err := c.CourseService.GetCourse(id)
	if err != nil {
		if errors.Is(err, util.ErrContentNotFound) {
			util.NotFound(ctx, "课程不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detail)
}

// CreateCourse godoc
// @Summary 创建课程（创作者）
// @Tags 课程
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CourseInput true "课程信息"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req service.CourseInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	course, err := c.CourseService.CreateCourse(util.ViewerID(ctx), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// AddLesson godoc
// @Summary 给课程追加课时（创作者）
// @Tags 课程
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "课程ID"
// @Param body body service.LessonInput true "课时信息"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 403 {object} util.Response
// @Router /api/courses/{id}/lessons [post]
func (c *CourseController) AddLesson(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}
	var req service.LessonInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	lesson, err := c.CourseService.AddLesson(util.ViewerID(ctx), util.IsAdmin(ctx), id, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrContentNotFound):
			util.NotFound(ctx, "课程不存在")
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, lesson)
}

// WatchLesson godoc
// @Summary 播放课时（过访问门禁）
// @Tags 课程
// @Produce json
// @Security BearerAuth
// @Param id path int true "课时ID"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 403 {object} util.Response "需要订阅或购买"
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id}/watch [get]
func (c *CourseController) WatchLesson(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}
	lesson, err := c.CourseService.WatchLesson(util.ViewerID(ctx), util.IsAdmin(ctx), id)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrContentNotFound):
			util.NotFound(ctx, "课时不存在")
		case errors.Is(err, util.ErrContentLocked):
			util.Error(ctx, 403, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, lesson)
}

// AccessibleLessons godoc
// @Summary 当前用户可观看的课时
// @Tags 课程
// @Produce json
// @Param limit query int false "数量上限"
// @Success 200 {object} util.Response{data=[]model.Lesson}
// @Router /api/lessons/accessible [get]
func (c *CourseController) AccessibleLessons(ctx *gin.Context) {
	limit := util.QueryInt(ctx, "limit", 0)
	lessons := c.AccessService.AccessibleLessons(util.ViewerID(ctx), util.IsAdmin(ctx), limit)
	util.Success(ctx, lessons)
}
