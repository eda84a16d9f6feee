package service

import (
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/internal/repository"
	"bjj_academy_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo      *repository.CourseRepository
	LessonRepo      *repository.LessonRepository
	InteractionRepo *repository.InteractionRepository
	Access          *AccessService
}

func NewCourseService(courseRepo *repository.CourseRepository, lessonRepo *repository.LessonRepository, interactionRepo *repository.InteractionRepository, access *AccessService) *CourseService {
	return &CourseService{
		CourseRepo:      courseRepo,
		LessonRepo:      lessonRepo,
		InteractionRepo: interactionRepo,
		Access:          access,
	}
}

func (s *CourseService) ListCourses(category string) ([]model.Course, error) {
	return s.CourseRepo.FindAll(category)
}

type CourseDetail struct {
	Course  model.Course   `json:"course"`
	Lessons []model.Lesson `json:"lessons"`
}

// GetCourse 课程详情对所有人可见，门禁只挡视频播放
func (s *CourseService) GetCourse(courseID uint) (*CourseDetail, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}
	lessons, err := s.LessonRepo.FindByCourse(courseID)
	if err != nil {
		return nil, err
	}
	return &CourseDetail{Course: *course, Lessons: lessons}, nil
}

type CourseInput struct {
	Title                string           `json:"title" binding:"required"`
	Description          string           `json:"description"`
	Category             string           `json:"category"`
	Difficulty           model.Difficulty `json:"difficulty"`
	PriceCents           int              `json:"priceCents"`
	SubscriptionExcluded bool             `json:"subscriptionExcluded"`
	VideoHostID          string           `json:"videoHostId"`
	Thumbnail            string           `json:"thumbnail"`
}

func (s *CourseService) CreateCourse(creatorID uint, in CourseInput) (*model.Course, error) {
	course := &model.Course{
		Title:                in.Title,
		Description:          in.Description,
		CreatorID:            creatorID,
		Category:             in.Category,
		Difficulty:           in.Difficulty,
		PriceCents:           in.PriceCents,
		SubscriptionExcluded: in.SubscriptionExcluded,
		VideoHostID:          in.VideoHostID,
		Thumbnail:            in.Thumbnail,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

type LessonInput struct {
	Title       string           `json:"title" binding:"required"`
	Category    string           `json:"category"`
	Difficulty  model.Difficulty `json:"difficulty"`
	Position    int              `json:"position"`
	VideoHostID string           `json:"videoHostId"`
}

// AddLesson 只有课程的创作者本人或管理员能追加课时
func (s *CourseService) AddLesson(actorID uint, isAdmin bool, courseID uint, in LessonInput) (*model.Lesson, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}
	if course.CreatorID != actorID && !isAdmin {
		return nil, util.ErrPermissionDenied
	}

	lesson := &model.Lesson{
		CourseID:    courseID,
		CreatorID:   course.CreatorID,
		Title:       in.Title,
		Category:    in.Category,
		Difficulty:  in.Difficulty,
		Position:    in.Position,
		VideoHostID: in.VideoHostID,
	}
	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// WatchLesson 通过门禁后返回可播放的课时并记录浏览。
// 被拒绝时返回 ErrContentLocked，调用方据此回 403。
func (s *CourseService) WatchLesson(userID uint, isAdmin bool, lessonID uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}

	if !s.Access.CanViewLesson(userID, isAdmin, lesson) {
		return nil, util.ErrContentLocked
	}

	// 浏览记录失败不阻断播放
	_ = s.LessonRepo.IncrementViewCount(lessonID)
	if userID != 0 {
		_ = s.InteractionRepo.RecordView(userID, model.ContentTypeLesson, lessonID)
	}
	return lesson, nil
}
