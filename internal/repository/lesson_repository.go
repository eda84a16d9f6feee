package repository

import (
	"bjj_academy_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Preload("Course").First(&lesson, id).Error
	return &lesson, err
}

func (r *LessonRepository) FindAll() ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Order("created_at DESC").Find(&lessons).Error
	return lessons, err
}

// FindAllWithCourse 带上父课程，供访问过滤解析排除标记
func (r *LessonRepository) FindAllWithCourse() ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Preload("Course").Order("course_id, position").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) FindByCourse(courseID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("course_id = ?", courseID).Order("position").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) IncrementViewCount(id uint) error {
	return r.DB.Model(&model.Lesson{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).
		Error
}
