package repository

import (
	"bjj_academy_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindAll(category string) ([]model.Course, error) {
	var courses []model.Course
	q := r.DB.Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	return r.DB.Model(&model.Course{}).Where("id = ?", id).Updates(updates).Error
}
