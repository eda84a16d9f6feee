package repository

import (
	"bjj_academy_backend/internal/model"

	"gorm.io/gorm"
)

type DrillRepository struct {
	DB *gorm.DB
}

func NewDrillRepository(db *gorm.DB) *DrillRepository {
	return &DrillRepository{DB: db}
}

func (r *DrillRepository) Create(drill *model.Drill) error {
	return r.DB.Create(drill).Error
}

func (r *DrillRepository) FindByID(id uint) (*model.Drill, error) {
	var drill model.Drill
	err := r.DB.First(&drill, id).Error
	return &drill, err
}

func (r *DrillRepository) FindAll() ([]model.Drill, error) {
	var drills []model.Drill
	err := r.DB.Find(&drills).Error
	return drills, err
}

func (r *DrillRepository) FindFiltered(category string, difficulty model.Difficulty) ([]model.Drill, error) {
	q := r.DB.Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if difficulty != "" {
		q = q.Where("difficulty = ?", difficulty)
	}
	var drills []model.Drill
	err := q.Find(&drills).Error
	return drills, err
}

func (r *DrillRepository) FindDailyFree() (*model.Drill, error) {
	var drill model.Drill
	err := r.DB.Where("is_daily_free = ?", true).First(&drill).Error
	return &drill, err
}

func (r *DrillRepository) IncrementViewCount(id uint) error {
	return r.DB.Model(&model.Drill{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).
		Error
}

// SetDailyFree 原子切换今日免费标记
func (r *DrillRepository) SetDailyFree(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Drill{}).
			Where("is_daily_free = ?", true).
			Update("is_daily_free", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.Drill{}).
			Where("id = ?", id).
			Update("is_daily_free", true).Error
	})
}

// PickRandomID 随机抽取一条磨合动作，排除给定ID
func (r *DrillRepository) PickRandomID(excludeID uint) (uint, error) {
	var id uint
	err := r.DB.Model(&model.Drill{}).
		Where("id <> ?", excludeID).
		Order("RAND()").
		Limit(1).
		Pluck("id", &id).Error
	return id, err
}
