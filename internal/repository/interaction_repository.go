package repository

import (
	"bjj_academy_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

// Toggle 幂等开关：已存在则删除，否则创建。返回切换后的激活状态。
func (r *InteractionRepository) Toggle(userID uint, contentType model.ContentType, contentID uint, kind model.InteractionKind) (bool, error) {
	var active bool
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Interaction
		err := tx.Where("user_id = ? AND content_type = ? AND content_id = ? AND kind = ?",
			userID, contentType, contentID, kind).First(&existing).Error
		if err == nil {
			active = false
			return tx.Unscoped().Delete(&existing).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		active = true
		return tx.Create(&model.Interaction{
			UserID:      userID,
			ContentType: contentType,
			ContentID:   contentID,
			Kind:        kind,
			LastAt:      time.Now(),
		}).Error
	})
	return active, err
}

// RecordView 浏览累加计数而不是开关
func (r *InteractionRepository) RecordView(userID uint, contentType model.ContentType, contentID uint) error {
	now := time.Now()
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Interaction{}).
			Where("user_id = ? AND content_type = ? AND content_id = ? AND kind = ?",
				userID, contentType, contentID, model.InteractionView).
			Updates(map[string]interface{}{
				"view_count": gorm.Expr("view_count + 1"),
				"last_at":    now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		return tx.Create(&model.Interaction{
			UserID:      userID,
			ContentType: contentType,
			ContentID:   contentID,
			Kind:        model.InteractionView,
			ViewCount:   1,
			LastAt:      now,
		}).Error
	})
}

func (r *InteractionRepository) FollowedCreatorIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Interaction{}).
		Where("user_id = ? AND content_type = ? AND kind = ?",
			userID, model.ContentTypeCreator, model.InteractionFollow).
		Pluck("content_id", &ids).Error
	return ids, err
}

// TopViewedCategories 在用户浏览次数最多的 mostViewed 条内容里，按浏览频次
// 聚合分类，并以 (总次数 DESC, 分类名 ASC) 的确定性顺序取前 top 个。
func (r *InteractionRepository) TopViewedCategories(userID uint, contentType model.ContentType, mostViewed, top int) ([]string, error) {
	table := "drills"
	if contentType == model.ContentTypeLesson {
		table = "lessons"
	}

	var categories []string
	err := r.DB.Raw(`
		SELECT c.category FROM (
			SELECT content_id, view_count FROM interactions
			WHERE user_id = ? AND content_type = ? AND kind = ?
			ORDER BY view_count DESC
			LIMIT ?
		) i
		JOIN `+table+` c ON c.id = i.content_id
		WHERE c.category <> ''
		GROUP BY c.category
		ORDER BY SUM(i.view_count) DESC, c.category ASC
		LIMIT ?`,
		userID, contentType, model.InteractionView, mostViewed, top,
	).Scan(&categories).Error
	return categories, err
}

func (r *InteractionRepository) RecentViewedContentIDs(userID uint, contentType model.ContentType, limit int) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Interaction{}).
		Where("user_id = ? AND content_type = ? AND kind = ?",
			userID, contentType, model.InteractionView).
		Order("last_at DESC").
		Limit(limit).
		Pluck("content_id", &ids).Error
	return ids, err
}
