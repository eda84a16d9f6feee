package service

import (
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/internal/repository"
	"bjj_academy_backend/internal/util"
	"bjj_academy_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DrillService struct {
	DrillRepo       *repository.DrillRepository
	InteractionRepo *repository.InteractionRepository
	Access          *AccessService
}

func NewDrillService(drillRepo *repository.DrillRepository, interactionRepo *repository.InteractionRepository, access *AccessService) *DrillService {
	return &DrillService{DrillRepo: drillRepo, InteractionRepo: interactionRepo, Access: access}
}

func (s *DrillService) ListDrills(category string, difficulty model.Difficulty) ([]model.Drill, error) {
	return s.DrillRepo.FindFiltered(category, difficulty)
}

func (s *DrillService) GetDrill(id uint) (*model.Drill, error) {
	drill, err := s.DrillRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrContentNotFound
	}
	return drill, err
}

// DailyFreeDrill 今日免费动作，对游客开放
func (s *DrillService) DailyFreeDrill() (*model.Drill, error) {
	drill, err := s.DrillRepo.FindDailyFree()
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrNoDailyFreeDrill
	}
	return drill, err
}

// WatchDrill 通过门禁后返回可播放的动作并记录浏览
func (s *DrillService) WatchDrill(userID uint, drillID uint) (*model.Drill, error) {
	drill, err := s.GetDrill(drillID)
	if err != nil {
		return nil, err
	}

	if !s.Access.CanViewDrill(userID, drill) {
		return nil, util.ErrContentLocked
	}

	_ = s.DrillRepo.IncrementViewCount(drillID)
	if userID != 0 {
		_ = s.InteractionRepo.RecordView(userID, model.ContentTypeDrill, drillID)
	}
	return drill, nil
}

type DrillInput struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Difficulty  model.Difficulty `json:"difficulty"`
	PriceCents  int              `json:"priceCents"`
	VideoHostID string           `json:"videoHostId"`
}

func (s *DrillService) CreateDrill(creatorID uint, in DrillInput) (*model.Drill, error) {
	drill := &model.Drill{
		CreatorID:   creatorID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Difficulty:  in.Difficulty,
		PriceCents:  in.PriceCents,
		VideoHostID: in.VideoHostID,
	}
	if err := s.DrillRepo.Create(drill); err != nil {
		return nil, err
	}
	return drill, nil
}

// RotateDailyFree 每日轮换：随机换一条，避开当前这条。
// 目录里只有一条时保持原样。
func (s *DrillService) RotateDailyFree() error {
	var currentID uint
	if current, err := s.DrillRepo.FindDailyFree(); err == nil {
		currentID = current.ID
	}

	nextID, err := s.DrillRepo.PickRandomID(currentID)
	if err != nil {
		return err
	}
	if nextID == 0 {
		return nil
	}
	if err := s.DrillRepo.SetDailyFree(nextID); err != nil {
		return err
	}
	logger.Log.Info("daily free drill rotated",
		zap.Uint("previous", currentID), zap.Uint("current", nextID))
	return nil
}

// EnsureDailyFree 启动时兜底：没有免费条目就立刻选一条
func (s *DrillService) EnsureDailyFree() {
	if _, err := s.DrillRepo.FindDailyFree(); err == nil {
		return
	}
	if err := s.RotateDailyFree(); err != nil {
		logger.Log.Warn("could not select a daily free drill", zap.Error(err))
	}
}
