package service

import (
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/internal/repository"
	"bjj_academy_backend/internal/util"
	"bjj_academy_backend/pkg/logger"
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 积分 = 训练分钟数 + 10 × 实战回合数
const pointsPerSparringRound = 10

type TrainingService struct {
	LogRepo         *repository.TrainingLogRepository
	SparringRepo    *repository.SparringVideoRepository
	LeaderboardRepo *repository.LeaderboardRepository
}

func NewTrainingService(logRepo *repository.TrainingLogRepository, sparringRepo *repository.SparringVideoRepository, leaderboardRepo *repository.LeaderboardRepository) *TrainingService {
	return &TrainingService{
		LogRepo:         logRepo,
		SparringRepo:    sparringRepo,
		LeaderboardRepo: leaderboardRepo,
	}
}

func TrainingPoints(durationMinutes, sparringRounds int) float64 {
	return float64(durationMinutes + sparringRounds*pointsPerSparringRound)
}

type TrainingLogInput struct {
	Date            time.Time         `json:"date"`
	SessionType     model.SessionType `json:"sessionType"`
	DurationMinutes int               `json:"durationMinutes" binding:"min=0"`
	SparringRounds  int               `json:"sparringRounds" binding:"min=0"`
	Techniques      string            `json:"techniques"`
	Notes           string            `json:"notes"`
}

// LogSession 记录训练并累积积分榜分数。Redis 写入失败只记日志，
// 训练记录本身仍然成功。
func (s *TrainingService) LogSession(ctx context.Context, userID uint, in TrainingLogInput) (*model.TrainingLog, error) {
	log := &model.TrainingLog{
		UserID:          userID,
		Date:            in.Date,
		SessionType:     in.SessionType,
		DurationMinutes: in.DurationMinutes,
		SparringRounds:  in.SparringRounds,
		Techniques:      in.Techniques,
		Notes:           in.Notes,
	}
	if log.Date.IsZero() {
		log.Date = time.Now()
	}
	if log.SessionType == "" {
		log.SessionType = model.SessionGi
	}
	if err := s.LogRepo.Create(log); err != nil {
		return nil, err
	}

	points := TrainingPoints(in.DurationMinutes, in.SparringRounds)
	if points > 0 {
		if err := s.LeaderboardRepo.AddPoints(ctx, userID, points); err != nil {
			logger.Log.Warn("leaderboard update failed",
				zap.Uint("userId", userID), zap.Float64("points", points), zap.Error(err))
		}
	}
	return log, nil
}

func (s *TrainingService) ListLogs(userID uint, page, limit int) ([]model.TrainingLog, int64, error) {
	return s.LogRepo.FindByUser(userID, page, util.ClampLimit(limit))
}

// DeleteLog 只能删自己的记录；积分不回收
func (s *TrainingService) DeleteLog(userID, logID uint) error {
	log, err := s.LogRepo.FindByID(logID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrContentNotFound
		}
		return err
	}
	if log.UserID != userID {
		return util.ErrPermissionDenied
	}
	return s.LogRepo.Delete(logID)
}

func (s *TrainingService) WeeklyStats(userID uint) (*model.WeeklyTrainingStats, error) {
	since := time.Now().AddDate(0, 0, -7)
	return s.LogRepo.WeeklyStats(userID, since)
}

type SparringVideoInput struct {
	Title           string  `json:"title" binding:"required"`
	VideoHostID     string  `json:"videoHostId"`
	Notes           string  `json:"notes"`
	DurationSeconds float64 `json:"durationSeconds"`
}

func (s *TrainingService) AddSparringVideo(userID uint, in SparringVideoInput) (*model.SparringVideo, error) {
	video := &model.SparringVideo{
		UploaderID:      userID,
		Title:           in.Title,
		VideoHostID:     in.VideoHostID,
		Notes:           in.Notes,
		DurationSeconds: in.DurationSeconds,
	}
	if err := s.SparringRepo.Create(video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *TrainingService) ListSparringVideos(userID uint) ([]model.SparringVideo, error) {
	return s.SparringRepo.FindByUploader(userID)
}
