package service

import (
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/internal/repository"
)

type InteractionService struct {
	InteractionRepo *repository.InteractionRepository
}

func NewInteractionService(repo *repository.InteractionRepository) *InteractionService {
	return &InteractionService{InteractionRepo: repo}
}

// Toggle 点赞/收藏/关注的幂等开关。浏览走 RecordView，不在这里。
func (s *InteractionService) Toggle(userID uint, contentType model.ContentType, contentID uint, kind model.InteractionKind) (bool, error) {
	return s.InteractionRepo.Toggle(userID, contentType, contentID, kind)
}

func (s *InteractionService) FollowCreator(userID, creatorID uint) (bool, error) {
	return s.InteractionRepo.Toggle(userID, model.ContentTypeCreator, creatorID, model.InteractionFollow)
}

func (s *InteractionService) FollowedCreatorIDs(userID uint) ([]uint, error) {
	return s.InteractionRepo.FollowedCreatorIDs(userID)
}
