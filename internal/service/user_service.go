package service

import (
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/internal/repository"
	"bjj_academy_backend/internal/util"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{UserRepo: userRepo, Storage: storage}
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

type ProfileUpdate struct {
	Name                string           `json:"name"`
	BeltRank            string           `json:"beltRank"`
	PreferredDifficulty model.Difficulty `json:"preferredDifficulty"`
}

func (s *UserService) UpdateProfile(userID uint, upd ProfileUpdate) (*model.User, error) {
	updates := map[string]interface{}{}
	if upd.Name != "" {
		updates["name"] = upd.Name
	}
	if upd.BeltRank != "" {
		updates["belt_rank"] = upd.BeltRank
	}
	if upd.PreferredDifficulty != "" {
		updates["preferred_difficulty"] = upd.PreferredDifficulty
	}
	if len(updates) > 0 {
		if err := s.UserRepo.UpdateFields(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.GetProfile(userID)
}

// UploadAvatar 嗅探内容再存储，扩展名不可信
func (s *UserService) UploadAvatar(userID uint, filename string, size int64, file io.ReadSeeker) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, a := range util.AllowedImageExtensions {
		if ext == a {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", util.ErrInvalidImageExt
	}

	mime, err := util.ValidateMimeType(file, []string{util.MimePNG, util.MimeJPEG})
	if err != nil {
		return "", util.ErrInvalidImageExt
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	objectName := "avatars/" + uuid.New().String() + ext
	url, err := s.Storage.Save(objectName, file, size, mime)
	if err != nil {
		return "", err
	}

	if err := s.UserRepo.UpdateFields(userID, map[string]interface{}{"avatar": url}); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) ListUsers(page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.List(page, util.ClampLimit(limit))
}

func (s *UserService) SetDisabled(userID uint, disabled bool) error {
	return s.UserRepo.UpdateFields(userID, map[string]interface{}{"disabled": disabled})
}

func (s *UserService) SetRole(userID uint, role model.UserRole) error {
	return s.UserRepo.UpdateFields(userID, map[string]interface{}{"role": role})
}
