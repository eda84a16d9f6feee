package service

import (
	"bjj_academy_backend/internal/config"
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/internal/repository"
	"bjj_academy_backend/internal/util"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Config   *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, Config: cfg}
}

// Register 创建账号。邮箱唯一，密码只存 bcrypt 散列。
func (s *AuthService) Register(name, email, password, beltRank string, difficulty model.Difficulty) (*model.User, error) {
	if _, err := s.UserRepo.FindByEmail(email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:                name,
		Email:               email,
		Password:            string(hashed),
		Role:                model.Member,
		BeltRank:            beltRank,
		PreferredDifficulty: difficulty,
	}
	if user.BeltRank == "" {
		user.BeltRank = "white"
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 校验密码并签发 JWT。禁用账号与密码错误返回同一个错误。
func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, util.ErrUnauthorized
		}
		return "", nil, err
	}
	if user.Disabled {
		return "", nil, util.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrUnauthorized
	}

	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	_ = s.UserRepo.UpdateFields(user.ID, map[string]interface{}{"last_login": time.Now()})
	return token, user, nil
}
