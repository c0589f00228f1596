package services

import (
	"errors"
	"strings"
	"time"

	"github.com/seanhu1010/vue3-element-backend/entity"
	"github.com/seanhu1010/vue3-element-backend/repository"
	"github.com/seanhu1010/vue3-element-backend/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("Invalid input. Please provide both username and password.")
	ErrUsernameTaken      = errors.New("Registration failed. User with this username already exists.")
	ErrInvalidCredentials = errors.New("Login failed. Invalid username or password.")
)

// AuthService จัดการ business logic ของการ login/register
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   repo,
		jwtSecret:  secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Register สร้าง user ใหม่ ถ้า username ซ้ำจะ error.
// The profile row is only created when avatar, gender and occupation all
// arrive together; anything less is ignored.
func (s *AuthService) Register(username, password, avatar, gender, occupation string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	// ตรวจซ้ำ username
	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	// hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	if avatar != "" && gender != "" && occupation != "" {
		profile := &entity.UserProfile{
			UserID:     user.ID,
			Avatar:     avatar,
			Gender:     gender,
			Occupation: occupation,
		}
		if err := s.userRepo.CreateProfile(profile); err != nil {
			return nil, err
		}
		user.Profile = profile
	}
	return user, nil
}

// Login ตรวจสอบ user + สร้าง JWT pair; the caller gets the access token.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// เทียบรหัสผ่าน
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// ออก token
	access, _, err := utils.GenerateTokenPair(user.ID, user.Username, s.jwtSecret, s.accessTTL, s.refreshTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return access, user, nil
}
