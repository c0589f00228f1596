package repository

import (
	"github.com/seanhu1010/vue3-element-backend/entity"

	"gorm.io/gorm"
)

// UserRepository รับผิดชอบการคุยกับตาราง users ใน DB เท่านั้น
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) CreateProfile(profile *entity.UserProfile) error {
	return r.DB.Create(profile).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Preload("Profile").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll() ([]entity.User, error) {
	var users []entity.User
	if err := r.DB.Preload("Profile").Order("date_joined DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) UpdateProfile(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.UserProfile{}).Where("user_id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.User{}, id).Error
}
