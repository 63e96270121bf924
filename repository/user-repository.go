package repository

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin       UserRole = "ADMIN"
	RoleOrganizer   UserRole = "ORGANIZER"
	RoleExpert      UserRole = "EXPERT"
	RoleParticipant UserRole = "PARTICIPANT"
)

type User struct {
	Id                     int      `gorm:"primaryKey"`
	Email                  string   `gorm:"not null;uniqueIndex"`
	PasswordHash           string   `gorm:"not null"`
	FirstName              string   `gorm:"not null"`
	LastName               string   `gorm:"not null"`
	MiddleName             string   `gorm:"null"`
	Organization           string   `gorm:"null"`
	Role                   UserRole `gorm:"not null;type:skillpass.user_role;default:'PARTICIPANT'"`
	AgreedToTerms          bool     `gorm:"not null;default:false"`
	AgreedToDataProcessing bool     `gorm:"not null;default:false"`
	CreatedAt              time.Time
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetUserById(userId int) (*User, error) {
	var user User
	result := r.DB.First(&user, userId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*User, error) {
	var user User
	result := r.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) GetUsersByIds(userIds []int) ([]*User, error) {
	users := make([]*User, 0)
	result := r.DB.Find(&users, "id in ?", userIds)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *UserRepository) Save(user *User) (*User, error) {
	result := r.DB.Save(user)
	if result.Error != nil {
		return nil, result.Error
	}
	return user, nil
}

func (r *UserRepository) FindAll() ([]*User, error) {
	users := make([]*User, 0)
	result := r.DB.Order("last_name, first_name").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}
