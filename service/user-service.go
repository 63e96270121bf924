package service

import (
	"fmt"
	"skillpass/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	userRepository *repository.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		userRepository: repository.NewUserRepository(db),
	}
}

func (e *UserService) Register(user *repository.User, password string) (*repository.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	return e.userRepository.Save(user)
}

func (e *UserService) Authenticate(email string, password string) (*repository.User, error) {
	user, err := e.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return user, nil
}

func (e *UserService) GetUserById(userId int) (*repository.User, error) {
	return e.userRepository.GetUserById(userId)
}

func (e *UserService) GetAllUsers() ([]*repository.User, error) {
	return e.userRepository.FindAll()
}

func (e *UserService) ChangeRole(userId int, role repository.UserRole) (*repository.User, error) {
	user, err := e.userRepository.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	user.Role = role
	return e.userRepository.Save(user)
}

func (e *UserService) UpdateProfile(userId int, update *repository.User) (*repository.User, error) {
	user, err := e.userRepository.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	if update.FirstName != "" {
		user.FirstName = update.FirstName
	}
	if update.LastName != "" {
		user.LastName = update.LastName
	}
	if update.MiddleName != "" {
		user.MiddleName = update.MiddleName
	}
	if update.Organization != "" {
		user.Organization = update.Organization
	}
	return e.userRepository.Save(user)
}
