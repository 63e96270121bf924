package repository

import (
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

type Application struct {
	Id        int               `gorm:"primaryKey"`
	EventId   int               `gorm:"not null;uniqueIndex:idx_applications_event_user"`
	UserId    int               `gorm:"not null;uniqueIndex:idx_applications_event_user"`
	Status    ApplicationStatus `gorm:"not null;type:skillpass.application_status;default:'PENDING'"`
	Message   string            `gorm:"null"`
	CreatedAt time.Time

	User *User `gorm:"foreignKey:UserId"`
}

type ApplicationRepository struct {
	DB *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) GetById(applicationId int) (*Application, error) {
	var application Application
	result := r.DB.Preload("User").First(&application, applicationId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &application, nil
}

func (r *ApplicationRepository) GetForEvent(eventId int) ([]*Application, error) {
	applications := make([]*Application, 0)
	result := r.DB.Preload("User").Where("event_id = ?", eventId).Order("created_at").Find(&applications)
	if result.Error != nil {
		return nil, result.Error
	}
	return applications, nil
}

func (r *ApplicationRepository) Save(application *Application) (*Application, error) {
	result := r.DB.Save(application)
	if result.Error != nil {
		return nil, result.Error
	}
	return application, nil
}
