package service

import (
	"fmt"
	"skillpass/repository"

	"gorm.io/gorm"
)

type ApplicationService struct {
	applicationRepository *repository.ApplicationRepository
	eventRepository       *repository.EventRepository
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		applicationRepository: repository.NewApplicationRepository(db),
		eventRepository:       repository.NewEventRepository(db),
	}
}

func (e *ApplicationService) GetApplicationsForEvent(eventId int) ([]*repository.Application, error) {
	return e.applicationRepository.GetForEvent(eventId)
}

func (e *ApplicationService) Apply(eventId int, userId int, message string) (*repository.Application, error) {
	event, err := e.eventRepository.GetEventById(eventId)
	if err != nil {
		return nil, err
	}
	if event.Status != repository.EventStatusRegistrationOpen {
		return nil, fmt.Errorf("registration is not open for this event")
	}
	return e.applicationRepository.Save(&repository.Application{
		EventId: eventId,
		UserId:  userId,
		Message: message,
		Status:  repository.ApplicationStatusPending,
	})
}

func (e *ApplicationService) SetStatus(applicationId int, status repository.ApplicationStatus) (*repository.Application, error) {
	application, err := e.applicationRepository.GetById(applicationId)
	if err != nil {
		return nil, err
	}
	application.Status = status
	return e.applicationRepository.Save(application)
}
