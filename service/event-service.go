package service

import (
	"skillpass/repository"

	"gorm.io/gorm"
)

type EventService struct {
	eventRepository *repository.EventRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		eventRepository: repository.NewEventRepository(db),
	}
}

func (e *EventService) GetEventById(eventId int, preloads ...string) (*repository.Event, error) {
	return e.eventRepository.GetEventById(eventId, preloads...)
}

func (e *EventService) GetAllEvents() ([]*repository.Event, error) {
	return e.eventRepository.FindAll("Schema")
}

func (e *EventService) GetVisibleEvents() ([]*repository.Event, error) {
	return e.eventRepository.FindVisible("Schema")
}

func (e *EventService) SaveEvent(event *repository.Event) (*repository.Event, error) {
	return e.eventRepository.Save(event)
}

func (e *EventService) UpdateEvent(eventId int, update *repository.Event) (*repository.Event, error) {
	event, err := e.eventRepository.GetEventById(eventId)
	if err != nil {
		return nil, err
	}
	if update.Name != "" {
		event.Name = update.Name
	}
	if update.Description != "" {
		event.Description = update.Description
	}
	if update.Competency != "" {
		event.Competency = update.Competency
	}
	if update.Status != "" {
		event.Status = update.Status
	}
	if update.MaxTeamSize != 0 {
		event.MaxTeamSize = update.MaxTeamSize
	}
	if update.MinTeamSize != 0 {
		event.MinTeamSize = update.MinTeamSize
	}
	if !update.RegistrationStart.IsZero() {
		event.RegistrationStart = update.RegistrationStart
	}
	if !update.RegistrationEnd.IsZero() {
		event.RegistrationEnd = update.RegistrationEnd
	}
	if !update.EventStart.IsZero() {
		event.EventStart = update.EventStart
	}
	if !update.EventEnd.IsZero() {
		event.EventEnd = update.EventEnd
	}
	return e.eventRepository.Save(event)
}

func (e *EventService) DeleteEvent(eventId int) error {
	_, err := e.eventRepository.GetEventById(eventId)
	if err != nil {
		return err
	}
	return e.eventRepository.Delete(eventId)
}
