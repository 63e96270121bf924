package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type EventStatus string

const (
	EventStatusDraft              EventStatus = "DRAFT"
	EventStatusRegistrationOpen   EventStatus = "REGISTRATION_OPEN"
	EventStatusRegistrationClosed EventStatus = "REGISTRATION_CLOSED"
	EventStatusInProgress         EventStatus = "IN_PROGRESS"
	EventStatusScoring            EventStatus = "SCORING"
	EventStatusResultsPublished   EventStatus = "RESULTS_PUBLISHED"
)

type Event struct {
	Id                int         `gorm:"primaryKey"`
	Name              string      `gorm:"not null"`
	Description       string      `gorm:"null"`
	Competency        string      `gorm:"not null"`
	RegistrationStart time.Time   `gorm:"null"`
	RegistrationEnd   time.Time   `gorm:"null"`
	EventStart        time.Time   `gorm:"null"`
	EventEnd          time.Time   `gorm:"null"`
	Status            EventStatus `gorm:"not null;type:skillpass.event_status;default:'DRAFT'"`
	MaxTeamSize       int         `gorm:"not null;default:4"`
	MinTeamSize       int         `gorm:"not null;default:1"`

	Teams        []*Team           `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
	Applications []*Application    `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
	Schema       *AssessmentSchema `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
}

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) GetEventById(eventId int, preloads ...string) (*Event, error) {
	var event *Event
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&event, eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) Save(event *Event) (*Event, error) {
	result := r.DB.Save(event)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save event: %v", result.Error)
	}
	return event, nil
}

func (r *EventRepository) UpdateStatus(eventId int, status EventStatus) error {
	result := r.DB.Model(&Event{}).Where("id = ?", eventId).Update("status", status)
	return result.Error
}

func (r *EventRepository) Delete(eventId int) error {
	return r.DB.Delete(&Event{}, eventId).Error
}

func (r *EventRepository) FindAll(preloads ...string) ([]*Event, error) {
	var events []*Event
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.Order("event_start").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *EventRepository) FindVisible(preloads ...string) ([]*Event, error) {
	var events []*Event
	query := r.DB.Where("status <> ?", EventStatusDraft)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.Order("event_start").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}
