package service

import (
	"skillpass/repository"

	"gorm.io/gorm"
)

type PassportService struct {
	passportRepository *repository.PassportRepository
}

func NewPassportService(db *gorm.DB) *PassportService {
	return &PassportService{
		passportRepository: repository.NewPassportRepository(db),
	}
}

func (e *PassportService) GetPassportsForEvent(eventId int) ([]*repository.SkillPassport, error) {
	return e.passportRepository.GetForEvent(eventId)
}

func (e *PassportService) GetPassportsForUser(userId int) ([]*repository.SkillPassport, error) {
	return e.passportRepository.GetForUser(userId)
}

func (e *PassportService) GetPassport(userId int, eventId int) (*repository.SkillPassport, error) {
	return e.passportRepository.GetByUserAndEvent(userId, eventId)
}
