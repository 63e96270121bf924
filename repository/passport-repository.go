package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ModuleScoreEntry struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
}

type SkillGroupScoreEntry struct {
	Number   int     `json:"number"`
	Name     string  `json:"name"`
	NameEn   string  `json:"name_en"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
}

type ModuleScoreEntries []ModuleScoreEntry

type SkillGroupScoreEntries []SkillGroupScoreEntry

// SkillPassport is the per-participant snapshot written at publish time. Every
// member of a team gets an identical total and score breakdown; the snapshot is
// only ever rewritten by another publish run.
type SkillPassport struct {
	Id               int                    `gorm:"primaryKey"`
	UserId           int                    `gorm:"not null;uniqueIndex:idx_passports_user_event"`
	EventId          int                    `gorm:"not null;uniqueIndex:idx_passports_user_event"`
	TeamId           *int                   `gorm:"null"`
	TotalScore       float64                `gorm:"not null"`
	ModuleScores     ModuleScoreEntries     `gorm:"serializer:json"`
	SkillGroupScores SkillGroupScoreEntries `gorm:"serializer:json"`
	PublishedAt      time.Time              `gorm:"not null"`

	User *User `gorm:"foreignKey:UserId"`
	Team *Team `gorm:"foreignKey:TeamId"`
}

type PassportRepository struct {
	DB *gorm.DB
}

func NewPassportRepository(db *gorm.DB) *PassportRepository {
	return &PassportRepository{DB: db}
}

// Upsert overwrites the (user, event) snapshot if one exists. tx may be the
// repository's own handle or an enclosing transaction.
func (r *PassportRepository) Upsert(tx *gorm.DB, passport *SkillPassport) error {
	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"team_id", "total_score", "module_scores", "skill_group_scores", "published_at"}),
	}).Create(passport)
	return result.Error
}

func (r *PassportRepository) GetForEvent(eventId int) ([]*SkillPassport, error) {
	passports := make([]*SkillPassport, 0)
	result := r.DB.
		Preload("User").
		Preload("Team").
		Where("event_id = ?", eventId).
		Order("total_score desc").
		Find(&passports)
	if result.Error != nil {
		return nil, result.Error
	}
	return passports, nil
}

func (r *PassportRepository) GetForUser(userId int) ([]*SkillPassport, error) {
	passports := make([]*SkillPassport, 0)
	result := r.DB.
		Preload("Team").
		Where("user_id = ?", userId).
		Order("published_at desc").
		Find(&passports)
	if result.Error != nil {
		return nil, result.Error
	}
	return passports, nil
}

func (r *PassportRepository) GetByUserAndEvent(userId int, eventId int) (*SkillPassport, error) {
	var passport SkillPassport
	result := r.DB.
		Preload("Team").
		First(&passport, "user_id = ? AND event_id = ?", userId, eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &passport, nil
}
