package repository

import (
	"gorm.io/gorm"
)

type TeamMemberRole string

const (
	TeamMemberRoleCaptain TeamMemberRole = "CAPTAIN"
	TeamMemberRoleMember  TeamMemberRole = "MEMBER"
)

type Team struct {
	Id      int    `gorm:"primaryKey"`
	EventId int    `gorm:"not null;index"`
	Name    string `gorm:"not null"`
	Number  *int   `gorm:"null"`
	// Rank and TotalScore stay null until results are published.
	Rank       *int     `gorm:"null"`
	TotalScore *float64 `gorm:"null"`

	Members []*TeamMember `gorm:"foreignKey:TeamId;constraint:OnDelete:CASCADE"`
	Scores  []*Score      `gorm:"foreignKey:TeamId;constraint:OnDelete:CASCADE"`
}

type TeamMember struct {
	TeamId int            `gorm:"primaryKey"`
	UserId int            `gorm:"primaryKey"`
	Role   TeamMemberRole `gorm:"not null;type:skillpass.team_member_role;default:'MEMBER'"`

	User *User `gorm:"foreignKey:UserId"`
}

type TeamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) GetTeamById(teamId int, preloads ...string) (*Team, error) {
	var team Team
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&team, teamId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &team, nil
}

func (r *TeamRepository) GetTeamsForEvent(eventId int) ([]*Team, error) {
	teams := make([]*Team, 0)
	result := r.DB.
		Preload("Members.User").
		Where("event_id = ?", eventId).
		Order("number").
		Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}
	return teams, nil
}

func (r *TeamRepository) Save(team *Team) (*Team, error) {
	result := r.DB.Save(team)
	if result.Error != nil {
		return nil, result.Error
	}
	return team, nil
}

func (r *TeamRepository) Delete(teamId int) error {
	return r.DB.Delete(&Team{}, teamId).Error
}

func (r *TeamRepository) AddMembers(members []*TeamMember) error {
	result := r.DB.CreateInBatches(members, len(members))
	return result.Error
}

func (r *TeamRepository) RemoveMember(teamId int, userId int) error {
	return r.DB.Delete(&TeamMember{TeamId: teamId, UserId: userId}).Error
}

func (r *TeamRepository) GetTeamForUser(eventId int, userId int) (*Team, error) {
	team := &Team{}
	result := r.DB.
		Joins("JOIN skillpass.team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ? AND teams.event_id = ?", userId, eventId).
		Preload("Members.User").
		First(team)
	if result.Error != nil {
		return nil, result.Error
	}
	return team, nil
}
