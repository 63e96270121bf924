package service

import (
	"skillpass/repository"

	"gorm.io/gorm"
)

type TeamService struct {
	teamRepository *repository.TeamRepository
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		teamRepository: repository.NewTeamRepository(db),
	}
}

func (e *TeamService) GetTeamsForEvent(eventId int) ([]*repository.Team, error) {
	return e.teamRepository.GetTeamsForEvent(eventId)
}

func (e *TeamService) GetTeamById(teamId int, preloads ...string) (*repository.Team, error) {
	return e.teamRepository.GetTeamById(teamId, preloads...)
}

// CreateTeam creates a team with the given members. The first member becomes
// the captain.
func (e *TeamService) CreateTeam(team *repository.Team, memberIds []int) (*repository.Team, error) {
	for i, userId := range memberIds {
		role := repository.TeamMemberRoleMember
		if i == 0 {
			role = repository.TeamMemberRoleCaptain
		}
		team.Members = append(team.Members, &repository.TeamMember{UserId: userId, Role: role})
	}
	return e.teamRepository.Save(team)
}

func (e *TeamService) AddMembers(teamId int, userIds []int) (*repository.Team, error) {
	team, err := e.teamRepository.GetTeamById(teamId, "Members")
	if err != nil {
		return nil, err
	}
	members := make([]*repository.TeamMember, 0, len(userIds))
	for i, userId := range userIds {
		role := repository.TeamMemberRoleMember
		if len(team.Members) == 0 && i == 0 {
			role = repository.TeamMemberRoleCaptain
		}
		members = append(members, &repository.TeamMember{TeamId: teamId, UserId: userId, Role: role})
	}
	err = e.teamRepository.AddMembers(members)
	if err != nil {
		return nil, err
	}
	return e.teamRepository.GetTeamById(teamId, "Members.User")
}

func (e *TeamService) RemoveMember(teamId int, userId int) error {
	return e.teamRepository.RemoveMember(teamId, userId)
}

func (e *TeamService) DeleteTeam(teamId int) error {
	_, err := e.teamRepository.GetTeamById(teamId)
	if err != nil {
		return err
	}
	return e.teamRepository.Delete(teamId)
}

func (e *TeamService) GetTeamForUser(eventId int, userId int) (*repository.Team, error) {
	return e.teamRepository.GetTeamForUser(eventId, userId)
}
