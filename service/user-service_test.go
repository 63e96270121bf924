package service

import (
	"skillpass/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	defer TearDown()
	userService := NewUserService(db)

	user, err := userService.Register(&repository.User{
		Email:     "new@example.com",
		FirstName: "Anna",
		LastName:  "Petrova",
		Role:      repository.RoleParticipant,
	}, "secret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret-password", user.PasswordHash)

	authenticated, err := userService.Authenticate("new@example.com", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, user.Id, authenticated.Id)

	_, err = userService.Authenticate("new@example.com", "wrong-password")
	assert.Error(t, err)

	_, err = userService.Authenticate("missing@example.com", "secret-password")
	assert.Error(t, err)
}

func TestChangeRole(t *testing.T) {
	defer TearDown()
	userService := NewUserService(db)

	user, err := userService.Register(&repository.User{
		Email:     "expert@example.com",
		FirstName: "Ivan",
		LastName:  "Ivanov",
		Role:      repository.RoleParticipant,
	}, "pw")
	require.NoError(t, err)

	updated, err := userService.ChangeRole(user.Id, repository.RoleExpert)
	require.NoError(t, err)
	assert.Equal(t, repository.RoleExpert, updated.Role)
}

func TestApplyRequiresOpenRegistration(t *testing.T) {
	defer TearDown()
	event := SetUp()
	applicationService := NewApplicationService(db)
	userId := event.Teams[0].Members[0].UserId

	// SetUp leaves the event in SCORING
	_, err := applicationService.Apply(event.Id, userId, "let me in")
	assert.Error(t, err)

	require.NoError(t, db.Model(&repository.Event{}).Where("id = ?", event.Id).
		Update("status", repository.EventStatusRegistrationOpen).Error)

	application, err := applicationService.Apply(event.Id, userId, "let me in")
	require.NoError(t, err)
	assert.Equal(t, repository.ApplicationStatusPending, application.Status)

	approved, err := applicationService.SetStatus(application.Id, repository.ApplicationStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, repository.ApplicationStatusApproved, approved.Status)
}

func TestCreateTeamFirstMemberIsCaptain(t *testing.T) {
	defer TearDown()
	event := SetUp()
	teamService := NewTeamService(db)
	userService := NewUserService(db)

	first, err := userService.Register(&repository.User{Email: "cap@example.com", FirstName: "A", LastName: "B"}, "pw")
	require.NoError(t, err)
	second, err := userService.Register(&repository.User{Email: "mem@example.com", FirstName: "C", LastName: "D"}, "pw")
	require.NoError(t, err)

	team, err := teamService.CreateTeam(&repository.Team{EventId: event.Id, Name: "team3"}, []int{first.Id, second.Id})
	require.NoError(t, err)
	require.Len(t, team.Members, 2)
	assert.Equal(t, repository.TeamMemberRoleCaptain, team.Members[0].Role)
	assert.Equal(t, repository.TeamMemberRoleMember, team.Members[1].Role)

	found, err := teamService.GetTeamForUser(event.Id, first.Id)
	require.NoError(t, err)
	assert.Equal(t, team.Id, found.Id)
}
