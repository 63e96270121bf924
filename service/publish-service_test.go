package service

import (
	"skillpass/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishResultsWritesPassportsAndRanks(t *testing.T) {
	defer TearDown()
	event := SetUp()
	schemaService := NewSchemaService(db)
	scoreService := NewScoreService(db)
	publishService := NewPublishService(db)
	passportService := NewPassportService(db)

	schema, err := schemaService.ImportSchema(event.Id, "rubric.xlsx", rubricWorkbook(t))
	require.NoError(t, err)
	criterionIds := eventCriterionIds(t, schema)

	_, err = scoreService.UpsertScores(event.Id, 101, []*repository.Score{
		{CriterionId: criterionIds[0], TeamId: event.Teams[0].Id, Value: 9},
		{CriterionId: criterionIds[1], TeamId: event.Teams[0].Id, Value: 5},
		{CriterionId: criterionIds[2], TeamId: event.Teams[0].Id, Value: 8},
		{CriterionId: criterionIds[0], TeamId: event.Teams[1].Id, Value: 4},
		{CriterionId: criterionIds[2], TeamId: event.Teams[1].Id, Value: 6},
	})
	require.NoError(t, err)

	passportCount, err := publishService.PublishResults(event.Id)
	require.NoError(t, err)
	assert.Equal(t, 4, passportCount)

	var published repository.Event
	require.NoError(t, db.First(&published, event.Id).Error)
	assert.Equal(t, repository.EventStatusResultsPublished, published.Status)

	var winner repository.Team
	require.NoError(t, db.First(&winner, event.Teams[0].Id).Error)
	require.NotNil(t, winner.Rank)
	require.NotNil(t, winner.TotalScore)
	assert.Equal(t, 1, *winner.Rank)
	assert.Equal(t, 22.0, *winner.TotalScore)

	var runnerUp repository.Team
	require.NoError(t, db.First(&runnerUp, event.Teams[1].Id).Error)
	require.NotNil(t, runnerUp.Rank)
	assert.Equal(t, 2, *runnerUp.Rank)

	passports, err := passportService.GetPassportsForEvent(event.Id)
	require.NoError(t, err)
	require.Len(t, passports, 4)
}

func TestPublishResultsTeamMembersGetIdenticalSnapshots(t *testing.T) {
	defer TearDown()
	event := SetUp()
	schemaService := NewSchemaService(db)
	scoreService := NewScoreService(db)
	publishService := NewPublishService(db)
	passportService := NewPassportService(db)

	schema, err := schemaService.ImportSchema(event.Id, "rubric.xlsx", rubricWorkbook(t))
	require.NoError(t, err)
	criterionIds := eventCriterionIds(t, schema)

	_, err = scoreService.UpsertScores(event.Id, 101, []*repository.Score{
		{CriterionId: criterionIds[0], TeamId: event.Teams[0].Id, Value: 9},
		{CriterionId: criterionIds[2], TeamId: event.Teams[0].Id, Value: 9},
	})
	require.NoError(t, err)

	_, err = publishService.PublishResults(event.Id)
	require.NoError(t, err)

	first, err := passportService.GetPassport(event.Teams[0].Members[0].UserId, event.Id)
	require.NoError(t, err)
	second, err := passportService.GetPassport(event.Teams[0].Members[1].UserId, event.Id)
	require.NoError(t, err)

	assert.Equal(t, first.TotalScore, second.TotalScore)
	assert.Equal(t, first.ModuleScores, second.ModuleScores)
	assert.Equal(t, first.SkillGroupScores, second.SkillGroupScores)
	require.NotNil(t, first.TeamId)
	assert.Equal(t, event.Teams[0].Id, *first.TeamId)

	assert.Equal(t, 18.0, first.TotalScore)
	require.Len(t, first.ModuleScores, 2)
	assert.Equal(t, 9.0, first.ModuleScores[0].Score)
	assert.Equal(t, 9.0, first.ModuleScores[1].Score)
	// both scored criteria belong to skill group 1
	require.Len(t, first.SkillGroupScores, 9)
	assert.Equal(t, 18.0, first.SkillGroupScores[0].Score)
	assert.Equal(t, 0.0, first.SkillGroupScores[1].Score)
}

func TestPublishResultsRerunOverwritesSnapshots(t *testing.T) {
	defer TearDown()
	event := SetUp()
	schemaService := NewSchemaService(db)
	scoreService := NewScoreService(db)
	publishService := NewPublishService(db)

	schema, err := schemaService.ImportSchema(event.Id, "rubric.xlsx", rubricWorkbook(t))
	require.NoError(t, err)
	criterionIds := eventCriterionIds(t, schema)

	_, err = scoreService.UpsertScores(event.Id, 101, []*repository.Score{
		{CriterionId: criterionIds[0], TeamId: event.Teams[0].Id, Value: 5},
	})
	require.NoError(t, err)
	_, err = publishService.PublishResults(event.Id)
	require.NoError(t, err)

	// a correction comes in after the first publish
	_, err = scoreService.UpsertScores(event.Id, 101, []*repository.Score{
		{CriterionId: criterionIds[0], TeamId: event.Teams[0].Id, Value: 10},
	})
	require.NoError(t, err)
	passportCount, err := publishService.PublishResults(event.Id)
	require.NoError(t, err)
	assert.Equal(t, 4, passportCount)

	var total int64
	db.Model(&repository.SkillPassport{}).Where("event_id = ?", event.Id).Count(&total)
	assert.Equal(t, int64(4), total)

	var passport repository.SkillPassport
	require.NoError(t, db.First(&passport, "user_id = ? AND event_id = ?", event.Teams[0].Members[0].UserId, event.Id).Error)
	assert.Equal(t, 10.0, passport.TotalScore)
}

func TestPublishResultsWithoutSchema(t *testing.T) {
	defer TearDown()
	event := SetUp()
	publishService := NewPublishService(db)

	_, err := publishService.PublishResults(event.Id)
	assert.ErrorIs(t, err, ErrNoSchema)
}
