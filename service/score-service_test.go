package service

import (
	"skillpass/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertScoresLastWriteWins(t *testing.T) {
	defer TearDown()
	event := SetUp()
	schemaService := NewSchemaService(db)
	scoreService := NewScoreService(db)

	schema, err := schemaService.ImportSchema(event.Id, "rubric.xlsx", rubricWorkbook(t))
	require.NoError(t, err)
	criterionIds := eventCriterionIds(t, schema)
	teamId := event.Teams[0].Id

	saved, err := scoreService.UpsertScores(event.Id, 101, []*repository.Score{
		{CriterionId: criterionIds[0], TeamId: teamId, Value: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	saved, err = scoreService.UpsertScores(event.Id, 102, []*repository.Score{
		{CriterionId: criterionIds[0], TeamId: teamId, Value: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	scores, err := scoreService.GetScoresForEvent(event.Id, nil)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 7.0, scores[0].Value)
	assert.Equal(t, 102, scores[0].ExpertId)
}

func TestGetScoresForEventFiltersByTeam(t *testing.T) {
	defer TearDown()
	event := SetUp()
	schemaService := NewSchemaService(db)
	scoreService := NewScoreService(db)

	schema, err := schemaService.ImportSchema(event.Id, "rubric.xlsx", rubricWorkbook(t))
	require.NoError(t, err)
	criterionIds := eventCriterionIds(t, schema)

	_, err = scoreService.UpsertScores(event.Id, 101, []*repository.Score{
		{CriterionId: criterionIds[0], TeamId: event.Teams[0].Id, Value: 5},
		{CriterionId: criterionIds[0], TeamId: event.Teams[1].Id, Value: 8},
		{CriterionId: criterionIds[1], TeamId: event.Teams[1].Id, Value: 2},
	})
	require.NoError(t, err)

	all, err := scoreService.GetScoresForEvent(event.Id, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	teamScores, err := scoreService.GetScoresForEvent(event.Id, &event.Teams[1].Id)
	require.NoError(t, err)
	assert.Len(t, teamScores, 2)
	for _, score := range teamScores {
		assert.Equal(t, event.Teams[1].Id, score.TeamId)
	}
}

func TestGetScoresForEventWithoutSchema(t *testing.T) {
	defer TearDown()
	event := SetUp()
	scoreService := NewScoreService(db)

	scores, err := scoreService.GetScoresForEvent(event.Id, nil)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestGetLiveTotals(t *testing.T) {
	defer TearDown()
	event := SetUp()
	schemaService := NewSchemaService(db)
	scoreService := NewScoreService(db)

	schema, err := schemaService.ImportSchema(event.Id, "rubric.xlsx", rubricWorkbook(t))
	require.NoError(t, err)
	criterionIds := eventCriterionIds(t, schema)

	_, err = scoreService.UpsertScores(event.Id, 101, []*repository.Score{
		{CriterionId: criterionIds[0], TeamId: event.Teams[0].Id, Value: 5},
		{CriterionId: criterionIds[1], TeamId: event.Teams[0].Id, Value: 3},
		{CriterionId: criterionIds[0], TeamId: event.Teams[1].Id, Value: 9},
	})
	require.NoError(t, err)

	totals, err := scoreService.GetLiveTotals(event.Id)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	// ordered by total descending
	assert.Equal(t, event.Teams[1].Id, totals[0].TeamId)
	assert.Equal(t, 9.0, totals[0].Total)
	assert.Equal(t, event.Teams[0].Id, totals[1].TeamId)
	assert.Equal(t, 8.0, totals[1].Total)
}
