package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"skillpass/repository"
)

func intPtr(v int) *int {
	return &v
}

// two modules, three criteria; criteria 1 and 3 belong to skill group 1,
// criterion 2 to skill group 2
func testSchema() *repository.AssessmentSchema {
	return &repository.AssessmentSchema{
		Id:            1,
		EventId:       1,
		TotalMaxScore: 30,
		Modules: []*repository.AssessmentModule{
			{
				Id: 1, Code: "A", Name: "First module", MaxScore: 20,
				SubCriteria: []*repository.SubCriterion{
					{
						Id: 1, Code: "1", Name: "Sub",
						Criteria: []*repository.Criterion{
							{Id: 1, Code: "A1", Type: repository.CriterionTypeMeasurement, MaxScore: 10, SkillGroupId: intPtr(1)},
							{Id: 2, Code: "A1", Type: repository.CriterionTypeJudgement, MaxScore: 10, SkillGroupId: intPtr(2)},
						},
					},
				},
			},
			{
				Id: 2, Code: "B", Name: "Second module", MaxScore: 10,
				SubCriteria: []*repository.SubCriterion{
					{
						Id: 2, Code: "1", Name: "Sub",
						Criteria: []*repository.Criterion{
							{Id: 3, Code: "B1", Type: repository.CriterionTypeMeasurement, MaxScore: 10, SkillGroupId: intPtr(1)},
						},
					},
				},
			},
		},
		SkillGroups: []*repository.SkillGroup{
			{Id: 1, Number: 1, Name: "Группа 1", NameEn: "Group 1", MaxScore: 15},
			{Id: 2, Number: 2, Name: "Группа 2", NameEn: "Group 2", MaxScore: 10},
		},
	}
}

func teamWithScores(teamId int, values map[int]float64) *repository.Team {
	team := &repository.Team{Id: teamId, EventId: 1, Name: "Team"}
	for criterionId, value := range values {
		team.Scores = append(team.Scores, &repository.Score{
			CriterionId: criterionId,
			TeamId:      teamId,
			Value:       value,
		})
	}
	return team
}

func TestComputeTeamResultModuleSums(t *testing.T) {
	schema := testSchema()
	team := teamWithScores(1, map[int]float64{1: 7, 2: 5, 3: 8})

	result := ComputeTeamResult(schema, team)

	require.Len(t, result.ModuleScores, 2)
	assert.Equal(t, 12.0, result.ModuleScores[0].Score)
	assert.Equal(t, 8.0, result.ModuleScores[1].Score)
	assert.Equal(t, 20.0, result.TotalScore)
}

func TestComputeTeamResultUnscoredCriteriaCountAsZero(t *testing.T) {
	schema := testSchema()
	team := teamWithScores(1, map[int]float64{1: 7})

	result := ComputeTeamResult(schema, team)

	assert.Equal(t, 7.0, result.ModuleScores[0].Score)
	assert.Equal(t, 0.0, result.ModuleScores[1].Score)
	assert.Equal(t, 7.0, result.TotalScore)
}

func TestComputeTeamResultSkillGroupsCrossModules(t *testing.T) {
	schema := testSchema()
	team := teamWithScores(1, map[int]float64{1: 4, 2: 5, 3: 6})

	result := ComputeTeamResult(schema, team)

	require.Len(t, result.SkillGroupScores, 2)
	// group 1 collects criteria 1 and 3 from different modules
	assert.Equal(t, 10.0, result.SkillGroupScores[0].Score)
	assert.Equal(t, 5.0, result.SkillGroupScores[1].Score)
}

func TestComputeTeamResultClampsSkillGroupToMax(t *testing.T) {
	schema := testSchema()
	// group 1 raw sum is 18, above its max of 15
	team := teamWithScores(1, map[int]float64{1: 9, 3: 9})

	result := ComputeTeamResult(schema, team)

	assert.Equal(t, 15.0, result.SkillGroupScores[0].Score)
	// the module view and the team total stay unclamped
	assert.Equal(t, 18.0, result.TotalScore)
}

func TestComputeTeamResultTotalIsModuleSumNotGroupSum(t *testing.T) {
	schema := testSchema()
	team := teamWithScores(1, map[int]float64{1: 9, 2: 3, 3: 9})

	result := ComputeTeamResult(schema, team)

	groupSum := 0.0
	for _, group := range result.SkillGroupScores {
		groupSum += group.Score
	}
	assert.Equal(t, 21.0, result.TotalScore)
	assert.Equal(t, 18.0, groupSum)
}

func TestRankResultsStandardCompetitionRanking(t *testing.T) {
	results := []*TeamResult{
		{TeamId: 1, TotalScore: 85},
		{TeamId: 2, TotalScore: 90},
		{TeamId: 3, TotalScore: 90},
		{TeamId: 4, TotalScore: 80},
	}

	RankResults(results)

	assert.Equal(t, []float64{90, 90, 85, 80}, []float64{
		results[0].TotalScore, results[1].TotalScore, results[2].TotalScore, results[3].TotalScore,
	})
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, 1, results[1].Rank)
	assert.Equal(t, 3, results[2].Rank)
	assert.Equal(t, 4, results[3].Rank)
}

func TestRankResultsAllTied(t *testing.T) {
	results := []*TeamResult{
		{TeamId: 1, TotalScore: 50},
		{TeamId: 2, TotalScore: 50},
		{TeamId: 3, TotalScore: 50},
	}

	RankResults(results)

	for _, result := range results {
		assert.Equal(t, 1, result.Rank)
	}
}

func TestRankResultsStrictlyDescending(t *testing.T) {
	results := []*TeamResult{
		{TeamId: 1, TotalScore: 10},
		{TeamId: 2, TotalScore: 30},
		{TeamId: 3, TotalScore: 20},
	}

	RankResults(results)

	assert.Equal(t, 2, results[0].TeamId)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, 3, results[1].TeamId)
	assert.Equal(t, 2, results[1].Rank)
	assert.Equal(t, 1, results[2].TeamId)
	assert.Equal(t, 3, results[2].Rank)
}

func TestComputeEventResultsRanksAllTeams(t *testing.T) {
	schema := testSchema()
	teams := []*repository.Team{
		teamWithScores(1, map[int]float64{1: 10, 2: 10, 3: 10}),
		teamWithScores(2, map[int]float64{1: 5}),
		teamWithScores(3, map[int]float64{1: 10, 2: 10, 3: 10}),
	}

	results := ComputeEventResults(schema, teams)

	require.Len(t, results, 3)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, 1, results[1].Rank)
	assert.Equal(t, 3, results[2].Rank)
	assert.Equal(t, 5.0, results[2].TotalScore)
}
