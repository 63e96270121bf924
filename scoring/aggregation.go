package scoring

import (
	"skillpass/repository"
	"sort"
)

type ModuleScore struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
}

type SkillGroupScore struct {
	Number   int     `json:"number"`
	Name     string  `json:"name"`
	NameEn   string  `json:"name_en"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
}

type TeamResult struct {
	TeamId           int
	Rank             int
	TotalScore       float64
	ModuleScores     []ModuleScore
	SkillGroupScores []SkillGroupScore
}

// ComputeTeamResult folds a team's raw scores into per-module and
// per-skill-group totals. Module totals are bounded by construction and stay
// unclamped; skill-group totals are clamped to the group's max because the
// group axis cuts across modules and its definitions may overlap. The team
// total is the sum of module scores, never reconciled with the skill-group view.
func ComputeTeamResult(schema *repository.AssessmentSchema, team *repository.Team) *TeamResult {
	scoreByCriterion := make(map[int]float64, len(team.Scores))
	for _, score := range team.Scores {
		scoreByCriterion[score.CriterionId] = score.Value
	}

	result := &TeamResult{TeamId: team.Id}
	for _, module := range schema.Modules {
		moduleScore := ModuleScore{
			Code:     module.Code,
			Name:     module.Name,
			MaxScore: module.MaxScore,
		}
		for _, subCriterion := range module.SubCriteria {
			for _, criterion := range subCriterion.Criteria {
				moduleScore.Score += scoreByCriterion[criterion.Id]
			}
		}
		result.TotalScore += moduleScore.Score
		result.ModuleScores = append(result.ModuleScores, moduleScore)
	}

	for _, group := range schema.SkillGroups {
		groupScore := SkillGroupScore{
			Number:   group.Number,
			Name:     group.Name,
			NameEn:   group.NameEn,
			MaxScore: group.MaxScore,
		}
		for _, module := range schema.Modules {
			for _, subCriterion := range module.SubCriteria {
				for _, criterion := range subCriterion.Criteria {
					if criterion.SkillGroupId != nil && *criterion.SkillGroupId == group.Id {
						groupScore.Score += scoreByCriterion[criterion.Id]
					}
				}
			}
		}
		if groupScore.Score > groupScore.MaxScore {
			groupScore.Score = groupScore.MaxScore
		}
		result.SkillGroupScores = append(result.SkillGroupScores, groupScore)
	}

	return result
}

// ComputeEventResults computes every team's result and assigns standard
// competition ranks: tied teams share a rank, the next distinct score gets its
// 1-based position, so [90, 90, 85, 80] ranks as [1, 1, 3, 4].
func ComputeEventResults(schema *repository.AssessmentSchema, teams []*repository.Team) []*TeamResult {
	results := make([]*TeamResult, 0, len(teams))
	for _, team := range teams {
		results = append(results, ComputeTeamResult(schema, team))
	}
	RankResults(results)
	return results
}

// RankResults sorts results by total score descending and assigns ranks in place.
func RankResults(results []*TeamResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})
	currentRank := 1
	for i, result := range results {
		if i > 0 && result.TotalScore < results[i-1].TotalScore {
			currentRank = i + 1
		}
		result.Rank = currentRank
	}
}
