package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Score is one expert's recorded value for one criterion against one team.
// The (criterion, team) pair is the identity; writes are last-write-wins and
// overwrite both the value and the attributed expert. The store accepts any
// numeric value; range checking happens at the entry UI.
type Score struct {
	CriterionId int     `gorm:"primaryKey;autoIncrement:false"`
	TeamId      int     `gorm:"primaryKey;autoIncrement:false"`
	Value       float64 `gorm:"not null"`
	ExpertId    int     `gorm:"not null"`
	UpdatedAt   time.Time
}

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

func (r *ScoreRepository) UpsertScores(scores []*Score) error {
	if len(scores) == 0 {
		return nil
	}
	now := time.Now()
	for _, score := range scores {
		score.UpdatedAt = now
	}
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "criterion_id"}, {Name: "team_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expert_id", "updated_at"}),
	}).Create(&scores)
	return result.Error
}

func (r *ScoreRepository) GetScores(criterionIds []int, teamId *int) ([]*Score, error) {
	scores := make([]*Score, 0)
	query := r.DB.Where("criterion_id in ?", criterionIds)
	if teamId != nil {
		query = query.Where("team_id = ?", *teamId)
	}
	result := query.Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

type TeamTotal struct {
	TeamId int
	Total  float64
}

// GetLiveTotals returns the raw per-team score sums for an event. This is the
// provisional scoreboard view during the scoring window, not the published result.
func (r *ScoreRepository) GetLiveTotals(eventId int) ([]*TeamTotal, error) {
	totals := make([]*TeamTotal, 0)
	result := r.DB.Raw(`
		SELECT teams.id AS team_id, COALESCE(SUM(scores.value), 0) AS total
		FROM skillpass.teams
		LEFT JOIN skillpass.scores ON scores.team_id = teams.id
		WHERE teams.event_id = ?
		GROUP BY teams.id
		ORDER BY total DESC
	`, eventId).Scan(&totals)
	if result.Error != nil {
		return nil, result.Error
	}
	return totals, nil
}
