package service

import (
	"errors"
	"skillpass/metrics"
	"skillpass/repository"
	"skillpass/scoring"
	"skillpass/utils"
	"time"

	"gorm.io/gorm"
)

var ErrNoSchema = errors.New("event has no assessment schema")

type PublishService struct {
	db                 *gorm.DB
	eventRepository    *repository.EventRepository
	schemaRepository   *repository.SchemaRepository
	passportRepository *repository.PassportRepository
}

func NewPublishService(db *gorm.DB) *PublishService {
	return &PublishService{
		db:                 db,
		eventRepository:    repository.NewEventRepository(db),
		schemaRepository:   repository.NewSchemaRepository(db),
		passportRepository: repository.NewPassportRepository(db),
	}
}

// PublishResults aggregates all raw scores for the event, ranks the teams and
// writes one passport snapshot per team member. Everything is committed in a
// single transaction together with the status flip to RESULTS_PUBLISHED, so a
// failure publishes nothing. Re-running overwrites the previous snapshots.
func (e *PublishService) PublishResults(eventId int) (int, error) {
	event, err := e.eventRepository.GetEventById(eventId, "Teams.Members", "Teams.Scores")
	if err != nil {
		return 0, err
	}
	schema, err := e.schemaRepository.GetSchemaForEvent(eventId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNoSchema
		}
		return 0, err
	}

	t := time.Now()
	results := scoring.ComputeEventResults(schema, event.Teams)
	metrics.PublishDuration.WithLabelValues("aggregate").Set(time.Since(t).Seconds())

	teamById := make(map[int]*repository.Team)
	for _, team := range event.Teams {
		teamById[team.Id] = team
	}

	t = time.Now()
	publishedAt := time.Now()
	passportCount := 0
	err = e.db.Transaction(func(tx *gorm.DB) error {
		for _, result := range results {
			updates := tx.Model(&repository.Team{}).Where("id = ?", result.TeamId).
				Updates(map[string]interface{}{"rank": result.Rank, "total_score": result.TotalScore})
			if updates.Error != nil {
				return updates.Error
			}

			for _, member := range teamById[result.TeamId].Members {
				teamId := result.TeamId
				passport := &repository.SkillPassport{
					UserId:           member.UserId,
					EventId:          eventId,
					TeamId:           &teamId,
					TotalScore:       result.TotalScore,
					ModuleScores:     utils.Map(result.ModuleScores, toModuleScoreEntry),
					SkillGroupScores: utils.Map(result.SkillGroupScores, toSkillGroupScoreEntry),
					PublishedAt:      publishedAt,
				}
				if err := e.passportRepository.Upsert(tx, passport); err != nil {
					return err
				}
				passportCount++
			}
		}
		return tx.Model(&repository.Event{}).Where("id = ?", eventId).
			Update("status", repository.EventStatusResultsPublished).Error
	})
	metrics.PublishDuration.WithLabelValues("persist").Set(time.Since(t).Seconds())
	if err != nil {
		return 0, err
	}
	metrics.PassportsWrittenTotal.Add(float64(passportCount))
	return passportCount, nil
}

func toModuleScoreEntry(score scoring.ModuleScore) repository.ModuleScoreEntry {
	return repository.ModuleScoreEntry{
		Code:     score.Code,
		Name:     score.Name,
		Score:    score.Score,
		MaxScore: score.MaxScore,
	}
}

func toSkillGroupScoreEntry(score scoring.SkillGroupScore) repository.SkillGroupScoreEntry {
	return repository.SkillGroupScoreEntry{
		Number:   score.Number,
		Name:     score.Name,
		NameEn:   score.NameEn,
		Score:    score.Score,
		MaxScore: score.MaxScore,
	}
}
