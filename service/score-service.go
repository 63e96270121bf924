package service

import (
	"context"
	"encoding/json"
	"log"
	"skillpass/config"
	"skillpass/metrics"
	"skillpass/repository"
	"sync"

	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

type ScoreService struct {
	scoreRepository  *repository.ScoreRepository
	schemaRepository *repository.SchemaRepository

	mu      sync.Mutex
	writers map[int]*kafka.Writer
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{
		scoreRepository:  repository.NewScoreRepository(db),
		schemaRepository: repository.NewSchemaRepository(db),
		writers:          make(map[int]*kafka.Writer),
	}
}

// UpsertScores writes a batch of expert scores for one event. Last write wins
// per (criterion, team); the expert on the row is whoever wrote last.
func (e *ScoreService) UpsertScores(eventId int, expertId int, scores []*repository.Score) (int, error) {
	for _, score := range scores {
		score.ExpertId = expertId
	}
	err := e.scoreRepository.UpsertScores(scores)
	if err != nil {
		return 0, err
	}
	metrics.ScoresUpsertedTotal.Add(float64(len(scores)))
	go e.publishScoreUpdates(eventId, scores)
	return len(scores), nil
}

// GetScoresForEvent returns score rows for the event's criteria, optionally
// filtered to one team.
func (e *ScoreService) GetScoresForEvent(eventId int, teamId *int) ([]*repository.Score, error) {
	criterionIds, err := e.schemaRepository.CriterionIdsForEvent(eventId)
	if err != nil {
		return nil, err
	}
	if len(criterionIds) == 0 {
		return []*repository.Score{}, nil
	}
	return e.scoreRepository.GetScores(criterionIds, teamId)
}

func (e *ScoreService) GetLiveTotals(eventId int) ([]*repository.TeamTotal, error) {
	return e.scoreRepository.GetLiveTotals(eventId)
}

// publishScoreUpdates mirrors score writes to the event's kafka topic for
// external consumers. Best effort: a missing broker only logs.
func (e *ScoreService) publishScoreUpdates(eventId int, scores []*repository.Score) {
	if config.Env().KafkaBroker == "" {
		return
	}
	writer, err := e.getWriter(eventId)
	if err != nil {
		log.Printf("score feed unavailable for event %d: %v", eventId, err)
		return
	}
	messages := make([]kafka.Message, 0, len(scores))
	for _, score := range scores {
		payload, err := json.Marshal(score)
		if err != nil {
			continue
		}
		messages = append(messages, kafka.Message{Value: payload})
	}
	if err := writer.WriteMessages(context.Background(), messages...); err != nil {
		log.Printf("failed to publish score updates for event %d: %v", eventId, err)
	}
}

func (e *ScoreService) getWriter(eventId int) (*kafka.Writer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if writer, ok := e.writers[eventId]; ok {
		return writer, nil
	}
	writer, err := config.GetScoreFeedWriter(eventId)
	if err != nil {
		return nil, err
	}
	e.writers[eventId] = writer
	return writer, nil
}
