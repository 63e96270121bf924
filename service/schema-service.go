package service

import (
	"io"
	"skillpass/metrics"
	"skillpass/parser"
	"skillpass/repository"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type SchemaService struct {
	db               *gorm.DB
	schemaRepository *repository.SchemaRepository
	eventRepository  *repository.EventRepository
}

func NewSchemaService(db *gorm.DB) *SchemaService {
	return &SchemaService{
		db:               db,
		schemaRepository: repository.NewSchemaRepository(db),
		eventRepository:  repository.NewEventRepository(db),
	}
}

func (e *SchemaService) GetSchemaForEvent(eventId int) (*repository.AssessmentSchema, error) {
	return e.schemaRepository.GetSchemaForEvent(eventId)
}

// ImportSchema parses the uploaded workbook and replaces the event's rubric.
// The delete of the previous schema and the insert of the new tree happen in
// one transaction, so a failed import leaves the prior rubric untouched.
func (e *SchemaService) ImportSchema(eventId int, fileName string, file io.Reader) (*repository.AssessmentSchema, error) {
	_, err := e.eventRepository.GetEventById(eventId)
	if err != nil {
		return nil, err
	}

	t := time.Now()
	parsed, err := parser.ParseReader(file)
	metrics.SchemaParseDuration.Observe(time.Since(t).Seconds())
	if err != nil {
		metrics.SchemaImportsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("event_id = ?", eventId).Delete(&repository.AssessmentSchema{})
		if result.Error != nil {
			return result.Error
		}

		schema := &repository.AssessmentSchema{
			EventId:       eventId,
			Name:          fileName,
			TotalMaxScore: totalMaxScore(parsed),
		}
		if err := tx.Create(schema).Error; err != nil {
			return err
		}

		groupIdByNumber := make(map[int]int)
		groupMaxScores := skillGroupMaxScores(parsed)
		for _, parsedGroup := range parsed.SkillGroups {
			group := &repository.SkillGroup{
				SchemaId: schema.Id,
				Number:   parsedGroup.Number,
				Name:     parsedGroup.Name,
				NameEn:   parsedGroup.NameEn,
				MaxScore: groupMaxScores[parsedGroup.Number],
			}
			if err := tx.Create(group).Error; err != nil {
				return err
			}
			groupIdByNumber[group.Number] = group.Id
		}

		for moduleOrder, parsedModule := range parsed.Modules {
			module := &repository.AssessmentModule{
				SchemaId:  schema.Id,
				Code:      parsedModule.Code,
				Name:      parsedModule.Name,
				MaxScore:  moduleMaxScore(parsedModule),
				SortOrder: moduleOrder,
			}
			if err := tx.Create(module).Error; err != nil {
				return err
			}

			for subOrder, parsedSub := range parsedModule.SubCriteria() {
				subCriterion := &repository.SubCriterion{
					ModuleId:  module.Id,
					Code:      parsedSub.Code,
					Name:      parsedSub.Name,
					SortOrder: subOrder,
				}
				if subCriterion.Code == "" {
					subCriterion.Code = strconv.Itoa(subOrder + 1)
				}
				if subCriterion.Name == "" {
					subCriterion.Name = "Критерий"
				}
				if err := tx.Create(subCriterion).Error; err != nil {
					return err
				}

				for criterionOrder, parsedCriterion := range parsedSub.Criteria {
					criterion := &repository.Criterion{
						SubCriterionId:     subCriterion.Id,
						Code:               parsedCriterion.Code,
						Type:               parsedCriterion.Type,
						Description:        parsedCriterion.Description,
						VerificationMethod: parsedCriterion.VerificationMethod,
						MaxScore:           parsedCriterion.MaxScore,
						JudgementOptions:   parsedCriterion.JudgementOptions,
						SortOrder:          criterionOrder,
					}
					if groupId, ok := groupIdByNumber[parsedCriterion.SkillGroupNumber]; ok {
						criterion.SkillGroupId = &groupId
					}
					if err := tx.Create(criterion).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		metrics.SchemaImportsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	metrics.SchemaImportsTotal.WithLabelValues("imported").Inc()
	return e.schemaRepository.GetSchemaForEvent(eventId)
}

func moduleMaxScore(module *parser.ParsedModule) float64 {
	sum := 0.0
	for _, criterion := range module.Criteria {
		sum += criterion.MaxScore
	}
	return sum
}

func totalMaxScore(parsed *parser.ParsedSchema) float64 {
	sum := 0.0
	for _, module := range parsed.Modules {
		sum += moduleMaxScore(module)
	}
	return sum
}

// skillGroupMaxScores recomputes each group's max as the sum over all criteria
// referencing it, across every module. Derived, never incrementally patched.
func skillGroupMaxScores(parsed *parser.ParsedSchema) map[int]float64 {
	maxScores := make(map[int]float64)
	for _, module := range parsed.Modules {
		for _, criterion := range module.Criteria {
			maxScores[criterion.SkillGroupNumber] += criterion.MaxScore
		}
	}
	return maxScores
}
