package repository

import (
	"gorm.io/gorm"
)

type CriterionType string

const (
	// Measurement criteria are binary: the only valid scores are 0 and the max score.
	CriterionTypeMeasurement CriterionType = "M"
	// Judgement criteria carry a graduated scale enumerated in JudgementOptions.
	CriterionTypeJudgement CriterionType = "J"
)

type JudgementOption struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

type JudgementOptions []JudgementOption

// AssessmentSchema is the imported rubric for one event. It is replaced
// wholesale on re-import and never mutated in place.
type AssessmentSchema struct {
	Id            int     `gorm:"primaryKey"`
	EventId       int     `gorm:"not null;uniqueIndex"`
	Name          string  `gorm:"not null"`
	TotalMaxScore float64 `gorm:"not null;default:0"`

	Modules     []*AssessmentModule `gorm:"foreignKey:SchemaId;constraint:OnDelete:CASCADE"`
	SkillGroups []*SkillGroup       `gorm:"foreignKey:SchemaId;constraint:OnDelete:CASCADE"`
}

type AssessmentModule struct {
	Id        int     `gorm:"primaryKey"`
	SchemaId  int     `gorm:"not null"`
	Code      string  `gorm:"not null"`
	Name      string  `gorm:"not null"`
	MaxScore  float64 `gorm:"not null;default:0"`
	SortOrder int     `gorm:"not null"`

	SubCriteria []*SubCriterion `gorm:"foreignKey:ModuleId;constraint:OnDelete:CASCADE"`
}

type SubCriterion struct {
	Id        int    `gorm:"primaryKey"`
	ModuleId  int    `gorm:"not null"`
	Code      string `gorm:"not null"`
	Name      string `gorm:"not null"`
	SortOrder int    `gorm:"not null"`

	Criteria []*Criterion `gorm:"foreignKey:SubCriterionId;constraint:OnDelete:CASCADE"`
}

type Criterion struct {
	Id                 int              `gorm:"primaryKey"`
	SubCriterionId     int              `gorm:"not null"`
	SkillGroupId       *int             `gorm:"null"`
	Code               string           `gorm:"not null"`
	Type               CriterionType    `gorm:"not null;type:skillpass.criterion_type"`
	Description        string           `gorm:"not null"`
	VerificationMethod string           `gorm:"null"`
	MaxScore           float64          `gorm:"not null;default:0"`
	JudgementOptions   JudgementOptions `gorm:"serializer:json"`
	SortOrder          int              `gorm:"not null"`

	SkillGroup *SkillGroup `gorm:"foreignKey:SkillGroupId"`
}

// ValidValues enumerates the scores the entry UI offers for this criterion.
// Judgement criteria without parsed options fall back to integers 0..MaxScore.
func (c *Criterion) ValidValues() []float64 {
	if c.Type == CriterionTypeMeasurement {
		return []float64{0, c.MaxScore}
	}
	if len(c.JudgementOptions) > 0 {
		values := make([]float64, len(c.JudgementOptions))
		for i, option := range c.JudgementOptions {
			values[i] = option.Score
		}
		return values
	}
	values := make([]float64, 0, int(c.MaxScore)+1)
	for v := 0; float64(v) <= c.MaxScore; v++ {
		values = append(values, float64(v))
	}
	return values
}

// SkillGroup is an orthogonal competency taxonomy. Number is the stable key
// criteria rows reference, not the database id.
type SkillGroup struct {
	Id       int     `gorm:"primaryKey"`
	SchemaId int     `gorm:"not null"`
	Number   int     `gorm:"not null"`
	Name     string  `gorm:"not null"`
	NameEn   string  `gorm:"null"`
	MaxScore float64 `gorm:"not null;default:0"`

	Criteria []*Criterion `gorm:"foreignKey:SkillGroupId"`
}

type SchemaRepository struct {
	DB *gorm.DB
}

func NewSchemaRepository(db *gorm.DB) *SchemaRepository {
	return &SchemaRepository{DB: db}
}

// GetSchemaForEvent loads the full rubric tree in display order.
func (r *SchemaRepository) GetSchemaForEvent(eventId int) (*AssessmentSchema, error) {
	var schema AssessmentSchema
	result := r.DB.
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Modules.SubCriteria", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Modules.SubCriteria.Criteria", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Modules.SubCriteria.Criteria.SkillGroup").
		Preload("SkillGroups", func(db *gorm.DB) *gorm.DB { return db.Order("number") }).
		First(&schema, "event_id = ?", eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &schema, nil
}

func (r *SchemaRepository) HasSchemaForEvent(eventId int) (bool, error) {
	var count int64
	result := r.DB.Model(&AssessmentSchema{}).Where("event_id = ?", eventId).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *SchemaRepository) CriterionIdsForEvent(eventId int) ([]int, error) {
	ids := make([]int, 0)
	result := r.DB.Raw(`
		SELECT criteria.id
		FROM skillpass.criteria
		JOIN skillpass.sub_criteria ON sub_criteria.id = criteria.sub_criterion_id
		JOIN skillpass.assessment_modules ON assessment_modules.id = sub_criteria.module_id
		JOIN skillpass.assessment_schemas ON assessment_schemas.id = assessment_modules.schema_id
		WHERE assessment_schemas.event_id = ?
	`, eventId).Scan(&ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}
