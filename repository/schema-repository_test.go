package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasurementValidValues(t *testing.T) {
	criterion := &Criterion{Type: CriterionTypeMeasurement, MaxScore: 10}
	assert.Equal(t, []float64{0, 10}, criterion.ValidValues())
}

func TestJudgementValidValuesFromOptions(t *testing.T) {
	criterion := &Criterion{
		Type:     CriterionTypeJudgement,
		MaxScore: 3,
		JudgementOptions: JudgementOptions{
			{Score: 0, Label: "None"},
			{Score: 1.5, Label: "Partial"},
			{Score: 3, Label: "Full"},
		},
	}
	assert.Equal(t, []float64{0, 1.5, 3}, criterion.ValidValues())
}

func TestJudgementValidValuesWithoutOptionsFallBackToIntegers(t *testing.T) {
	criterion := &Criterion{Type: CriterionTypeJudgement, MaxScore: 3}
	assert.Equal(t, []float64{0, 1, 2, 3}, criterion.ValidValues())
}
