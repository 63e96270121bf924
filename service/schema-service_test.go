package service

import (
	"skillpass/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportSchemaBuildsTree(t *testing.T) {
	defer TearDown()
	event := SetUp()
	schemaService := NewSchemaService(db)

	schema, err := schemaService.ImportSchema(event.Id, "rubric.xlsx", rubricWorkbook(t))
	require.NoError(t, err)

	assert.Equal(t, "rubric.xlsx", schema.Name)
	assert.Equal(t, 30.0, schema.TotalMaxScore)
	require.Len(t, schema.Modules, 2)
	assert.Equal(t, "A", schema.Modules[0].Code)
	assert.Equal(t, 20.0, schema.Modules[0].MaxScore)
	assert.Equal(t, "B", schema.Modules[1].Code)
	assert.Equal(t, 10.0, schema.Modules[1].MaxScore)

	require.Len(t, schema.Modules[0].SubCriteria, 1)
	require.Len(t, schema.Modules[0].SubCriteria[0].Criteria, 2)
	criterion := schema.Modules[0].SubCriteria[0].Criteria[0]
	assert.Equal(t, "A1", criterion.Code)
	assert.Equal(t, repository.CriterionTypeMeasurement, criterion.Type)
	require.NotNil(t, criterion.SkillGroup)
	assert.Equal(t, 1, criterion.SkillGroup.Number)

	// no sections sheet, so the default taxonomy applies
	require.Len(t, schema.SkillGroups, 9)
	// group maxes are sums over the criteria that reference them
	assert.Equal(t, 20.0, schema.SkillGroups[0].MaxScore)
	assert.Equal(t, 10.0, schema.SkillGroups[1].MaxScore)
	assert.Equal(t, 0.0, schema.SkillGroups[2].MaxScore)
}

func TestImportSchemaReplacesPreviousSchema(t *testing.T) {
	defer TearDown()
	event := SetUp()
	schemaService := NewSchemaService(db)

	first, err := schemaService.ImportSchema(event.Id, "first.xlsx", rubricWorkbook(t))
	require.NoError(t, err)
	second, err := schemaService.ImportSchema(event.Id, "second.xlsx", rubricWorkbook(t))
	require.NoError(t, err)

	assert.NotEqual(t, first.Id, second.Id)
	assert.Equal(t, "second.xlsx", second.Name)

	var schemaCount int64
	db.Model(&repository.AssessmentSchema{}).Where("event_id = ?", event.Id).Count(&schemaCount)
	assert.Equal(t, int64(1), schemaCount)

	// the old tree is gone, only the three re-imported criteria remain
	var criterionCount int64
	db.Model(&repository.Criterion{}).Count(&criterionCount)
	assert.Equal(t, int64(3), criterionCount)
}

func TestImportSchemaRejectsWorkbookWithoutModules(t *testing.T) {
	defer TearDown()
	event := SetUp()
	schemaService := NewSchemaService(db)

	_, err := schemaService.ImportSchema(event.Id, "first.xlsx", rubricWorkbook(t))
	require.NoError(t, err)

	_, err = schemaService.ImportSchema(event.Id, "empty.xlsx", emptyWorkbook(t))
	require.Error(t, err)

	// the failed import left the previous schema in place
	schema, err := schemaService.GetSchemaForEvent(event.Id)
	require.NoError(t, err)
	assert.Equal(t, "first.xlsx", schema.Name)
}

func TestImportSchemaUnknownEvent(t *testing.T) {
	defer TearDown()
	schemaService := NewSchemaService(db)

	_, err := schemaService.ImportSchema(99999, "rubric.xlsx", rubricWorkbook(t))
	assert.Error(t, err)
}
