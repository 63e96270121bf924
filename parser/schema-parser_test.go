package parser

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"skillpass/repository"
)

var headerRows = [][]interface{}{
	{"Code", "Name", "Type", "Aspect", "Score", "Verification", "", "Section", "Max"},
	{}, {}, {}, {},
}

func newWorkbook(t *testing.T, sheet string, dataRows [][]interface{}) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	rows := append(append([][]interface{}{}, headerRows...), dataRows...)
	for i, row := range rows {
		require.NoError(t, f.SetSheetRow(sheet, "A"+strconv.Itoa(i+1), &row))
	}
	return f
}

func TestParseMinimalSchema(t *testing.T) {
	f := newWorkbook(t, "Assessment criteria", [][]interface{}{
		{"A", "Process organization", ""},
		{"1", "Sub 1", ""},
		{"", "Workplace is tidy", "M", "Workplace is kept tidy during the task", "", "Visual check", "", "3", "10"},
	})
	schema, err := ParseWorkbook(f)
	require.NoError(t, err)

	require.Len(t, schema.Modules, 1)
	module := schema.Modules[0]
	assert.Equal(t, "A", module.Code)
	assert.Equal(t, "Process organization", module.Name)

	require.Len(t, module.Criteria, 1)
	criterion := module.Criteria[0]
	assert.Equal(t, "A1", criterion.Code)
	assert.Equal(t, "1", criterion.SubCriterionCode)
	assert.Equal(t, "Sub 1", criterion.SubCriterionName)
	assert.Equal(t, repository.CriterionTypeMeasurement, criterion.Type)
	assert.Equal(t, "Workplace is kept tidy during the task", criterion.Description)
	assert.Equal(t, "Visual check", criterion.VerificationMethod)
	assert.Equal(t, 3, criterion.SkillGroupNumber)
	assert.Equal(t, 10.0, criterion.MaxScore)
	assert.Empty(t, criterion.JudgementOptions)
}

func TestParseReaderRoundTrip(t *testing.T) {
	f := newWorkbook(t, "Assessment criteria", [][]interface{}{
		{"A", "Module", ""},
		{"1", "Sub", ""},
		{"", "Criterion", "M", "", "", "", "", "1", "2"},
	})
	buffer, err := f.WriteToBuffer()
	require.NoError(t, err)

	schema, err := ParseReader(buffer)
	require.NoError(t, err)
	require.Len(t, schema.Modules, 1)
	assert.Equal(t, "A1", schema.Modules[0].Criteria[0].Code)
	// aspect column empty, the name column is the fallback description
	assert.Equal(t, "Criterion", schema.Modules[0].Criteria[0].Description)
}

func TestJudgementOptionsLookahead(t *testing.T) {
	f := newWorkbook(t, "Assessment criteria", [][]interface{}{
		{"A", "Module", ""},
		{"1", "Sub", ""},
		{"", "Presentation quality", "J", "", "", "", "", "2", "3"},
		{"", "", "", "", "0", "Not presented"},
		{"", "", "", "", "1", "Presented with major gaps"},
		{"", "", "", "", "2", "Presented with minor gaps"},
		{"", "", "", "", "3", "Fully presented"},
	})
	schema, err := ParseWorkbook(f)
	require.NoError(t, err)

	criterion := schema.Modules[0].Criteria[0]
	require.Len(t, criterion.JudgementOptions, 4)
	assert.Equal(t, 0.0, criterion.JudgementOptions[0].Score)
	assert.Equal(t, "Not presented", criterion.JudgementOptions[0].Label)
	assert.Equal(t, 3.0, criterion.JudgementOptions[3].Score)
}

func TestJudgementOptionsStopAtGap(t *testing.T) {
	f := newWorkbook(t, "Assessment criteria", [][]interface{}{
		{"A", "Module", ""},
		{"1", "Sub", ""},
		{"", "Presentation quality", "J", "", "", "", "", "2", "3"},
		{"", "", "", "", "0", "Not presented"},
		{"", "", "", "", "1", ""},
		{"", "", "", "", "2", "Unreachable after the gap"},
	})
	schema, err := ParseWorkbook(f)
	require.NoError(t, err)

	criterion := schema.Modules[0].Criteria[0]
	require.Len(t, criterion.JudgementOptions, 1)
	assert.Equal(t, "Not presented", criterion.JudgementOptions[0].Label)
}

func TestCriterionRowsBeforeFirstModuleDiscarded(t *testing.T) {
	f := newWorkbook(t, "Assessment criteria", [][]interface{}{
		{"", "Orphan criterion", "M", "", "", "", "", "1", "5"},
		{"A", "Module", ""},
		{"1", "Sub", ""},
		{"", "Kept criterion", "M", "", "", "", "", "1", "5"},
	})
	schema, err := ParseWorkbook(f)
	require.NoError(t, err)

	require.Len(t, schema.Modules, 1)
	require.Len(t, schema.Modules[0].Criteria, 1)
	assert.Equal(t, "Kept criterion", schema.Modules[0].Criteria[0].Description)
}

func TestWorkbookWithoutModulesIsRejected(t *testing.T) {
	f := newWorkbook(t, "Assessment criteria", [][]interface{}{})
	_, err := ParseWorkbook(f)
	assert.ErrorIs(t, err, ErrNoModules)
}

func TestSubCriteriaGrouping(t *testing.T) {
	f := newWorkbook(t, "Assessment criteria", [][]interface{}{
		{"A", "Module", ""},
		{"1", "First sub", ""},
		{"", "C1", "M", "", "", "", "", "1", "1"},
		{"", "C2", "M", "", "", "", "", "1", "1"},
		{"2", "Second sub", ""},
		{"", "C3", "M", "", "", "", "", "1", "1"},
	})
	schema, err := ParseWorkbook(f)
	require.NoError(t, err)

	subCriteria := schema.Modules[0].SubCriteria()
	require.Len(t, subCriteria, 2)
	assert.Equal(t, "First sub", subCriteria[0].Name)
	assert.Len(t, subCriteria[0].Criteria, 2)
	assert.Equal(t, "Second sub", subCriteria[1].Name)
	assert.Len(t, subCriteria[1].Criteria, 1)
	// criterion codes carry the sub-criterion context active at their row
	assert.Equal(t, "A2", subCriteria[1].Criteria[0].Code)
}

func TestMultipleModules(t *testing.T) {
	f := newWorkbook(t, "Assessment criteria", [][]interface{}{
		{"A", "First module", ""},
		{"1", "Sub", ""},
		{"", "C1", "M", "", "", "", "", "1", "4"},
		{"B", "Second module", ""},
		{"1", "Sub", ""},
		{"", "C2", "M", "", "", "", "", "1", "6"},
	})
	schema, err := ParseWorkbook(f)
	require.NoError(t, err)

	require.Len(t, schema.Modules, 2)
	assert.Equal(t, "A", schema.Modules[0].Code)
	assert.Equal(t, "B", schema.Modules[1].Code)
	assert.Equal(t, "B1", schema.Modules[1].Criteria[0].Code)
}

func TestDefaultSkillGroupsWithoutSectionsSheet(t *testing.T) {
	f := newWorkbook(t, "Assessment criteria", [][]interface{}{
		{"A", "Module", ""},
		{"1", "Sub", ""},
		{"", "C1", "M", "", "", "", "", "1", "1"},
	})
	schema, err := ParseWorkbook(f)
	require.NoError(t, err)

	require.Len(t, schema.SkillGroups, 9)
	assert.Equal(t, 1, schema.SkillGroups[0].Number)
	assert.Equal(t, "Организация рабочего процесса", schema.SkillGroups[0].Name)
	assert.Equal(t, "Workflow organization", schema.SkillGroups[0].NameEn)
	assert.Equal(t, "Hi-tech skills", schema.SkillGroups[8].NameEn)
}

func TestSkillGroupsFromSectionsSheet(t *testing.T) {
	f := newWorkbook(t, "Assessment criteria", [][]interface{}{
		{"A", "Module", ""},
		{"1", "Sub", ""},
		{"", "C1", "M", "", "", "", "", "1", "1"},
	})
	_, err := f.NewSheet("Sections of the standard")
	require.NoError(t, err)
	sections := [][]interface{}{
		{"Number", "Name", "Name (en)"},
		{"1", "Сварка", "Welding"},
		{"2", "Контроль качества", "Quality control"},
	}
	for i, row := range sections {
		require.NoError(t, f.SetSheetRow("Sections of the standard", "A"+strconv.Itoa(i+1), &row))
	}

	schema, err := ParseWorkbook(f)
	require.NoError(t, err)
	require.Len(t, schema.SkillGroups, 2)
	assert.Equal(t, 1, schema.SkillGroups[0].Number)
	assert.Equal(t, "Welding", schema.SkillGroups[0].NameEn)
	assert.Equal(t, "Контроль качества", schema.SkillGroups[1].Name)
}

func TestAssessmentSheetSelection(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Info"))
	_, err := f.NewSheet("Assessment criteria")
	require.NoError(t, err)
	rows := append(append([][]interface{}{}, headerRows...), [][]interface{}{
		{"A", "Module", ""},
		{"1", "Sub", ""},
		{"", "C1", "M", "", "", "", "", "1", "1"},
	}...)
	for i, row := range rows {
		require.NoError(t, f.SetSheetRow("Assessment criteria", "A"+strconv.Itoa(i+1), &row))
	}

	schema, err := ParseWorkbook(f)
	require.NoError(t, err)
	require.Len(t, schema.Modules, 1)
	assert.Equal(t, "A", schema.Modules[0].Code)
}
