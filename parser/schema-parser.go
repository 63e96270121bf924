package parser

import (
	"errors"
	"io"
	"regexp"
	dbModel "skillpass/repository"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Assessment sheet layout: a fixed 5-row header block followed by module,
// sub-criterion and criterion rows distinguished by column position.
const (
	headerRowCount = 5

	colCode               = 0
	colName               = 1
	colType               = 2
	colAspect             = 3
	colJudgementScore     = 4
	colVerificationMethod = 5
	colSkillGroupNumber   = 7
	colMaxScore           = 8

	// Judgement scale options must immediately follow their criterion row.
	maxOptionLookahead = 4

	skillGroupSheetName = "Sections of the standard"
)

var ErrNoModules = errors.New("no assessment modules found in workbook")

var (
	moduleCodePattern       = regexp.MustCompile(`^[A-Z]$`)
	subCriterionCodePattern = regexp.MustCompile(`^\d+$`)
)

type ParsedCriterion struct {
	Code               string
	SubCriterionCode   string
	SubCriterionName   string
	Type               dbModel.CriterionType
	Description        string
	VerificationMethod string
	SkillGroupNumber   int
	MaxScore           float64
	JudgementOptions   dbModel.JudgementOptions
}

type ParsedModule struct {
	Code     string
	Name     string
	Criteria []*ParsedCriterion
}

type ParsedSubCriterion struct {
	Code     string
	Name     string
	Criteria []*ParsedCriterion
}

type ParsedSkillGroup struct {
	Number int
	Name   string
	NameEn string
}

type ParsedSchema struct {
	Modules     []*ParsedModule
	SkillGroups []*ParsedSkillGroup
}

// SubCriteria groups the module's flat criterion list by the sub-criterion the
// rows were tagged with. First occurrence order is display order.
func (m *ParsedModule) SubCriteria() []*ParsedSubCriterion {
	subCriteria := make([]*ParsedSubCriterion, 0)
	byKey := make(map[string]*ParsedSubCriterion)
	for _, criterion := range m.Criteria {
		key := criterion.SubCriterionCode + "-" + criterion.SubCriterionName
		sub, ok := byKey[key]
		if !ok {
			sub = &ParsedSubCriterion{Code: criterion.SubCriterionCode, Name: criterion.SubCriterionName}
			byKey[key] = sub
			subCriteria = append(subCriteria, sub)
		}
		sub.Criteria = append(sub.Criteria, criterion)
	}
	return subCriteria
}

// subCriterionRef is the "current sub-criterion" context that tags criterion
// rows until the next sub-criterion or module row.
type subCriterionRef struct {
	Code string
	Name string
}

type parseState struct {
	current *ParsedModule
	sub     subCriterionRef
}

func (s *parseState) startModule(modules []*ParsedModule, code string, name string) []*ParsedModule {
	if s.current != nil {
		modules = append(modules, s.current)
	}
	s.current = &ParsedModule{Code: code, Name: name}
	s.sub = subCriterionRef{}
	return modules
}

func (s *parseState) finish(modules []*ParsedModule) []*ParsedModule {
	if s.current != nil {
		modules = append(modules, s.current)
	}
	return modules
}

// ParseReader reads an xlsx workbook and builds the rubric tree.
func ParseReader(r io.Reader) (*ParsedSchema, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseWorkbook(f)
}

func ParseWorkbook(f *excelize.File) (*ParsedSchema, error) {
	rows, err := f.GetRows(pickAssessmentSheet(f))
	if err != nil {
		return nil, err
	}

	modules := make([]*ParsedModule, 0)
	state := parseState{}
	for i := headerRowCount; i < len(rows); i++ {
		row := rows[i]
		code := strings.TrimSpace(cell(row, colCode))
		name := strings.TrimSpace(cell(row, colName))
		criterionType := strings.ToUpper(strings.TrimSpace(cell(row, colType)))

		switch {
		case criterionType == "" && name != "" && moduleCodePattern.MatchString(code):
			modules = state.startModule(modules, code, name)
		case criterionType == "" && name != "" && subCriterionCodePattern.MatchString(code):
			state.sub = subCriterionRef{Code: code, Name: name}
		case criterionType == string(dbModel.CriterionTypeMeasurement) || criterionType == string(dbModel.CriterionTypeJudgement):
			// criterion rows before the first module row are discarded
			if state.current == nil {
				continue
			}
			criterion := &ParsedCriterion{
				Code:               state.current.Code + state.sub.Code,
				SubCriterionCode:   state.sub.Code,
				SubCriterionName:   state.sub.Name,
				Type:               dbModel.CriterionType(criterionType),
				Description:        firstNonEmpty(strings.TrimSpace(cell(row, colAspect)), name),
				VerificationMethod: strings.TrimSpace(cell(row, colVerificationMethod)),
				SkillGroupNumber:   parseIntOr(cell(row, colSkillGroupNumber), 0),
				MaxScore:           parseFloatOr(cell(row, colMaxScore), 0),
			}
			if criterion.Type == dbModel.CriterionTypeJudgement {
				criterion.JudgementOptions = lookaheadJudgementOptions(rows, i)
			}
			state.current.Criteria = append(state.current.Criteria, criterion)
		}
	}
	modules = state.finish(modules)

	if len(modules) == 0 {
		return nil, ErrNoModules
	}
	return &ParsedSchema{Modules: modules, SkillGroups: parseSkillGroups(f)}, nil
}

// lookaheadJudgementOptions collects the {score, label} rows directly below a
// judgement criterion. The block is contiguous: the first row without both
// cells ends the scan.
func lookaheadJudgementOptions(rows [][]string, criterionRow int) dbModel.JudgementOptions {
	options := make(dbModel.JudgementOptions, 0)
	for j := criterionRow + 1; j < len(rows) && j <= criterionRow+maxOptionLookahead; j++ {
		scoreCell := strings.TrimSpace(cell(rows[j], colJudgementScore))
		label := strings.TrimSpace(cell(rows[j], colVerificationMethod))
		if scoreCell == "" || label == "" {
			break
		}
		if score, err := strconv.ParseFloat(scoreCell, 64); err == nil {
			options = append(options, dbModel.JudgementOption{Score: score, Label: label})
		}
	}
	return options
}

func pickAssessmentSheet(f *excelize.File) string {
	sheets := f.GetSheetList()
	for _, sheet := range sheets {
		lower := strings.ToLower(sheet)
		if strings.Contains(lower, "assessment") || strings.Contains(lower, "aspect") {
			return sheet
		}
	}
	return sheets[0]
}

func parseSkillGroups(f *excelize.File) []*ParsedSkillGroup {
	groups := make([]*ParsedSkillGroup, 0)
	rows, err := f.GetRows(skillGroupSheetName)
	if err == nil {
		// row 0 is the header
		for i := 1; i < len(rows); i++ {
			number := strings.TrimSpace(cell(rows[i], 0))
			name := strings.TrimSpace(cell(rows[i], 1))
			if number == "" || name == "" {
				continue
			}
			groups = append(groups, &ParsedSkillGroup{
				Number: parseIntOr(number, i),
				Name:   name,
				NameEn: strings.TrimSpace(cell(rows[i], 2)),
			})
		}
	}
	if len(groups) == 0 {
		return defaultSkillGroups()
	}
	return groups
}

// defaultSkillGroups is the fixed fallback taxonomy used when the workbook has
// no sections sheet. The wording is part of the passport output contract.
func defaultSkillGroups() []*ParsedSkillGroup {
	return []*ParsedSkillGroup{
		{Number: 1, Name: "Организация рабочего процесса", NameEn: "Workflow organization"},
		{Number: 2, Name: "Командное взаимодействие и коммуникация", NameEn: "Team interaction and communication"},
		{Number: 3, Name: "Менеджмент", NameEn: "Management"},
		{Number: 4, Name: "Аналитика данных", NameEn: "Data Analytics"},
		{Number: 5, Name: "Экономико-математическое моделирование", NameEn: "Economic and mathematical modeling"},
		{Number: 6, Name: "Оптимизация, автоматизация и роботизация", NameEn: "Optimization, automation and robotization"},
		{Number: 7, Name: "Основы механики, электроники и робототехники", NameEn: "Fundamentals of mechanics, electronics and robotics"},
		{Number: 8, Name: "Моделирование и симуляция производственных процессов", NameEn: "Modeling and simulation of production processes"},
		{Number: 9, Name: "Высокотехнологические навыки", NameEn: "Hi-tech skills"},
	}
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return row[index]
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func parseIntOr(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseFloatOr(value string, fallback float64) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return parsed
}
