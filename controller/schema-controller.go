package controller

import (
	"skillpass/parser"
	"skillpass/repository"
	"skillpass/service"
	"skillpass/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SchemaController struct {
	schemaService *service.SchemaService
}

func NewSchemaController(db *gorm.DB) *SchemaController {
	return &SchemaController{
		schemaService: service.NewSchemaService(db),
	}
}

func setupSchemaController(db *gorm.DB) []RouteInfo {
	e := NewSchemaController(db)
	basePath := "/events/:event_id/schema"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getSchemaHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.importSchemaHandler(), Authenticated: true, RequiredRoles: organizerRoles},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type CriterionResponse struct {
	Id                 int                         `json:"id"`
	Code               string                      `json:"code"`
	Type               repository.CriterionType    `json:"type"`
	Description        string                      `json:"description"`
	VerificationMethod string                      `json:"verification_method,omitempty"`
	MaxScore           float64                     `json:"max_score"`
	JudgementOptions   repository.JudgementOptions `json:"judgement_options,omitempty"`
	ValidValues        []float64                   `json:"valid_values"`
	SkillGroupNumber   *int                        `json:"skill_group_number,omitempty"`
}

type SubCriterionResponse struct {
	Id       int                  `json:"id"`
	Code     string               `json:"code"`
	Name     string               `json:"name"`
	Criteria []*CriterionResponse `json:"criteria"`
}

type ModuleResponse struct {
	Id          int                     `json:"id"`
	Code        string                  `json:"code"`
	Name        string                  `json:"name"`
	MaxScore    float64                 `json:"max_score"`
	SubCriteria []*SubCriterionResponse `json:"sub_criteria"`
}

type SkillGroupResponse struct {
	Id       int     `json:"id"`
	Number   int     `json:"number"`
	Name     string  `json:"name"`
	NameEn   string  `json:"name_en,omitempty"`
	MaxScore float64 `json:"max_score"`
}

type SchemaResponse struct {
	Id            int                   `json:"id"`
	EventId       int                   `json:"event_id"`
	Name          string                `json:"name"`
	TotalMaxScore float64               `json:"total_max_score"`
	Modules       []*ModuleResponse     `json:"modules"`
	SkillGroups   []*SkillGroupResponse `json:"skill_groups"`
}

func toCriterionResponse(criterion *repository.Criterion) *CriterionResponse {
	response := &CriterionResponse{
		Id:                 criterion.Id,
		Code:               criterion.Code,
		Type:               criterion.Type,
		Description:        criterion.Description,
		VerificationMethod: criterion.VerificationMethod,
		MaxScore:           criterion.MaxScore,
		JudgementOptions:   criterion.JudgementOptions,
		ValidValues:        criterion.ValidValues(),
	}
	if criterion.SkillGroup != nil {
		number := criterion.SkillGroup.Number
		response.SkillGroupNumber = &number
	}
	return response
}

func toSubCriterionResponse(subCriterion *repository.SubCriterion) *SubCriterionResponse {
	return &SubCriterionResponse{
		Id:       subCriterion.Id,
		Code:     subCriterion.Code,
		Name:     subCriterion.Name,
		Criteria: utils.Map(subCriterion.Criteria, toCriterionResponse),
	}
}

func toModuleResponse(module *repository.AssessmentModule) *ModuleResponse {
	return &ModuleResponse{
		Id:          module.Id,
		Code:        module.Code,
		Name:        module.Name,
		MaxScore:    module.MaxScore,
		SubCriteria: utils.Map(module.SubCriteria, toSubCriterionResponse),
	}
}

func toSkillGroupResponse(group *repository.SkillGroup) *SkillGroupResponse {
	return &SkillGroupResponse{
		Id:       group.Id,
		Number:   group.Number,
		Name:     group.Name,
		NameEn:   group.NameEn,
		MaxScore: group.MaxScore,
	}
}

func toSchemaResponse(schema *repository.AssessmentSchema) *SchemaResponse {
	return &SchemaResponse{
		Id:            schema.Id,
		EventId:       schema.EventId,
		Name:          schema.Name,
		TotalMaxScore: schema.TotalMaxScore,
		Modules:       utils.Map(schema.Modules, toModuleResponse),
		SkillGroups:   utils.Map(schema.SkillGroups, toSkillGroupResponse),
	}
}

// @id GetSchema
// @Description Fetches the event's assessment schema with the full criteria tree
// @Tags schema
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {object} SchemaResponse
// @Router /events/{event_id}/schema [get]
func (e *SchemaController) getSchemaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		schema, err := e.schemaService.GetSchemaForEvent(eventId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Schema not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toSchemaResponse(schema))
	}
}

// @id ImportSchema
// @Description Parses an uploaded xlsx rubric and replaces the event's schema
// @Tags schema
// @Accept mpfd
// @Produce json
// @Param event_id path int true "Event Id"
// @Param file formData file true "Rubric workbook (xlsx)"
// @Success 201 {object} SchemaResponse
// @Router /events/{event_id}/schema [post]
func (e *SchemaController) importSchemaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(400, gin.H{"error": "Missing file"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		defer utils.Closer(file)()

		schema, err := e.schemaService.ImportSchema(eventId, fileHeader.Filename, file)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Event not found"})
			} else if err == parser.ErrNoModules {
				c.JSON(400, gin.H{"error": "Workbook contains no assessment modules"})
			} else {
				c.JSON(400, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(201, toSchemaResponse(schema))
	}
}
