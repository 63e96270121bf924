package controller

import (
	"skillpass/repository"
	"skillpass/service"
	"skillpass/utils"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PassportController struct {
	passportService *service.PassportService
	publishService  *service.PublishService
}

func NewPassportController(db *gorm.DB) *PassportController {
	return &PassportController{
		passportService: service.NewPassportService(db),
		publishService:  service.NewPublishService(db),
	}
}

func setupPassportController(db *gorm.DB) []RouteInfo {
	e := NewPassportController(db)
	routes := []RouteInfo{
		{Method: "POST", Path: "/events/:event_id/publish-results", HandlerFunc: e.publishResultsHandler(), Authenticated: true, RequiredRoles: organizerRoles},
		{Method: "GET", Path: "/events/:event_id/passports", HandlerFunc: e.getEventPassportsHandler(), Authenticated: true, RequiredRoles: organizerRoles},
		{Method: "GET", Path: "/my-passports", HandlerFunc: e.getMyPassportsHandler(), Authenticated: true},
	}
	return routes
}

type PassportResponse struct {
	Id               int                               `json:"id"`
	UserId           int                               `json:"user_id"`
	EventId          int                               `json:"event_id"`
	TeamId           *int                              `json:"team_id,omitempty"`
	TeamName         string                            `json:"team_name,omitempty"`
	TotalScore       float64                           `json:"total_score"`
	ModuleScores     repository.ModuleScoreEntries     `json:"module_scores"`
	SkillGroupScores repository.SkillGroupScoreEntries `json:"skill_group_scores"`
	PublishedAt      time.Time                         `json:"published_at"`
	User             *UserResponse                     `json:"user,omitempty"`
}

func toPassportResponse(passport *repository.SkillPassport) *PassportResponse {
	response := &PassportResponse{
		Id:               passport.Id,
		UserId:           passport.UserId,
		EventId:          passport.EventId,
		TeamId:           passport.TeamId,
		TotalScore:       passport.TotalScore,
		ModuleScores:     passport.ModuleScores,
		SkillGroupScores: passport.SkillGroupScores,
		PublishedAt:      passport.PublishedAt,
	}
	if passport.Team != nil {
		response.TeamName = passport.Team.Name
	}
	if passport.User != nil {
		response.User = toUserResponse(passport.User)
	}
	return response
}

// @id PublishResults
// @Description Aggregates scores, ranks teams and writes a passport snapshot per participant
// @Tags passport
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {object} map[string]int
// @Router /events/{event_id}/publish-results [post]
func (e *PassportController) publishResultsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		passportCount, err := e.publishService.PublishResults(eventId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Event not found"})
			} else if err == service.ErrNoSchema {
				c.JSON(400, gin.H{"error": err.Error()})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, gin.H{"passports_created": passportCount})
	}
}

// @id GetEventPassports
// @Description Fetches all published passports for an event
// @Tags passport
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} PassportResponse
// @Router /events/{event_id}/passports [get]
func (e *PassportController) getEventPassportsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		passports, err := e.passportService.GetPassportsForEvent(eventId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(passports, toPassportResponse))
	}
}

// @id GetMyPassports
// @Description Fetches the authenticated user's passports, newest first
// @Tags passport
// @Produce json
// @Success 200 {array} PassportResponse
// @Router /my-passports [get]
func (e *PassportController) getMyPassportsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		passports, err := e.passportService.GetPassportsForUser(currentUserId(c))
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(passports, toPassportResponse))
	}
}
