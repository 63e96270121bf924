package controller

import (
	"skillpass/repository"
	"skillpass/service"
	"skillpass/utils"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScoreController struct {
	scoreService *service.ScoreService
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{
		scoreService: service.NewScoreService(db),
	}
}

var expertRoles = []repository.UserRole{repository.RoleAdmin, repository.RoleOrganizer, repository.RoleExpert}

func setupScoreController(db *gorm.DB) []RouteInfo {
	e := NewScoreController(db)
	basePath := "/events/:event_id/scores"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getScoresHandler(), Authenticated: true, RequiredRoles: expertRoles},
		{Method: "POST", Path: "", HandlerFunc: e.upsertScoresHandler(), Authenticated: true, RequiredRoles: expertRoles},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type ScoreWrite struct {
	CriterionId int     `json:"criterion_id" binding:"required"`
	TeamId      int     `json:"team_id" binding:"required"`
	Value       float64 `json:"value"`
}

type ScoreBatch struct {
	Scores []*ScoreWrite `json:"scores" binding:"required"`
}

type ScoreResponse struct {
	CriterionId int       `json:"criterion_id"`
	TeamId      int       `json:"team_id"`
	Value       float64   `json:"value"`
	ExpertId    int       `json:"expert_id"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toScoreResponse(score *repository.Score) *ScoreResponse {
	return &ScoreResponse{
		CriterionId: score.CriterionId,
		TeamId:      score.TeamId,
		Value:       score.Value,
		ExpertId:    score.ExpertId,
		UpdatedAt:   score.UpdatedAt,
	}
}

// @id GetScores
// @Description Fetches raw score rows for the event, optionally filtered by team
// @Tags score
// @Produce json
// @Param event_id path int true "Event Id"
// @Param team_id query int false "Team Id"
// @Success 200 {array} ScoreResponse
// @Router /events/{event_id}/scores [get]
func (e *ScoreController) getScoresHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		var teamId *int
		if teamIdQuery := c.Query("team_id"); teamIdQuery != "" {
			id, err := strconv.Atoi(teamIdQuery)
			if err != nil {
				c.JSON(400, gin.H{"error": "Invalid team id"})
				return
			}
			teamId = &id
		}
		scores, err := e.scoreService.GetScoresForEvent(eventId, teamId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(scores, toScoreResponse))
	}
}

// @id UpsertScores
// @Description Writes a batch of scores. Existing (criterion, team) rows are overwritten.
// @Tags score
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param scores body ScoreBatch true "Scores to write"
// @Success 200 {object} map[string]int
// @Router /events/{event_id}/scores [post]
func (e *ScoreController) upsertScoresHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		var body ScoreBatch
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if len(body.Scores) == 0 {
			c.JSON(200, gin.H{"saved": 0})
			return
		}
		scores := utils.Map(body.Scores, func(write *ScoreWrite) *repository.Score {
			return &repository.Score{
				CriterionId: write.CriterionId,
				TeamId:      write.TeamId,
				Value:       write.Value,
			}
		})
		saved, err := e.scoreService.UpsertScores(eventId, currentUserId(c), scores)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"saved": saved})
	}
}
