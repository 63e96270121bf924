package controller

import (
	"skillpass/repository"
	"skillpass/service"
	"skillpass/utils"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TeamController struct {
	teamService *service.TeamService
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{
		teamService: service.NewTeamService(db),
	}
}

func setupTeamController(db *gorm.DB) []RouteInfo {
	e := NewTeamController(db)
	basePath := "/events/:event_id/teams"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getTeamsHandler(), Authenticated: true},
		{Method: "PUT", Path: "", HandlerFunc: e.createTeamHandler(), Authenticated: true, RequiredRoles: organizerRoles},
		{Method: "GET", Path: "/my", HandlerFunc: e.getMyTeamHandler(), Authenticated: true},
		{Method: "GET", Path: "/:team_id", HandlerFunc: e.getTeamHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:team_id", HandlerFunc: e.deleteTeamHandler(), Authenticated: true, RequiredRoles: organizerRoles},
		{Method: "PUT", Path: "/:team_id/members", HandlerFunc: e.addMembersHandler(), Authenticated: true, RequiredRoles: organizerRoles},
		{Method: "DELETE", Path: "/:team_id/members/:user_id", HandlerFunc: e.removeMemberHandler(), Authenticated: true, RequiredRoles: organizerRoles},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type TeamCreate struct {
	Name      string `json:"name" binding:"required"`
	Number    *int   `json:"number"`
	MemberIds []int  `json:"member_ids"`
}

type TeamMembersUpdate struct {
	UserIds []int `json:"user_ids" binding:"required"`
}

type TeamMemberResponse struct {
	UserId int                       `json:"user_id"`
	Role   repository.TeamMemberRole `json:"role"`
	User   *UserResponse             `json:"user,omitempty"`
}

type TeamResponse struct {
	Id         int                   `json:"id"`
	EventId    int                   `json:"event_id"`
	Name       string                `json:"name"`
	Number     *int                  `json:"number,omitempty"`
	Rank       *int                  `json:"rank,omitempty"`
	TotalScore *float64              `json:"total_score,omitempty"`
	Members    []*TeamMemberResponse `json:"members"`
}

func toTeamMemberResponse(member *repository.TeamMember) *TeamMemberResponse {
	response := &TeamMemberResponse{
		UserId: member.UserId,
		Role:   member.Role,
	}
	if member.User != nil {
		response.User = toUserResponse(member.User)
	}
	return response
}

func toTeamResponse(team *repository.Team) *TeamResponse {
	return &TeamResponse{
		Id:         team.Id,
		EventId:    team.EventId,
		Name:       team.Name,
		Number:     team.Number,
		Rank:       team.Rank,
		TotalScore: team.TotalScore,
		Members:    utils.Map(team.Members, toTeamMemberResponse),
	}
}

// @id GetTeams
// @Description Fetches all teams for an event
// @Tags team
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} TeamResponse
// @Router /events/{event_id}/teams [get]
func (e *TeamController) getTeamsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		teams, err := e.teamService.GetTeamsForEvent(eventId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(teams, toTeamResponse))
	}
}

// @id GetMyTeam
// @Description Fetches the authenticated user's team for an event
// @Tags team
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {object} TeamResponse
// @Router /events/{event_id}/teams/my [get]
func (e *TeamController) getMyTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		team, err := e.teamService.GetTeamForUser(eventId, currentUserId(c))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Team not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toTeamResponse(team))
	}
}

// @id CreateTeam
// @Description Creates a team. The first member becomes the captain.
// @Tags team
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param team body TeamCreate true "Team to create"
// @Success 201 {object} TeamResponse
// @Router /events/{event_id}/teams [put]
func (e *TeamController) createTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		var body TeamCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		team, err := e.teamService.CreateTeam(&repository.Team{
			EventId: eventId,
			Name:    body.Name,
			Number:  body.Number,
		}, body.MemberIds)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toTeamResponse(team))
	}
}

// @id GetTeam
// @Description Fetches one team
// @Tags team
// @Produce json
// @Param event_id path int true "Event Id"
// @Param team_id path int true "Team Id"
// @Success 200 {object} TeamResponse
// @Router /events/{event_id}/teams/{team_id} [get]
func (e *TeamController) getTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid team id"})
			return
		}
		team, err := e.teamService.GetTeamById(teamId, "Members.User")
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Team not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toTeamResponse(team))
	}
}

// @id DeleteTeam
// @Description Deletes a team
// @Tags team
// @Param event_id path int true "Event Id"
// @Param team_id path int true "Team Id"
// @Success 204
// @Router /events/{event_id}/teams/{team_id} [delete]
func (e *TeamController) deleteTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid team id"})
			return
		}
		err = e.teamService.DeleteTeam(teamId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Team not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.Status(204)
	}
}

// @id AddTeamMembers
// @Description Adds users to a team
// @Tags team
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param team_id path int true "Team Id"
// @Param members body TeamMembersUpdate true "Users to add"
// @Success 200 {object} TeamResponse
// @Router /events/{event_id}/teams/{team_id}/members [put]
func (e *TeamController) addMembersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid team id"})
			return
		}
		var body TeamMembersUpdate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		team, err := e.teamService.AddMembers(teamId, body.UserIds)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Team not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toTeamResponse(team))
	}
}

// @id RemoveTeamMember
// @Description Removes a user from a team
// @Tags team
// @Param event_id path int true "Event Id"
// @Param team_id path int true "Team Id"
// @Param user_id path int true "User Id"
// @Success 204
// @Router /events/{event_id}/teams/{team_id}/members/{user_id} [delete]
func (e *TeamController) removeMemberHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid team id"})
			return
		}
		userId, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid user id"})
			return
		}
		if err := e.teamService.RemoveMember(teamId, userId); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Status(204)
	}
}
