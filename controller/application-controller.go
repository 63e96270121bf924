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

type ApplicationController struct {
	applicationService *service.ApplicationService
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{
		applicationService: service.NewApplicationService(db),
	}
}

func setupApplicationController(db *gorm.DB) []RouteInfo {
	e := NewApplicationController(db)
	basePath := "/events/:event_id/applications"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getApplicationsHandler(), Authenticated: true, RequiredRoles: organizerRoles},
		{Method: "POST", Path: "", HandlerFunc: e.applyHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/:application_id", HandlerFunc: e.setStatusHandler(), Authenticated: true, RequiredRoles: organizerRoles},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type ApplicationCreate struct {
	Message string `json:"message"`
}

type ApplicationStatusUpdate struct {
	Status repository.ApplicationStatus `json:"status" binding:"required"`
}

type ApplicationResponse struct {
	Id        int                          `json:"id"`
	EventId   int                          `json:"event_id"`
	Status    repository.ApplicationStatus `json:"status"`
	Message   string                       `json:"message,omitempty"`
	CreatedAt time.Time                    `json:"created_at"`
	User      *UserResponse                `json:"user,omitempty"`
}

func toApplicationResponse(application *repository.Application) *ApplicationResponse {
	response := &ApplicationResponse{
		Id:        application.Id,
		EventId:   application.EventId,
		Status:    application.Status,
		Message:   application.Message,
		CreatedAt: application.CreatedAt,
	}
	if application.User != nil {
		response.User = toUserResponse(application.User)
	}
	return response
}

// @id GetApplications
// @Description Fetches all applications for an event
// @Tags application
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} ApplicationResponse
// @Router /events/{event_id}/applications [get]
func (e *ApplicationController) getApplicationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		applications, err := e.applicationService.GetApplicationsForEvent(eventId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(applications, toApplicationResponse))
	}
}

// @id Apply
// @Description Applies the authenticated user to an event
// @Tags application
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param application body ApplicationCreate true "Application"
// @Success 201 {object} ApplicationResponse
// @Router /events/{event_id}/applications [post]
func (e *ApplicationController) applyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		var body ApplicationCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		application, err := e.applicationService.Apply(eventId, currentUserId(c), body.Message)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Event not found"})
			} else {
				c.JSON(400, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(201, toApplicationResponse(application))
	}
}

// @id SetApplicationStatus
// @Description Approves or rejects an application
// @Tags application
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param application_id path int true "Application Id"
// @Param status body ApplicationStatusUpdate true "New status"
// @Success 200 {object} ApplicationResponse
// @Router /events/{event_id}/applications/{application_id} [patch]
func (e *ApplicationController) setStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		applicationId, err := strconv.Atoi(c.Param("application_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid application id"})
			return
		}
		var body ApplicationStatusUpdate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		application, err := e.applicationService.SetStatus(applicationId, body.Status)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Application not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toApplicationResponse(application))
	}
}
