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

type EventController struct {
	eventService *service.EventService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		eventService: service.NewEventService(db),
	}
}

func setupEventController(db *gorm.DB) []RouteInfo {
	e := NewEventController(db)
	basePath := "/events"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEventsHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createEventHandler(), Authenticated: true, RequiredRoles: organizerRoles},
		{Method: "GET", Path: "/:event_id", HandlerFunc: e.getEventHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/:event_id", HandlerFunc: e.updateEventHandler(), Authenticated: true, RequiredRoles: organizerRoles},
		{Method: "DELETE", Path: "/:event_id", HandlerFunc: e.deleteEventHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.RoleAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

var organizerRoles = []repository.UserRole{repository.RoleAdmin, repository.RoleOrganizer}

func eventIdParam(c *gin.Context) (int, bool) {
	eventId, err := strconv.Atoi(c.Param("event_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid event id"})
		return 0, false
	}
	return eventId, true
}

type EventCreate struct {
	Name              string    `json:"name" binding:"required"`
	Description       string    `json:"description"`
	Competency        string    `json:"competency" binding:"required"`
	RegistrationStart time.Time `json:"registration_start" binding:"required"`
	RegistrationEnd   time.Time `json:"registration_end" binding:"required"`
	EventStart        time.Time `json:"event_start" binding:"required"`
	EventEnd          time.Time `json:"event_end" binding:"required"`
	MaxTeamSize       int       `json:"max_team_size"`
	MinTeamSize       int       `json:"min_team_size"`
}

type EventUpdate struct {
	Name              string                 `json:"name"`
	Description       string                 `json:"description"`
	Competency        string                 `json:"competency"`
	Status            repository.EventStatus `json:"status"`
	RegistrationStart time.Time              `json:"registration_start"`
	RegistrationEnd   time.Time              `json:"registration_end"`
	EventStart        time.Time              `json:"event_start"`
	EventEnd          time.Time              `json:"event_end"`
	MaxTeamSize       int                    `json:"max_team_size"`
	MinTeamSize       int                    `json:"min_team_size"`
}

type EventResponse struct {
	Id                int                    `json:"id"`
	Name              string                 `json:"name"`
	Description       string                 `json:"description,omitempty"`
	Competency        string                 `json:"competency"`
	Status            repository.EventStatus `json:"status"`
	RegistrationStart time.Time              `json:"registration_start"`
	RegistrationEnd   time.Time              `json:"registration_end"`
	EventStart        time.Time              `json:"event_start"`
	EventEnd          time.Time              `json:"event_end"`
	MaxTeamSize       int                    `json:"max_team_size"`
	MinTeamSize       int                    `json:"min_team_size"`
	HasSchema         bool                   `json:"has_schema"`
}

func toEventResponse(event *repository.Event) *EventResponse {
	return &EventResponse{
		Id:                event.Id,
		Name:              event.Name,
		Description:       event.Description,
		Competency:        event.Competency,
		Status:            event.Status,
		RegistrationStart: event.RegistrationStart,
		RegistrationEnd:   event.RegistrationEnd,
		EventStart:        event.EventStart,
		EventEnd:          event.EventEnd,
		MaxTeamSize:       event.MaxTeamSize,
		MinTeamSize:       event.MinTeamSize,
		HasSchema:         event.Schema != nil,
	}
}

// @id GetEvents
// @Description Fetches events. Draft events are only visible to organizers and admins.
// @Tags event
// @Produce json
// @Success 200 {array} EventResponse
// @Router /events [get]
func (e *EventController) getEventsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var events []*repository.Event
		var err error
		if utils.Contains(organizerRoles, currentRole(c)) {
			events, err = e.eventService.GetAllEvents()
		} else {
			events, err = e.eventService.GetVisibleEvents()
		}
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(events, toEventResponse))
	}
}

// @id GetEvent
// @Description Fetches one event
// @Tags event
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {object} EventResponse
// @Router /events/{event_id} [get]
func (e *EventController) getEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		event, err := e.eventService.GetEventById(eventId, "Schema")
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Event not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @id CreateEvent
// @Description Creates an event
// @Tags event
// @Accept json
// @Produce json
// @Param event body EventCreate true "Event to create"
// @Success 201 {object} EventResponse
// @Router /events [post]
func (e *EventController) createEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body EventCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event := &repository.Event{
			Name:              body.Name,
			Description:       body.Description,
			Competency:        body.Competency,
			RegistrationStart: body.RegistrationStart,
			RegistrationEnd:   body.RegistrationEnd,
			EventStart:        body.EventStart,
			EventEnd:          body.EventEnd,
			Status:            repository.EventStatusDraft,
			MaxTeamSize:       body.MaxTeamSize,
			MinTeamSize:       body.MinTeamSize,
		}
		if event.MaxTeamSize == 0 {
			event.MaxTeamSize = 4
		}
		if event.MinTeamSize == 0 {
			event.MinTeamSize = 1
		}
		event, err := e.eventService.SaveEvent(event)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toEventResponse(event))
	}
}

// @id UpdateEvent
// @Description Updates an event
// @Tags event
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param event body EventUpdate true "Fields to update"
// @Success 200 {object} EventResponse
// @Router /events/{event_id} [patch]
func (e *EventController) updateEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		var body EventUpdate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.UpdateEvent(eventId, &repository.Event{
			Name:              body.Name,
			Description:       body.Description,
			Competency:        body.Competency,
			Status:            body.Status,
			RegistrationStart: body.RegistrationStart,
			RegistrationEnd:   body.RegistrationEnd,
			EventStart:        body.EventStart,
			EventEnd:          body.EventEnd,
			MaxTeamSize:       body.MaxTeamSize,
			MinTeamSize:       body.MinTeamSize,
		})
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Event not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @id DeleteEvent
// @Description Deletes an event and all dependent data
// @Tags event
// @Param event_id path int true "Event Id"
// @Success 204
// @Router /events/{event_id} [delete]
func (e *EventController) deleteEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		err := e.eventService.DeleteEvent(eventId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Event not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.Status(204)
	}
}
