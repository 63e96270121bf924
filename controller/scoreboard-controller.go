package controller

import (
	"encoding/json"
	"net/http"
	"skillpass/repository"
	"skillpass/service"
	"skillpass/utils"
	"sync"
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

type ScoreboardController struct {
	scoreService *service.ScoreService
	teamService  *service.TeamService

	mu          sync.Mutex
	connections map[int]map[*websocket.Conn]bool
}

func NewScoreboardController(db *gorm.DB) *ScoreboardController {
	controller := &ScoreboardController{
		scoreService: service.NewScoreService(db),
		teamService:  service.NewTeamService(db),
		connections:  make(map[int]map[*websocket.Conn]bool),
	}
	controller.StartScoreboardUpdater()
	return controller
}

func setupScoreboardController(db *gorm.DB, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewScoreboardController(db)
	basePath := "/events/:event_id/scoreboard"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: cache.CachePage(cacheStore, 60*time.Second, e.getScoreboardHandler())},
		{Method: "GET", Path: "/ws", HandlerFunc: e.webSocketHandler},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow any host origin to connect to the websocket
		return true
	},
}

type ScoreboardRow struct {
	TeamId   int     `json:"team_id"`
	TeamName string  `json:"team_name"`
	Total    float64 `json:"total"`
}

func (e *ScoreboardController) scoreboard(eventId int) ([]*ScoreboardRow, error) {
	totals, err := e.scoreService.GetLiveTotals(eventId)
	if err != nil {
		return nil, err
	}
	teams, err := e.teamService.GetTeamsForEvent(eventId)
	if err != nil {
		return nil, err
	}
	nameById := make(map[int]string)
	for _, team := range teams {
		nameById[team.Id] = team.Name
	}
	return utils.Map(totals, func(total *repository.TeamTotal) *ScoreboardRow {
		return &ScoreboardRow{
			TeamId:   total.TeamId,
			TeamName: nameById[total.TeamId],
			Total:    total.Total,
		}
	}), nil
}

// @id GetScoreboard
// @Description Fetches the provisional scoreboard built from raw score sums. Cached briefly.
// @Tags scoreboard
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} ScoreboardRow
// @Router /events/{event_id}/scoreboard [get]
func (e *ScoreboardController) getScoreboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := eventIdParam(c)
		if !ok {
			return
		}
		rows, err := e.scoreboard(eventId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, rows)
	}
}

// @id ScoreboardWebSocket
// @Description Websocket for scoreboard updates. Connected clients receive the current standings periodically.
// @Tags scoreboard
// @Param event_id path int true "Event Id"
// @Success 200 {array} ScoreboardRow
// @Router /events/{event_id}/scoreboard/ws [get]
func (e *ScoreboardController) webSocketHandler(c *gin.Context) {
	eventId, ok := eventIdParam(c)
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		http.NotFound(c.Writer, c.Request)
		return
	}
	defer conn.Close()

	// Send the current standings to the new subscriber
	if rows, err := e.scoreboard(eventId); err == nil {
		if serialized, err := json.Marshal(rows); err == nil {
			if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
				return
			}
		}
	}

	e.mu.Lock()
	if _, ok := e.connections[eventId]; !ok {
		e.connections[eventId] = make(map[*websocket.Conn]bool)
	}
	e.connections[eventId][conn] = true
	e.mu.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			e.mu.Lock()
			delete(e.connections[eventId], conn)
			if len(e.connections[eventId]) == 0 {
				delete(e.connections, eventId)
			}
			e.mu.Unlock()
			return
		}
	}
}

func (e *ScoreboardController) StartScoreboardUpdater() {
	go func() {
		for {
			e.mu.Lock()
			// only recompute standings for events with active subscribers
			eventIds := utils.Keys(e.connections)
			e.mu.Unlock()
			for _, eventId := range eventIds {
				rows, err := e.scoreboard(eventId)
				if err != nil {
					continue
				}
				serialized, err := json.Marshal(rows)
				if err != nil {
					continue
				}
				e.mu.Lock()
				for conn := range e.connections[eventId] {
					if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
						conn.Close()
						delete(e.connections[eventId], conn)
					}
				}
				e.mu.Unlock()
			}
			time.Sleep(5 * time.Second)
		}
	}()
}
