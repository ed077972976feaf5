package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/repository"
	"github.com/ovasylenko/match-stats-service/internal/service"
	"github.com/ovasylenko/match-stats-service/pkg/response"
)

type MatchHandler struct {
	svc service.MatchService
}

func NewMatchHandler(svc service.MatchService) *MatchHandler { return &MatchHandler{svc: svc} }

func (h *MatchHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches")
	{
		g.POST("", h.create)
		// Use a stable wildcard name (match_id) so nested routes (events, stats) can reuse it without Gin conflicts.
		g.GET("/:match_id", h.getByID)
		g.GET("", h.list)
		g.PATCH("/:match_id/status", h.updateStatus)
		g.POST("/:match_id/players", h.addPlayer)
		g.GET("/:match_id/players", h.roster)
	}
}

type createMatchRequest struct {
	HomeTeamName    string    `json:"home_team_name"`
	AwayTeamName    string    `json:"away_team_name"`
	Status          string    `json:"status"`
	DurationMinutes int       `json:"duration_minutes"`
	Date            time.Time `json:"date"`
}

func (h *MatchHandler) create(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput) // internal parse details stay internal
		return
	}
	match, err := h.svc.CreateMatch(c.Request.Context(), req.HomeTeamName, req.AwayTeamName, req.Status, req.DurationMinutes, req.Date)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, match)
}

func (h *MatchHandler) getByID(c *gin.Context) {
	match, err := h.svc.GetMatch(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, match)
}

func (h *MatchHandler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	page := repository.Page{Limit: limit, Offset: offset}
	res, err := h.svc.ListMatches(c.Request.Context(), page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *MatchHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	if err := h.svc.UpdateMatchStatus(c.Request.Context(), c.Param("match_id"), req.Status); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"status": "updated"})
}

type addPlayerRequest struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	JerseyNumber int    `json:"jersey_number"`
	Team         string `json:"team"`
	Position     string `json:"position"`
}

func (h *MatchHandler) addPlayer(c *gin.Context) {
	var req addPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	player, err := h.svc.AddPlayer(c.Request.Context(), model.Player{
		ID:           req.ID,
		MatchID:      c.Param("match_id"),
		Name:         req.Name,
		JerseyNumber: req.JerseyNumber,
		Team:         model.TeamSide(req.Team),
		Position:     req.Position,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, player)
}

func (h *MatchHandler) roster(c *gin.Context) {
	players, err := h.svc.GetRoster(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, players)
}
