package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ovasylenko/match-stats-service/internal/service"
	"github.com/ovasylenko/match-stats-service/pkg/response"
)

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler { return &StatsHandler{svc: svc} }

func (h *StatsHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches/:match_id/stats")
	{
		g.GET("", h.matchStats)
		g.GET("/segments", h.segments)
	}
}

func (h *StatsHandler) matchStats(c *gin.Context) {
	stats, err := h.svc.GetMatchStats(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, stats)
}

func (h *StatsHandler) segments(c *gin.Context) {
	interval := 0 // service applies the default
	if raw := c.Query("interval"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "interval", Message: "must be an integer"}}))
			return
		}
		interval = v
	}
	segs, err := h.svc.GetMatchStatsSegments(c.Request.Context(), c.Param("match_id"), interval)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, segs)
}
