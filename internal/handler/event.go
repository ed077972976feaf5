package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/service"
	"github.com/ovasylenko/match-stats-service/pkg/response"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler { return &EventHandler{svc: svc} }

func (h *EventHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches/:match_id/events")
	{
		g.POST("", h.ingest)
		g.POST("/batch", h.ingestBatch)
		g.GET("", h.list)
	}
}

// ingest accepts a single raw event. The body is the tracker's own shape;
// coercion happens later in the aggregation layer.
func (h *EventHandler) ingest(c *gin.Context) {
	var ev model.RawEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	ev.MatchID = c.Param("match_id")
	stored, err := h.svc.IngestEvent(c.Request.Context(), ev)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, stored)
}

type batchRequest struct {
	Events []model.RawEvent `json:"events"`
}

type batchResponse struct {
	Inserted int `json:"inserted"`
}

func (h *EventHandler) ingestBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	n, err := h.svc.IngestBatch(c.Request.Context(), c.Param("match_id"), req.Events)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, batchResponse{Inserted: n})
}

func (h *EventHandler) list(c *gin.Context) {
	events, err := h.svc.ListEvents(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, events)
}
