package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/server/http/dto"
)


// StatsHandler serves dashboard metrics.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// Metrics handles GET /api/stats.
func (h *StatsHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, toMetricsResponse(h.facade.Metrics()))
}

// Snapshot handles POST /api/stats/snapshot.
func (h *StatsHandler) Snapshot(c *gin.Context) {
	snapshots, err := h.facade.SnapshotMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.MetricPointResponse, 0, len(snapshots))
	for _, s := range snapshots {
		resp = append(resp, dto.MetricPointResponse{Name: s.Name, Value: s.Value, Date: s.Date})
	}
	c.JSON(http.StatusOK, resp)
}

// History handles GET /api/stats/history?name=&from=&to= with dates as YYYY-MM-DD.
func (h *StatsHandler) History(c *gin.Context) {
	from, ok := queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return
	}
	snapshots, err := h.facade.MetricHistory(c.Request.Context(), c.Query("name"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.MetricPointResponse, 0, len(snapshots))
	for _, s := range snapshots {
		resp = append(resp, dto.MetricPointResponse{Name: s.Name, Value: s.Value, Date: s.Date})
	}
	c.JSON(http.StatusOK, resp)
}

func queryDate(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		badRequest(c, "invalid "+name+" date")
		return time.Time{}, false
	}
	return t, true
}
