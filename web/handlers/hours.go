package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"utilboard/report"
	"utilboard/web/common"
)

type HoursListQueryDTO struct {
	Team   string `form:"team" json:"team"`
	Search string `form:"search" json:"search"`
	Sort   string `form:"sort" json:"sort"`
	Dir    string `form:"dir" json:"dir" binding:"omitempty,oneof=asc desc"`
}

// ListHours returns normalized hours records, optionally team-filtered,
// searched and sorted.
func (env *Env) ListHours(c *gin.Context) {
	var query HoursListQueryDTO
	if !bindQuery(c, &query) {
		return
	}

	env.mu.Lock()
	defer env.mu.Unlock()

	records, err := env.session.Hours()
	if err != nil {
		respondError(c, err)
		return
	}

	team := env.session.Team(query.Team)
	records = report.FilterHours(records, team)
	records = report.SearchHours(records, query.Search)
	records = report.SortHours(records, query.Sort, query.Dir == "desc")

	c.JSON(http.StatusOK, common.NewSearchResponse(records, int64(len(records))))
}
