package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"utilboard/report"
	"utilboard/web/common"
)

type RequirementListQueryDTO struct {
	Status string `form:"status" json:"status"`
	Search string `form:"search" json:"search"`
	Sort   string `form:"sort" json:"sort"`
	Dir    string `form:"dir" json:"dir" binding:"omitempty,oneof=asc desc"`
}

// ListRequirements returns the linked requirement records, narrowed by
// status ("all" passes everything, "overbudget" tests the overrun
// threshold), searched and sorted.
func (env *Env) ListRequirements(c *gin.Context) {
	var query RequirementListQueryDTO
	if !bindQuery(c, &query) {
		return
	}

	env.mu.Lock()
	defer env.mu.Unlock()

	requirements, err := env.session.Requirements()
	if err != nil {
		respondError(c, err)
		return
	}

	threshold := env.session.Config().OverrunThreshold
	requirements = report.FilterRequirementsByStatus(requirements, query.Status, threshold)
	requirements = report.SearchRequirements(requirements, query.Search)
	requirements = report.SortRequirements(requirements, query.Sort, query.Dir == "desc")

	c.JSON(http.StatusOK, common.NewSearchResponse(requirements, int64(len(requirements))))
}

// GetRequirement returns a single requirement by id.
func (env *Env) GetRequirement(c *gin.Context) {
	env.mu.Lock()
	defer env.mu.Unlock()

	requirement, err := env.session.Requirement(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(requirement))
}

// RequirementStatusCounts returns the per-status tally.
func (env *Env) RequirementStatusCounts(c *gin.Context) {
	env.mu.Lock()
	defer env.mu.Unlock()

	counts, err := env.session.RequirementStatusCounts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(counts))
}
