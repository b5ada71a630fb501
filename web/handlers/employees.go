package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"utilboard/report"
	"utilboard/web/common"
)

type EmployeeListQueryDTO struct {
	Team          string   `form:"team" json:"team"`
	Search        string   `form:"search" json:"search"`
	Sort          string   `form:"sort" json:"sort"`
	Dir           string   `form:"dir" json:"dir" binding:"omitempty,oneof=asc desc"`
	Type          string   `form:"type" json:"type"`
	MaxInvestment *float64 `form:"maxInvestment" json:"maxInvestment" binding:"omitempty,min=0,max=100"`
}

// ListEmployees returns employee summaries, optionally narrowed by
// team, search query, type and low-investment threshold, and sorted per
// request.
func (env *Env) ListEmployees(c *gin.Context) {
	var query EmployeeListQueryDTO
	if !bindQuery(c, &query) {
		return
	}

	env.mu.Lock()
	defer env.mu.Unlock()

	var (
		employees []report.EmployeeSummary
		err       error
	)
	switch {
	case query.Type != "":
		employees, err = env.session.EmployeesByType(query.Type)
	case query.MaxInvestment != nil:
		employees, err = env.session.LowInvestment(*query.MaxInvestment)
	default:
		employees, err = env.session.Employees()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	team := env.session.Team(query.Team)
	employees = report.FilterEmployees(employees, team)
	employees = report.SearchEmployees(employees, query.Search)
	employees = report.SortEmployees(employees, query.Sort, query.Dir == "desc")

	c.JSON(http.StatusOK, common.NewSearchResponse(employees, int64(len(employees))))
}

// GetEmployee returns a single summary by key (employee id, else name).
func (env *Env) GetEmployee(c *gin.Context) {
	env.mu.Lock()
	defer env.mu.Unlock()

	employee, err := env.session.Employee(c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(employee))
}
