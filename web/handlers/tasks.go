package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"utilboard/report"
	"utilboard/web/common"
)

// ListTasks returns the full grouped task list with per-employee
// breakdowns, optionally searched.
func (env *Env) ListTasks(c *gin.Context) {
	env.mu.Lock()
	defer env.mu.Unlock()

	tasks, err := env.session.Tasks()
	if err != nil {
		respondError(c, err)
		return
	}
	tasks = report.SearchTasks(tasks, c.Query("search"))

	c.JSON(http.StatusOK, common.NewSearchResponse(tasks, int64(len(tasks))))
}

// TaskMatrix returns the size-capped overview ranked by distinct
// employee count.
func (env *Env) TaskMatrix(c *gin.Context) {
	env.mu.Lock()
	defer env.mu.Unlock()

	matrix, err := env.session.Matrix()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(matrix))
}

// GetTask returns a single task summary by exact name (query param, as
// task strings contain characters that do not survive path segments).
func (env *Env) GetTask(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("missing 'name' query parameter"))
		return
	}

	env.mu.Lock()
	defer env.mu.Unlock()

	task, err := env.session.Task(name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(task))
}

// ListTeams returns the configured teams, sentinel first.
func (env *Env) ListTeams(c *gin.Context) {
	env.mu.Lock()
	defer env.mu.Unlock()

	c.JSON(http.StatusOK, common.NewSuccessResponse(env.session.Teams()))
}
