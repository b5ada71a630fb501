package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"utilboard/internal/notify"
	"utilboard/report"
	"utilboard/web/common"
)

// Env carries the shared session and collaborators into the handlers.
// The engine is single-threaded by contract, so the mutex serializes
// every load and read against it.
type Env struct {
	mu       sync.Mutex
	session  *report.Session
	notifier *notify.SlackNotifier
	s3Bucket string
}

func NewEnv(session *report.Session, notifier *notify.SlackNotifier, s3Bucket string) *Env {
	return &Env{session: session, notifier: notifier, s3Bucket: s3Bucket}
}

func Register(r *gin.RouterGroup, env *Env) {
	r.POST("/datasets/hours", env.UploadHours)
	r.POST("/datasets/requirements", env.UploadRequirements)

	r.GET("/employees", env.ListEmployees)
	r.GET("/employees/:key", env.GetEmployee)
	r.GET("/hours", env.ListHours)

	r.GET("/requirements", env.ListRequirements)
	r.GET("/requirements/status-counts", env.RequirementStatusCounts)
	r.GET("/requirements/:id", env.GetRequirement)

	r.GET("/tasks", env.ListTasks)
	r.GET("/tasks/matrix", env.TaskMatrix)
	r.GET("/tasks/detail", env.GetTask)

	r.GET("/teams", env.ListTeams)
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return false
	}
	return true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, report.ErrNotLoaded):
		c.JSON(http.StatusConflict, common.NewErrorResponse(err.Error()))
	case errors.Is(err, report.ErrNotFound):
		c.JSON(http.StatusNotFound, common.NewErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
	}
}
