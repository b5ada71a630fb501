package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"utilboard/internal/source"
	"utilboard/report"
	"utilboard/web/common"
)

// LoadResponse reports the outcome of a dataset upload.
type LoadResponse struct {
	Version string `json:"version"`
	Stats   any    `json:"stats"`
	Warning string `json:"warning,omitempty"`
}

func (env *Env) readUpload(c *gin.Context) ([]report.Row, bool) {
	if key := c.Query("s3Key"); key != "" {
		if env.s3Bucket == "" {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("no s3 bucket configured"))
			return nil, false
		}
		rows, err := source.FetchWorkbook(c.Request.Context(), env.s3Bucket, key)
		if err != nil {
			c.JSON(http.StatusBadGateway, common.NewErrorResponse(err.Error()))
			return nil, false
		}
		return rows, true
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("missing 'file' upload field, or pass ?s3Key="))
		return nil, false
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return nil, false
	}
	defer f.Close()

	rows, err := source.ReadWorkbook(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return nil, false
	}
	return rows, true
}

// UploadHours ingests a time-report workbook and replaces the hours
// dataset.
func (env *Env) UploadHours(c *gin.Context) {
	rows, ok := env.readUpload(c)
	if !ok {
		return
	}

	env.mu.Lock()
	stats, err := env.session.LoadHours(report.RowsInput(rows))
	requirements, reqErr := env.session.Requirements()
	version := env.session.Version()
	threshold := env.session.Config().OverrunThreshold
	env.mu.Unlock()

	resp := LoadResponse{Version: version, Stats: stats}
	if errors.Is(err, report.ErrNoRecords) {
		resp.Warning = err.Error()
	} else if err != nil {
		respondError(c, err)
		return
	}

	log.Info().Int("rowsIn", stats.RowsIn).Int("kept", stats.Kept).Msg("hours dataset loaded")
	if reqErr == nil {
		env.notifier.NotifyOverruns(requirements, threshold)
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(resp))
}

// UploadRequirements ingests a budget workbook and replaces the
// requirements dataset.
func (env *Env) UploadRequirements(c *gin.Context) {
	rows, ok := env.readUpload(c)
	if !ok {
		return
	}

	env.mu.Lock()
	stats, err := env.session.LoadRequirements(rows)
	requirements, reqErr := env.session.Requirements()
	version := env.session.Version()
	threshold := env.session.Config().OverrunThreshold
	env.mu.Unlock()

	resp := LoadResponse{Version: version, Stats: stats}
	if errors.Is(err, report.ErrNoRecords) {
		resp.Warning = err.Error()
	} else if err != nil {
		respondError(c, err)
		return
	}

	log.Info().Int("rowsIn", stats.RowsIn).Int("kept", stats.Kept).Msg("requirements dataset loaded")
	if reqErr == nil {
		env.notifier.NotifyOverruns(requirements, threshold)
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(resp))
}
