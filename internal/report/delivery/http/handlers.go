package http

import (
	"errors"
	"fmt"
	"net/http"

	"vendor-report-srv/internal/report"
	pkgErrors "vendor-report-srv/pkg/errors"
	"vendor-report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Generate a report
// @Description Starts a job from a saved configuration (config_id) or an inline configuration.
// @Description With mode=sync the job runs before the response and the document is returned.
// @Tags Reports
// @Accept json
// @Produce json
// @Param body body generateReq true "Configuration"
// @Param mode query string false "sync to stream the document"
// @Success 200 {object} generateResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 422 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Failure 504 {object} response.Resp
// @Router /api/v1/reports/generate [post]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, query, sc, err := h.processGenerateRequest(c)
	if err != nil {
		var httpErr *pkgErrors.HTTPError
		if errors.As(err, &httpErr) {
			response.Error(c, err, h.discord)
			return
		}
		response.BadRequest(c, err)
		return
	}

	if query.Mode == modeSync {
		o, err := h.uc.GenerateSync(ctx, sc, req.toInput())
		if err != nil {
			h.l.Warnf(ctx, "report.delivery.http.Generate: usecase GenerateSync failed: %v", err)
			response.Error(c, h.mapError(err), h.discord)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, o.FileName))
		c.Header("X-Job-ID", o.JobID)
		c.Header("X-Artifact-ID", o.ArtifactID)
		c.Data(http.StatusOK, o.ContentType, o.Data)
		return
	}

	o, err := h.uc.Generate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "report.delivery.http.Generate: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGenerateResp(o))
}

// @Summary Generate a quick report
// @Description Daily, weekly or monthly report of the current period
// @Tags Reports
// @Accept json
// @Produce json
// @Param kind path string true "daily, weekly or monthly"
// @Param body body quickReq false "Optional output format"
// @Success 200 {object} generateResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/reports/quick/{kind} [post]
func (h *handler) GenerateQuick(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processQuickRequest(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	o, err := h.uc.GenerateQuick(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "report.delivery.http.GenerateQuick: usecase GenerateQuick failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGenerateResp(o))
}

// @Summary Get a report job
// @Tags Reports
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} jobResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/jobs/{job_id} [get]
func (h *handler) GetJob(c *gin.Context) {
	ctx := c.Request.Context()
	req, sc := h.processJobIDRequest(c)

	o, err := h.uc.GetJob(ctx, sc, report.GetJobInput{JobID: req.JobID})
	if err != nil {
		h.l.Warnf(ctx, "report.delivery.http.GetJob: usecase GetJob failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newJobResp(o))
}
