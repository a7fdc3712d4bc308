package http

import (
	"fmt"
	"net/http"
	"strconv"

	"vendor-report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List report history
// @Description One entry per report job with its downloadable artifact, newest first
// @Tags Reports
// @Produce json
// @Param type query string false "Report type"
// @Param format query string false "pdf, xlsx or csv"
// @Param status query string false "generating, ready or failed"
// @Param search query string false "Name contains"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/reports [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "artifact.delivery.http.List: processListRequest failed: %v", err)
		response.BadRequest(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "artifact.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Download a report
// @Tags Reports
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param artifact_id path string true "Artifact ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/reports/{artifact_id}/download [get]
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()
	req, sc := h.processArtifactRequest(c)

	o, err := h.uc.Download(ctx, sc, req.toDownloadInput())
	if err != nil {
		h.l.Warnf(ctx, "artifact.delivery.http.Download: usecase Download failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, o.FileName))
	c.Header("X-Download-Count", strconv.FormatInt(o.DownloadCount, 10))
	c.Data(http.StatusOK, o.ContentType, o.Data)
}

// @Summary Delete a report
// @Description Soft delete; repeating the call succeeds
// @Tags Reports
// @Produce json
// @Param artifact_id path string true "Artifact ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{artifact_id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	req, sc := h.processArtifactRequest(c)

	if err := h.uc.Delete(ctx, sc, req.toDeleteInput()); err != nil {
		h.l.Errorf(ctx, "artifact.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
