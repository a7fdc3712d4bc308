package http

import (
	"vendor-report-srv/internal/reportconfig"
	"vendor-report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Save a report configuration
// @Description Creates a configuration, or replaces it when id is set
// @Tags Report Configurations
// @Accept json
// @Produce json
// @Param body body saveReq true "Configuration"
// @Success 200 {object} ConfigurationResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/configs [post]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSaveRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "reportconfig.delivery.http.Save: processSaveRequest failed: %v", err)
		response.BadRequest(c, err)
		return
	}

	cfg, err := h.uc.Save(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "reportconfig.delivery.http.Save: usecase Save failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, NewConfigurationResp(cfg))
}

// @Summary List saved report configurations
// @Tags Report Configurations
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} listResp
// @Router /api/v1/reports/configs [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, reportconfig.ListInput{Paginate: req.PaginateQuery})
	if err != nil {
		h.l.Errorf(ctx, "reportconfig.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get a report configuration
// @Tags Report Configurations
// @Produce json
// @Param config_id path string true "Configuration ID"
// @Success 200 {object} ConfigurationResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/configs/{config_id} [get]
func (h *handler) Load(c *gin.Context) {
	ctx := c.Request.Context()
	req, sc := h.processConfigIDRequest(c)

	cfg, err := h.uc.Load(ctx, sc, reportconfig.LoadInput{ID: req.ID})
	if err != nil {
		h.l.Warnf(ctx, "reportconfig.delivery.http.Load: usecase Load failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, NewConfigurationResp(cfg))
}

// @Summary Delete a report configuration
// @Description Jobs generated from it keep their own copy
// @Tags Report Configurations
// @Produce json
// @Param config_id path string true "Configuration ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/configs/{config_id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	req, sc := h.processConfigIDRequest(c)

	if err := h.uc.Delete(ctx, sc, reportconfig.DeleteInput{ID: req.ID}); err != nil {
		h.l.Warnf(ctx, "reportconfig.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary List built-in report templates
// @Tags Report Configurations
// @Produce json
// @Success 200 {array} ConfigurationResp
// @Router /api/v1/reports/templates [get]
func (h *handler) ListTemplates(c *gin.Context) {
	response.OK(c, h.newTemplatesResp(h.uc.ListQuickTemplates(c.Request.Context())))
}
