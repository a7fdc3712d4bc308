package http

import (
	"vendor-report-srv/internal/model"
	"vendor-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSaveRequest(c *gin.Context) (saveReq, model.Scope, error) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processConfigIDRequest(c *gin.Context) (configIDReq, model.Scope) {
	req := configIDReq{ID: c.Param("config_id")}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc
}

func (h *handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
