package http

import (
	"vendor-report-srv/internal/model"
	"vendor-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGenerateRequest(c *gin.Context) (generateReq, generateQuery, model.Scope, error) {
	var (
		req   generateReq
		query generateQuery
	)

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "report.delivery.http.processGenerateRequest: ShouldBindJSON failed: %v", err)
		return req, query, model.Scope{}, err
	}
	if err := req.validate(); err != nil {
		return req, query, model.Scope{}, err
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		return req, query, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, query, sc, nil
}

func (h *handler) processQuickRequest(c *gin.Context) (quickReq, model.Scope, error) {
	var req quickReq

	ctx := c.Request.Context()
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Warnf(ctx, "report.delivery.http.processQuickRequest: ShouldBindJSON failed: %v", err)
			return req, model.Scope{}, err
		}
	}
	req.Kind = c.Param("kind")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processJobIDRequest(c *gin.Context) (jobIDReq, model.Scope) {
	req := jobIDReq{JobID: c.Param("job_id")}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc
}
