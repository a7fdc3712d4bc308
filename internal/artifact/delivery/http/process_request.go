package http

import (
	"vendor-report-srv/internal/model"
	"vendor-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processArtifactRequest(c *gin.Context) (artifactReq, model.Scope) {
	req := artifactReq{
		ArtifactID: c.Param("artifact_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc
}
