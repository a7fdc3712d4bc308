package http

import (
	"time"

	"vendor-report-srv/internal/artifact"
	"vendor-report-srv/pkg/paginator"
)

type listReq struct {
	Type   string `form:"type"`
	Format string `form:"format"`
	Status string `form:"status"`
	Search string `form:"search"`
	paginator.PaginateQuery
}

func (r listReq) toInput() artifact.ListInput {
	return artifact.ListInput{
		Type:     r.Type,
		Format:   r.Format,
		Status:   artifact.Status(r.Status),
		Search:   r.Search,
		Paginate: r.PaginateQuery,
	}
}

type artifactReq struct {
	ArtifactID string
}

func (r artifactReq) toDownloadInput() artifact.DownloadInput {
	return artifact.DownloadInput{ArtifactID: r.ArtifactID}
}

func (r artifactReq) toDeleteInput() artifact.DeleteInput {
	return artifact.DeleteInput{ArtifactID: r.ArtifactID}
}

type historyItemResp struct {
	JobID         string     `json:"job_id"`
	ArtifactID    string     `json:"artifact_id,omitempty"`
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	Format        string     `json:"format"`
	Status        string     `json:"status"`
	FailureCode   string     `json:"failure_code,omitempty"`
	FailureReason string     `json:"failure_reason,omitempty"`
	ByteSize      int64      `json:"byte_size,omitempty"`
	DownloadCount int64      `json:"download_count"`
	CreatedAt     time.Time  `json:"created_at"`
	GeneratedAt   *time.Time `json:"generated_at,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

type listResp struct {
	Items     []historyItemResp           `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListResp(o artifact.ListOutput) listResp {
	items := make([]historyItemResp, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, historyItemResp{
			JobID:         it.JobID,
			ArtifactID:    it.ArtifactID,
			Name:          it.Name,
			Type:          it.Type,
			Format:        it.Format,
			Status:        string(it.Status),
			FailureCode:   it.FailureCode,
			FailureReason: it.FailureReason,
			ByteSize:      it.ByteSize,
			DownloadCount: it.DownloadCount,
			CreatedAt:     it.CreatedAt,
			GeneratedAt:   it.GeneratedAt,
			ExpiresAt:     it.ExpiresAt,
		})
	}
	return listResp{
		Items:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}
