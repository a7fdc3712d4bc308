package http

import (
	"time"

	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/report"
	configHTTP "vendor-report-srv/internal/reportconfig/delivery/http"
)

const modeSync = "sync"

// generateReq names a saved configuration or carries one inline. config_id wins when both are set.
type generateReq struct {
	ConfigID      string                       `json:"config_id"`
	Configuration *configHTTP.ConfigurationReq `json:"configuration"`
}

func (r generateReq) validate() error {
	if r.ConfigID == "" && r.Configuration == nil {
		return errConfigurationMissing
	}
	return nil
}

func (r generateReq) toInput() report.GenerateInput {
	input := report.GenerateInput{ConfigID: r.ConfigID}
	if r.Configuration != nil {
		input.Configuration = r.Configuration.ToModel()
	}
	return input
}

type generateQuery struct {
	Mode string `form:"mode"`
}

type quickReq struct {
	Kind   string `json:"-"`
	Format string `json:"format"`
}

func (r quickReq) toInput() report.QuickInput {
	return report.QuickInput{Kind: model.ReportType(r.Kind), Format: r.Format}
}

type jobIDReq struct {
	JobID string
}

type generateResp struct {
	JobID string `json:"job_id"`
	State string `json:"state"`
}

func (h *handler) newGenerateResp(o report.GenerateOutput) generateResp {
	return generateResp{JobID: o.JobID, State: string(o.State)}
}

type jobResp struct {
	ID            string                       `json:"id"`
	State         string                       `json:"state"`
	Configuration configHTTP.ConfigurationResp `json:"configuration"`
	FailureCode   string                       `json:"failure_code,omitempty"`
	FailureReason string                       `json:"failure_reason,omitempty"`
	ArtifactID    string                       `json:"artifact_id,omitempty"`
	CreatedAt     time.Time                    `json:"created_at"`
	StartedAt     *time.Time                   `json:"started_at,omitempty"`
	CompletedAt   *time.Time                   `json:"completed_at,omitempty"`
}

func (h *handler) newJobResp(o report.JobOutput) jobResp {
	job := o.Job
	resp := jobResp{
		ID:            job.ID,
		State:         string(job.State),
		Configuration: configHTTP.NewConfigurationResp(job.Configuration),
		CreatedAt:     job.CreatedAt,
		StartedAt:     job.StartedAt,
		CompletedAt:   job.CompletedAt,
	}
	if job.FailureCode != nil {
		resp.FailureCode = string(*job.FailureCode)
	}
	if job.FailureReason != nil {
		resp.FailureReason = *job.FailureReason
	}
	if job.ArtifactID != nil {
		resp.ArtifactID = *job.ArtifactID
	}
	return resp
}
