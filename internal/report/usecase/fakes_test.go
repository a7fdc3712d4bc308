package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"vendor-report-srv/internal/aggregation"
	"vendor-report-srv/internal/artifact"
	"vendor-report-srv/internal/metric"
	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/report"
	"vendor-report-srv/internal/report/repository"
	configRepo "vendor-report-srv/internal/reportconfig/repository"
)

// memJobs applies the same state guards as the SQL updates.
type memJobs struct {
	mu        sync.Mutex
	jobs      map[string]model.ReportJob
	createErr error
}

func newMemJobs() *memJobs {
	return &memJobs{jobs: map[string]model.ReportJob{}}
}

func (r *memJobs) get(id string) model.ReportJob {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jobs[id]
}

func (r *memJobs) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}

func (r *memJobs) CreateJob(_ context.Context, o repository.CreateJobOptions) (model.ReportJob, error) {
	if r.createErr != nil {
		return model.ReportJob{}, r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	job := model.ReportJob{
		ID:            o.ID,
		OwnerID:       o.OwnerID,
		Configuration: o.Configuration.Clone(),
		State:         model.JobStatePending,
		CreatedAt:     o.CreatedAt,
	}
	r.jobs[job.ID] = job
	return job, nil
}

func (r *memJobs) GetJob(_ context.Context, o repository.GetJobOptions) (model.ReportJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[o.ID]
	if !ok || job.OwnerID != o.OwnerID {
		return model.ReportJob{}, repository.ErrNotFound
	}
	return job, nil
}

func (r *memJobs) transition(id string, from []model.JobState, apply func(*model.ReportJob)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return repository.ErrStateConflict
	}
	for _, s := range from {
		if job.State == s {
			apply(&job)
			r.jobs[id] = job
			return nil
		}
	}
	return repository.ErrStateConflict
}

func (r *memJobs) MarkGenerating(_ context.Context, o repository.MarkGeneratingOptions) error {
	return r.transition(o.ID, []model.JobState{model.JobStatePending}, func(j *model.ReportJob) {
		j.State = model.JobStateGenerating
		t := o.StartedAt
		j.StartedAt = &t
	})
}

func (r *memJobs) MarkReady(_ context.Context, o repository.MarkReadyOptions) error {
	return r.transition(o.ID, []model.JobState{model.JobStateGenerating}, func(j *model.ReportJob) {
		j.State = model.JobStateReady
		id, t := o.ArtifactID, o.CompletedAt
		j.ArtifactID = &id
		j.CompletedAt = &t
	})
}

func (r *memJobs) MarkFailed(_ context.Context, o repository.MarkFailedOptions) error {
	return r.transition(o.ID, []model.JobState{model.JobStatePending, model.JobStateGenerating}, func(j *model.ReportJob) {
		j.State = model.JobStateFailed
		code, reason, t := o.Code, o.Reason, o.CompletedAt
		j.FailureCode = &code
		j.FailureReason = &reason
		j.CompletedAt = &t
	})
}

func (r *memJobs) FailStaleJobs(_ context.Context, o repository.FailStaleJobsOptions) ([]model.ReportJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var failed []model.ReportJob
	for id, job := range r.jobs {
		if job.State != model.JobStatePending && job.State != model.JobStateGenerating {
			continue
		}
		if !job.CreatedAt.Before(o.CreatedBefore) {
			continue
		}
		code, reason, t := o.Code, o.Reason, o.CompletedAt
		job.State = model.JobStateFailed
		job.FailureCode = &code
		job.FailureReason = &reason
		job.CompletedAt = &t
		r.jobs[id] = job
		failed = append(failed, job)
	}
	return failed, nil
}

// put stores a job as-is, bypassing the state guards.
func (r *memJobs) put(job model.ReportJob) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
}

type fakeAggregation struct {
	mu    sync.Mutex
	calls []aggregation.AggregateInput
	fn    func(ctx context.Context, in aggregation.AggregateInput) (aggregation.Result, error)
}

func (f *fakeAggregation) Aggregate(ctx context.Context, in aggregation.AggregateInput) (aggregation.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, in)
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(ctx, in)
	}
	return sampleResult(), nil
}

func (f *fakeAggregation) RecordView(context.Context, aggregation.RecordViewInput) error {
	return nil
}

// fakeArtifacts records what the store stage persisted.
type fakeArtifacts struct {
	artifact.UseCase

	mu         sync.Mutex
	persisted  []artifact.PersistInput
	deleted    []string
	persistErr error
}

func (f *fakeArtifacts) Persist(_ context.Context, in artifact.PersistInput) (model.ReportArtifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.persistErr != nil {
		return model.ReportArtifact{}, f.persistErr
	}
	f.persisted = append(f.persisted, in)
	return model.ReportArtifact{
		ID:          "a-" + in.JobID,
		JobID:       in.JobID,
		OwnerID:     in.OwnerID,
		Name:        in.Name,
		Format:      in.Format.String(),
		ByteSize:    int64(len(in.Data)),
		ContentType: in.Format.ContentType(),
	}, nil
}

func (f *fakeArtifacts) Delete(_ context.Context, _ model.Scope, in artifact.DeleteInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, in.ArtifactID)
	return nil
}

func (f *fakeArtifacts) persistCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.persisted)
}

type fakeProducer struct {
	mu     sync.Mutex
	events []report.Event
	err    error
}

func (f *fakeProducer) PublishJobEvent(_ context.Context, e report.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return f.err
}

func (f *fakeProducer) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

// savedConfigs serves GetConfiguration for configuration id lookups.
type savedConfigs struct {
	configRepo.PostgresRepository
	configs map[string]model.ReportConfiguration
}

func (s savedConfigs) GetConfiguration(_ context.Context, o configRepo.GetOptions) (model.ReportConfiguration, error) {
	cfg, ok := s.configs[o.ID]
	if !ok || cfg.OwnerID != o.OwnerID {
		return model.ReportConfiguration{}, configRepo.ErrNotFound
	}
	return cfg, nil
}

func sampleResult() aggregation.Result {
	def, _ := metric.Builtin().Get(metric.Revenue)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day := func(n int) aggregation.Window {
		s := start.AddDate(0, 0, n)
		return aggregation.Window{Label: s.Format("02 Jan"), Start: s, End: s.AddDate(0, 0, 1)}
	}

	return aggregation.Result{
		Period:         aggregation.Window{Start: start, End: start.AddDate(0, 0, 2)},
		PreviousPeriod: aggregation.Window{Start: start.AddDate(0, 0, -2), End: start},
		Metrics:        []metric.Definition{def},
		Buckets: []aggregation.Bucket{
			{Window: day(0), Values: map[metric.ID]decimal.Decimal{metric.Revenue: decimal.NewFromInt(100)}},
			{Window: day(1), Values: map[metric.ID]decimal.Decimal{metric.Revenue: decimal.NewFromInt(50)}},
		},
		Summaries: []aggregation.Summary{{
			Metric:   def,
			Total:    decimal.NewFromInt(150),
			Previous: decimal.Zero,
			Growth:   aggregation.Growth{Kind: aggregation.GrowthUnbounded},
		}},
	}
}
