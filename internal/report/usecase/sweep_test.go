package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-report-srv/internal/aggregation"
	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/report"
)

func openJob(id string, state model.JobState, created time.Time) model.ReportJob {
	return model.ReportJob{
		ID:            id,
		OwnerID:       vendor.UserID,
		Configuration: januaryConfig("csv"),
		State:         state,
		CreatedAt:     created,
	}
}

func TestFailStaleJobs(t *testing.T) {
	env := newTestEnv(Config{StaleAfter: 10 * time.Minute})
	env.jobs.put(openJob("pending-old", model.JobStatePending, fixedNow.Add(-time.Hour)))
	env.jobs.put(openJob("generating-old", model.JobStateGenerating, fixedNow.Add(-11*time.Minute)))
	env.jobs.put(openJob("pending-fresh", model.JobStatePending, fixedNow.Add(-time.Minute)))
	env.jobs.put(openJob("ready-old", model.JobStateReady, fixedNow.Add(-time.Hour)))

	n, err := env.uc.FailStaleJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{"pending-old", "generating-old"} {
		job := env.jobs.get(id)
		assert.Equal(t, model.JobStateFailed, job.State, id)
		require.NotNil(t, job.FailureCode, id)
		assert.Equal(t, model.FailureTimeout, *job.FailureCode, id)
		require.NotNil(t, job.CompletedAt, id)
		assert.Equal(t, fixedNow, *job.CompletedAt, id)
	}
	assert.Equal(t, model.JobStatePending, env.jobs.get("pending-fresh").State)
	assert.Equal(t, model.JobStateReady, env.jobs.get("ready-old").State)
	assert.Equal(t, []string{report.EventJobFailed, report.EventJobFailed}, env.prod.types())

	n, err = env.uc.FailStaleJobs(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStaleAfterDefaultsToTwiceTheStageDeadlines(t *testing.T) {
	env := newTestEnv(Config{AggregateTimeout: time.Minute, RenderTimeout: time.Minute, StoreTimeout: 30 * time.Second})
	assert.Equal(t, 5*time.Minute, env.uc.config.StaleAfter)
}

func TestStartJobSweeper_SweepsOnStart(t *testing.T) {
	env := newTestEnv(Config{StaleAfter: time.Minute, SweepInterval: time.Hour})
	env.jobs.put(openJob("left-behind", model.JobStateGenerating, fixedNow.Add(-time.Hour)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		env.uc.StartJobSweeper(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return env.jobs.get("left-behind").State == model.JobStateFailed
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}

func TestWait_DrainsBackgroundJobs(t *testing.T) {
	env := newTestEnv(Config{})
	release := make(chan struct{})
	env.agg.fn = func(context.Context, aggregation.AggregateInput) (aggregation.Result, error) {
		<-release
		return sampleResult(), nil
	}

	out, err := env.uc.Generate(context.Background(), vendor, report.GenerateInput{Configuration: januaryConfig("csv")})
	require.NoError(t, err)

	short, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, env.uc.Wait(short), context.DeadlineExceeded)

	close(release)
	require.NoError(t, env.uc.Wait(context.Background()))
	assert.Equal(t, model.JobStateReady, env.jobs.get(out.JobID).State)
}

func TestWait_NoJobs(t *testing.T) {
	env := newTestEnv(Config{})
	assert.NoError(t, env.uc.Wait(context.Background()))
}
