package postgre

import "vendor-report-srv/internal/model"

const jobColumns = `id, owner_id, configuration, state, failure_code, failure_reason, artifact_id,
	created_at, started_at, completed_at`

const (
	insertJobQuery = `INSERT INTO report_jobs
	(id, owner_id, name, type, format, configuration, state, created_at)
VALUES ($1, $2, $3, $4, $5, $6, '` + string(model.JobStatePending) + `', $7)
RETURNING ` + jobColumns

	getJobQuery = `SELECT ` + jobColumns + `
FROM report_jobs
WHERE id = $1 AND owner_id = $2`

	markGeneratingQuery = `UPDATE report_jobs
SET state = '` + string(model.JobStateGenerating) + `', started_at = $2
WHERE id = $1 AND state = '` + string(model.JobStatePending) + `'`

	markReadyQuery = `UPDATE report_jobs
SET state = '` + string(model.JobStateReady) + `', artifact_id = $2, completed_at = $3
WHERE id = $1 AND state = '` + string(model.JobStateGenerating) + `'`

	markFailedQuery = `UPDATE report_jobs
SET state = '` + string(model.JobStateFailed) + `', failure_code = $2, failure_reason = $3, completed_at = $4
WHERE id = $1 AND state IN ('` + string(model.JobStatePending) + `', '` + string(model.JobStateGenerating) + `')`

	failStaleJobsQuery = `UPDATE report_jobs
SET state = '` + string(model.JobStateFailed) + `', failure_code = $2, failure_reason = $3, completed_at = $4
WHERE state IN ('` + string(model.JobStatePending) + `', '` + string(model.JobStateGenerating) + `') AND created_at < $1
RETURNING ` + jobColumns
)
