package postgre

import (
	"database/sql"
	"time"

	"vendor-report-srv/internal/artifact/repository"
	"vendor-report-srv/internal/model"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanArtifact - Scan artifactColumns into a model.ReportArtifact.
func scanArtifact(row rowScanner) (model.ReportArtifact, error) {
	var (
		a         model.ReportArtifact
		deletedAt sql.NullTime
	)
	err := row.Scan(
		&a.ID,
		&a.JobID,
		&a.OwnerID,
		&a.Name,
		&a.Format,
		&a.ByteSize,
		&a.StorageRef,
		&a.ContentType,
		&a.GeneratedAt,
		&a.ExpiresAt,
		&a.DownloadCount,
		&deletedAt,
	)
	if err != nil {
		return model.ReportArtifact{}, err
	}
	a.DeletedAt = nullTimePtr(deletedAt)
	return a, nil
}

// scanHistoryRow - Scan a job row with its optional artifact columns.
func scanHistoryRow(row rowScanner) (repository.HistoryRow, error) {
	var (
		h             repository.HistoryRow
		state         string
		failureCode   sql.NullString
		failureReason sql.NullString

		artifactID    sql.NullString
		jobID         sql.NullString
		ownerID       sql.NullString
		name          sql.NullString
		format        sql.NullString
		byteSize      sql.NullInt64
		storageRef    sql.NullString
		contentType   sql.NullString
		generatedAt   sql.NullTime
		expiresAt     sql.NullTime
		downloadCount sql.NullInt64
		deletedAt     sql.NullTime
	)
	err := row.Scan(
		&h.JobID, &h.Name, &h.Type, &h.Format, &state, &failureCode, &failureReason, &h.CreatedAt,
		&artifactID, &jobID, &ownerID, &name, &format, &byteSize, &storageRef, &contentType,
		&generatedAt, &expiresAt, &downloadCount, &deletedAt,
	)
	if err != nil {
		return repository.HistoryRow{}, err
	}

	h.State = model.JobState(state)
	h.FailureCode = failureCode.String
	h.FailureReason = failureReason.String
	if !artifactID.Valid {
		return h, nil
	}

	h.Artifact = &model.ReportArtifact{
		ID:            artifactID.String,
		JobID:         jobID.String,
		OwnerID:       ownerID.String,
		Name:          name.String,
		Format:        format.String,
		ByteSize:      byteSize.Int64,
		StorageRef:    storageRef.String,
		ContentType:   contentType.String,
		GeneratedAt:   generatedAt.Time,
		ExpiresAt:     expiresAt.Time,
		DownloadCount: downloadCount.Int64,
		DeletedAt:     nullTimePtr(deletedAt),
	}
	return h, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
