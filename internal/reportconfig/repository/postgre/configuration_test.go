package postgre

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/reportconfig/repository"
	"vendor-report-srv/pkg/log"
)

var columns = []string{"id", "owner_id", "configuration", "created_at", "updated_at"}

func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// docArg checks the JSONB argument carries no row-level fields.
type docArg struct{}

func (docArg) Match(v driver.Value) bool {
	b, ok := v.([]byte)
	if !ok {
		return false
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return false
	}
	_, hasID := m["id"]
	_, hasOwner := m["owner_id"]
	return !hasID && !hasOwner && m["name"] == "Sales"
}

func sampleConfig() model.ReportConfiguration {
	lo := decimal.NewFromInt(10)
	return model.ReportConfiguration{
		ID:        "c1",
		OwnerID:   "v1",
		Name:      "Sales",
		Type:      model.ReportTypeCustom,
		DateRange: model.DateRange{Start: "2024-01-01", End: "2024-01-31"},
		Metrics:   []string{"revenue", "orders"},
		GroupBy:   model.GranularityWeek,
		Filters:   model.Filters{Statuses: []string{"delivered"}, MinAmount: &lo},
		Format:    "xlsx",
		Timezone:  "UTC",
	}
}

func TestCreateConfiguration(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())
	cfg := sampleConfig()
	doc, err := buildConfigurationJSON(cfg)
	require.NoError(t, err)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO report_configurations")).
		WithArgs("c1", "v1", "Sales", "custom", docArg{}, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(columns).AddRow("c1", "v1", doc, now, now))

	saved, err := repo.CreateConfiguration(context.Background(), repository.CreateOptions{Configuration: cfg})
	require.NoError(t, err)
	assert.Equal(t, "c1", saved.ID)
	assert.Equal(t, "v1", saved.OwnerID)
	assert.Equal(t, []string{"revenue", "orders"}, saved.Metrics)
	require.NotNil(t, saved.Filters.MinAmount)
	assert.True(t, saved.Filters.MinAmount.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, now, saved.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateConfiguration_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE report_configurations")).
		WithArgs("c1", "v1", "Sales", "custom", docArg{}, sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateConfiguration(context.Background(), repository.UpdateOptions{Configuration: sampleConfig()})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetConfiguration(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())
	doc, _ := buildConfigurationJSON(sampleConfig())
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND owner_id = $2")).
		WithArgs("c1", "v1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("c1", "v1", doc, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND owner_id = $2")).
		WithArgs("c1", "v2").
		WillReturnError(sql.ErrNoRows)

	cfg, err := repo.GetConfiguration(context.Background(), repository.GetOptions{ID: "c1", OwnerID: "v1"})
	require.NoError(t, err)
	assert.Equal(t, model.GranularityWeek, cfg.GroupBy)

	_, err = repo.GetConfiguration(context.Background(), repository.GetOptions{ID: "c1", OwnerID: "v2"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListConfigurations(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())
	doc, _ := buildConfigurationJSON(sampleConfig())
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM report_configurations WHERE owner_id = $1")).
		WithArgs("v1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(21)))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id\nLIMIT $2 OFFSET $3")).
		WithArgs("v1", int64(20), int64(20)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow("c21", "v1", doc, now, now))

	list, total, err := repo.ListConfigurations(context.Background(), repository.ListOptions{OwnerID: "v1", Limit: 20, Offset: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, list, 1)
	assert.Equal(t, "c21", list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteConfiguration(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM report_configurations")).
		WithArgs("c1", "v1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM report_configurations")).
		WithArgs("c1", "v1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteConfiguration(context.Background(), repository.DeleteOptions{ID: "c1", OwnerID: "v1"}))
	err := repo.DeleteConfiguration(context.Background(), repository.DeleteOptions{ID: "c1", OwnerID: "v1"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
