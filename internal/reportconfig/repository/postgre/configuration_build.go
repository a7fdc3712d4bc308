package postgre

import (
	"encoding/json"

	"vendor-report-srv/internal/model"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// buildConfigurationJSON - The JSONB document stored for a configuration. Row-level
// fields are kept out of it.
func buildConfigurationJSON(cfg model.ReportConfiguration) ([]byte, error) {
	doc := cfg.Clone()
	doc.ID = ""
	doc.OwnerID = ""
	return json.Marshal(doc)
}

// scanConfiguration - Scan configurationColumns into a model.ReportConfiguration.
func scanConfiguration(row rowScanner) (model.ReportConfiguration, error) {
	var (
		cfg     model.ReportConfiguration
		id      string
		ownerID string
		doc     []byte
	)
	if err := row.Scan(&id, &ownerID, &doc, &cfg.CreatedAt, &cfg.UpdatedAt); err != nil {
		return model.ReportConfiguration{}, err
	}

	created, updated := cfg.CreatedAt, cfg.UpdatedAt
	if err := json.Unmarshal(doc, &cfg); err != nil {
		return model.ReportConfiguration{}, err
	}
	cfg.ID = id
	cfg.OwnerID = ownerID
	cfg.CreatedAt = created
	cfg.UpdatedAt = updated
	return cfg, nil
}
