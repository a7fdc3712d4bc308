package postgre

const configurationColumns = `id, owner_id, configuration, created_at, updated_at`

const (
	insertConfigurationQuery = `INSERT INTO report_configurations (id, owner_id, name, type, configuration, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + configurationColumns

	updateConfigurationQuery = `UPDATE report_configurations
SET name = $3, type = $4, configuration = $5, updated_at = $6
WHERE id = $1 AND owner_id = $2
RETURNING ` + configurationColumns

	getConfigurationQuery = `SELECT ` + configurationColumns + `
FROM report_configurations
WHERE id = $1 AND owner_id = $2`

	listConfigurationsQuery = `SELECT ` + configurationColumns + `
FROM report_configurations
WHERE owner_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

	countConfigurationsQuery = `SELECT COUNT(*) FROM report_configurations WHERE owner_id = $1`

	deleteConfigurationQuery = `DELETE FROM report_configurations WHERE id = $1 AND owner_id = $2`
)
