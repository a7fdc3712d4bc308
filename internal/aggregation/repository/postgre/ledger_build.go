package postgre

import (
	"database/sql"

	"vendor-report-srv/internal/model"
)

// scanLedgerLine - Scan one ledger row into a model.LedgerLine.
func scanLedgerLine(rows *sql.Rows) (model.LedgerLine, error) {
	var (
		line     model.LedgerLine
		category sql.NullString
	)
	err := rows.Scan(
		&line.OrderID,
		&line.CustomerID,
		&line.ProductID,
		&line.ProductName,
		&category,
		&line.Status,
		&line.OrderAmount,
		&line.Quantity,
		&line.Price,
		&line.Subtotal,
		&line.CreatedAt,
	)
	if err != nil {
		return model.LedgerLine{}, err
	}
	line.Category = category.String
	return line, nil
}
