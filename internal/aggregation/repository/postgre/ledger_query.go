package postgre

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"vendor-report-srv/internal/aggregation/repository"
)

const listLinesBaseQuery = `SELECT o.id, o.customer_id, oi.product_id, p.name, p.category, o.status, o.total_amount,
	oi.quantity, oi.price, oi.subtotal, o.created_at
FROM order_items oi
JOIN orders o ON o.id = oi.order_id
JOIN products p ON p.id = oi.product_id`

// buildListLinesQuery - Build query and args for ListLines.
func (r *implRepository) buildListLinesQuery(opts repository.ListLinesOptions) (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	add("oi.vendor_id = $%d", opts.VendorID)
	add("o.created_at >= $%d", opts.From)
	add("o.created_at < $%d", opts.To)

	if len(opts.Statuses) > 0 {
		add("o.status = ANY($%d)", pq.Array(opts.Statuses))
	}
	if opts.Category != "" {
		add("p.category = $%d", opts.Category)
	}
	if opts.MinAmount != nil {
		add("o.total_amount >= $%d", opts.MinAmount.String())
	}
	if opts.MaxAmount != nil {
		add("o.total_amount <= $%d", opts.MaxAmount.String())
	}

	query := listLinesBaseQuery + "\nWHERE " + strings.Join(conds, " AND ") + "\nORDER BY o.created_at, o.id"
	return query, args
}
