package queries

import (
	"context"

	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order view from the database.
// The order row, its items and its opinion are read in three statements;
// the view is assembled in memory.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order view.
// Returns a not-found error when no order with the given id exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := fetchOrders(ctx, h.db, `
		SELECT
			o.id,
			o.user_id,
			o.status_id,
			s.name,
			o.approved_at,
			o.created_at
		FROM orders o
		JOIN statuses s ON s.id = o.status_id
		WHERE o.id = ?
	`, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	if err = attachItems(ctx, h.db, orders); err != nil {
		return OrderResponse{}, err
	}
	if err = attachOpinions(ctx, h.db, orders); err != nil {
		return OrderResponse{}, err
	}

	return orders[0], nil
}

// fetchOrders runs an order select whose column list matches the order view
// and scans the result rows.
func fetchOrders(ctx context.Context, db *gorm.DB, sql string, args ...any) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var resp OrderResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.UserID,
			&resp.Status.ID,
			&resp.Status.Name,
			&resp.ApprovedAt,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}
		resp.Items = make([]OrderItemResponse, 0)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the item rows for every order in the slice with a single
// select and appends them in storage order.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[int]*OrderResponse, len(orders))
	ids := make([]int, 0, len(orders))
	for i := range orders {
		index[orders[i].ID] = &orders[i]
		ids = append(ids, orders[i].ID)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			oi.product_id,
			p.name,
			oi.quantity,
			oi.unit_price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id IN ?
		ORDER BY oi.id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int
		var item OrderItemResponse
		if err = rows.Scan(
			&orderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
		); err != nil {
			return err
		}
		if resp, ok := index[orderID]; ok {
			resp.Items = append(resp.Items, item)
		}
	}

	return rows.Err()
}

// attachOpinions loads the opinions for every order in the slice with a
// single select.
func attachOpinions(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[int]*OrderResponse, len(orders))
	ids := make([]int, 0, len(orders))
	for i := range orders {
		index[orders[i].ID] = &orders[i]
		ids = append(ids, orders[i].ID)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			id,
			rating,
			content,
			created_at
		FROM opinions
		WHERE order_id IN ?
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int
		var op OpinionResponse
		if err = rows.Scan(
			&orderID,
			&op.ID,
			&op.Rating,
			&op.Content,
			&op.CreatedAt,
		); err != nil {
			return err
		}
		if resp, ok := index[orderID]; ok {
			resp.Opinion = &op
		}
	}

	return rows.Err()
}
