package storage

import (
	"database/sql"
	"errors"
	"time"

	"team-lunch/order-svc/internal/domain"
)

const orderColumns = `o.id, o.restaurant_id, o.creator_id, o.order_date, COALESCE(o.time_of_order, ''), o.state,
		o.decrease_in_percent, o.delivery_cost_per_everybody, o.delivery_cost_per_dish,
		o.payment_by_cash, o.payment_by_bank_transfer, COALESCE(o.bank_transfer_number, ''), o.created_at`

const dateLayout = "2006-01-02"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner, order *domain.Order) error {
	return row.Scan(&order.ID, &order.RestaurantID, &order.CreatorID, &order.OrderDate, &order.TimeOfOrder, &order.State,
		&order.DecreaseInPercent, &order.DeliveryCostPerEverybody, &order.DeliveryCostPerDish,
		&order.PaymentByCash, &order.PaymentByBankTransfer, &order.BankTransferNumber, &order.CreatedAt)
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	return r.DB.QueryRow(`
		INSERT INTO orders (restaurant_id, creator_id, order_date, time_of_order, state,
			decrease_in_percent, delivery_cost_per_everybody, delivery_cost_per_dish,
			payment_by_cash, payment_by_bank_transfer, bank_transfer_number)
		VALUES ($1, $2, $3::date, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		order.RestaurantID, order.CreatorID, order.OrderDate.Format(dateLayout), order.TimeOfOrder, order.State,
		order.DecreaseInPercent, order.DeliveryCostPerEverybody, order.DeliveryCostPerDish,
		order.PaymentByCash, order.PaymentByBankTransfer, order.BankTransferNumber,
	).Scan(&order.ID, &order.CreatedAt)
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	err := scanOrder(r.DB.QueryRow(`SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id), &order)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) UpdateOrder(order *domain.Order) error {
	_, err := r.DB.Exec(`
		UPDATE orders
		SET order_date=$1::date, time_of_order=NULLIF($2, ''), decrease_in_percent=$3,
			delivery_cost_per_everybody=$4, delivery_cost_per_dish=$5,
			payment_by_cash=$6, payment_by_bank_transfer=$7, bank_transfer_number=$8
		WHERE id=$9`,
		order.OrderDate.Format(dateLayout), order.TimeOfOrder, order.DecreaseInPercent,
		order.DeliveryCostPerEverybody, order.DeliveryCostPerDish,
		order.PaymentByCash, order.PaymentByBankTransfer, order.BankTransferNumber, order.ID)
	return err
}

func (r *PostgresRepository) UpdateOrderState(id int, state domain.OrderState) error {
	_, err := r.DB.Exec("UPDATE orders SET state=$1 WHERE id=$2", state, id)
	return err
}

// DeleteOrder removes the order; its entries go with it through the foreign
// key cascade.
func (r *PostgresRepository) DeleteOrder(id int) error {
	_, err := r.DB.Exec("DELETE FROM orders WHERE id=$1", id)
	return err
}

func (r *PostgresRepository) ListOrdersByDate(teamID int, date time.Time) ([]domain.Order, error) {
	return r.queryOrders(`
		SELECT `+orderColumns+`
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE r.team_id = $1 AND o.order_date = $2::date
		ORDER BY o.created_at`, teamID, date.Format(dateLayout))
}

func (r *PostgresRepository) ListOrders(teamID int) ([]domain.Order, error) {
	return r.queryOrders(`
		SELECT `+orderColumns+`
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE r.team_id = $1
		ORDER BY o.order_date DESC, o.created_at DESC`, teamID)
}

func (r *PostgresRepository) queryOrders(query string, args ...any) ([]domain.Order, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
