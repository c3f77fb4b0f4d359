package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"team-lunch/order-svc/internal/domain"
)

const uniqueViolation = "23505"

// ErrOrderEntryExists is returned when a second entry for the same order and
// user loses the insert race.
var ErrOrderEntryExists = errors.New("order entry already exists for this user")

func (r *PostgresRepository) GetOrderEntry(id int) (*domain.OrderEntry, error) {
	return r.getOrderEntry(`
		SELECT id, order_id, user_id, payment_status
		FROM order_entries
		WHERE id = $1`, id)
}

func (r *PostgresRepository) FindByOrderAndUser(orderID, userID int) (*domain.OrderEntry, error) {
	return r.getOrderEntry(`
		SELECT id, order_id, user_id, payment_status
		FROM order_entries
		WHERE order_id = $1 AND user_id = $2`, orderID, userID)
}

func (r *PostgresRepository) ListByOrder(orderID int) ([]domain.OrderEntry, error) {
	return r.queryOrderEntries(`
		SELECT id, order_id, user_id, payment_status
		FROM order_entries
		WHERE order_id = $1
		ORDER BY id`, orderID)
}

func (r *PostgresRepository) ListByUser(userID int) ([]domain.OrderEntry, error) {
	return r.queryOrderEntries(`
		SELECT id, order_id, user_id, payment_status
		FROM order_entries
		WHERE user_id = $1
		ORDER BY id`, userID)
}

// SaveOrderEntry writes the entry and replaces its whole dish entry list in
// one transaction.
func (r *PostgresRepository) SaveOrderEntry(entry *domain.OrderEntry) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if entry.ID == 0 {
		err := tx.QueryRow(`
			INSERT INTO order_entries (order_id, user_id, payment_status)
			VALUES ($1, $2, $3)
			RETURNING id`,
			entry.OrderID, entry.UserID, entry.PaymentStatus).Scan(&entry.ID)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				return fmt.Errorf("order %d user %d: %w", entry.OrderID, entry.UserID, ErrOrderEntryExists)
			}
			return err
		}
	} else {
		if _, err := tx.Exec("UPDATE order_entries SET payment_status=$1 WHERE id=$2", entry.PaymentStatus, entry.ID); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM dish_entries WHERE order_entry_id=$1", entry.ID); err != nil {
			return err
		}
	}

	for i, de := range entry.DishEntries {
		chosen := de.ChosenSideDishes
		if chosen == nil {
			chosen = []domain.SideDish{}
		}
		sideDishes, err := json.Marshal(chosen)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO dish_entries (id, order_entry_id, dish_id, side_dishes, comments, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, de.ID, entry.ID, de.Dish.ID, sideDishes, de.AdditionalComments, i); err != nil {
			return fmt.Errorf("insert dish entry %s: %w", de.ID, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) DeleteOrderEntry(id int) error {
	_, err := r.DB.Exec("DELETE FROM order_entries WHERE id=$1", id)
	return err
}

func (r *PostgresRepository) getOrderEntry(query string, args ...any) (*domain.OrderEntry, error) {
	var entry domain.OrderEntry
	err := r.DB.QueryRow(query, args...).Scan(&entry.ID, &entry.OrderID, &entry.UserID, &entry.PaymentStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entries := []domain.OrderEntry{entry}
	if err := r.loadDishEntries(entries); err != nil {
		return nil, err
	}
	return &entries[0], nil
}

func (r *PostgresRepository) queryOrderEntries(query string, args ...any) ([]domain.OrderEntry, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.OrderEntry
	for rows.Next() {
		var entry domain.OrderEntry
		if err := rows.Scan(&entry.ID, &entry.OrderID, &entry.UserID, &entry.PaymentStatus); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	if err := r.loadDishEntries(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// loadDishEntries fills DishEntries of every entry with a single query.
func (r *PostgresRepository) loadDishEntries(entries []domain.OrderEntry) error {
	ids := make([]int, len(entries))
	index := make(map[int]int, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
		index[e.ID] = i
		entries[i].DishEntries = []domain.DishEntry{}
	}

	rows, err := r.DB.Query(`
		SELECT de.order_entry_id, de.id, de.side_dishes, COALESCE(de.comments, ''),
			d.id, d.restaurant_id, d.name, d.price, COALESCE(d.category, ''), d.created_at
		FROM dish_entries de
		JOIN dishes d ON d.id = de.dish_id
		WHERE de.order_entry_id = ANY($1)
		ORDER BY de.order_entry_id, de.position`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var entryID int
		var sideDishes []byte
		var de domain.DishEntry
		if err := rows.Scan(&entryID, &de.ID, &sideDishes, &de.AdditionalComments,
			&de.Dish.ID, &de.Dish.RestaurantID, &de.Dish.Name, &de.Dish.Price, &de.Dish.Category, &de.Dish.CreatedAt); err != nil {
			return err
		}
		if err := json.Unmarshal(sideDishes, &de.ChosenSideDishes); err != nil {
			return fmt.Errorf("decode side dishes of dish entry %s: %w", de.ID, err)
		}
		i, ok := index[entryID]
		if !ok {
			continue
		}
		entries[i].DishEntries = append(entries[i].DishEntries, de)
	}
	return rows.Err()
}
