package storage

import "fmt"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT,
		team_id INT NOT NULL REFERENCES teams(id)
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		id SERIAL PRIMARY KEY,
		team_id INT NOT NULL REFERENCES teams(id),
		name TEXT NOT NULL,
		address TEXT,
		telephone TEXT,
		url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS dishes (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		price INT NOT NULL CHECK (price >= 0),
		category TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS side_dishes (
		id TEXT PRIMARY KEY,
		dish_id INT NOT NULL REFERENCES dishes(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		price INT NOT NULL CHECK (price >= 0),
		position INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		creator_id INT NOT NULL REFERENCES users(id),
		order_date DATE NOT NULL,
		time_of_order TEXT,
		state TEXT NOT NULL,
		decrease_in_percent INT NOT NULL DEFAULT 0,
		delivery_cost_per_everybody INT NOT NULL DEFAULT 0,
		delivery_cost_per_dish INT NOT NULL DEFAULT 0,
		payment_by_cash BOOLEAN NOT NULL DEFAULT TRUE,
		payment_by_bank_transfer BOOLEAN NOT NULL DEFAULT FALSE,
		bank_transfer_number TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_entries (
		id SERIAL PRIMARY KEY,
		order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		user_id INT NOT NULL REFERENCES users(id),
		payment_status TEXT NOT NULL DEFAULT 'NONE',
		UNIQUE (order_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS dish_entries (
		id TEXT PRIMARY KEY,
		order_entry_id INT NOT NULL REFERENCES order_entries(id) ON DELETE CASCADE,
		dish_id INT NOT NULL REFERENCES dishes(id),
		side_dishes JSONB NOT NULL DEFAULT '[]',
		comments TEXT,
		position INT NOT NULL
	)`,
	"CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders (order_date)",
	"CREATE INDEX IF NOT EXISTS idx_dish_entries_dish_id ON dish_entries (dish_id)",
}

func (r *PostgresRepository) EnsureSchema() error {
	for _, stmt := range schema {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
