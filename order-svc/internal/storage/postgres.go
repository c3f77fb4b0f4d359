package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"team-lunch/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetUser(id int) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(`
		SELECT id, username, COALESCE(email, ''), team_id
		FROM users
		WHERE id = $1`, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.TeamID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"INSERT INTO restaurants (team_id, name, address, telephone, url) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at",
		rest.TeamID, rest.Name, rest.Address, rest.Telephone, rest.URL,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants(teamID int) ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, team_id, name, COALESCE(address, ''), COALESCE(telephone, ''), COALESCE(url, ''), created_at
		FROM restaurants
		WHERE team_id = $1
		ORDER BY name`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.TeamID, &rest.Name, &rest.Address, &rest.Telephone, &rest.URL, &rest.CreatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, team_id, name, COALESCE(address, ''), COALESCE(telephone, ''), COALESCE(url, ''), created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.TeamID, &rest.Name, &rest.Address, &rest.Telephone, &rest.URL, &rest.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	_, err := r.DB.Exec(
		"UPDATE restaurants SET name=$1, address=$2, telephone=$3, url=$4 WHERE id=$5",
		rest.Name, rest.Address, rest.Telephone, rest.URL, rest.ID)
	return err
}

func (r *PostgresRepository) DeleteRestaurant(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM restaurants WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CountDishesByRestaurant(teamID int) (map[int]int, error) {
	rows, err := r.DB.Query(`
		SELECT d.restaurant_id, COUNT(*)
		FROM dishes d
		JOIN restaurants r ON r.id = d.restaurant_id
		WHERE r.team_id = $1
		GROUP BY d.restaurant_id`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var restaurantID, count int
		if err := rows.Scan(&restaurantID, &count); err != nil {
			return nil, err
		}
		counts[restaurantID] = count
	}
	return counts, rows.Err()
}

// CreateDish inserts the dish together with its side dishes.
func (r *PostgresRepository) CreateDish(dish *domain.Dish) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO dishes (restaurant_id, name, price, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, dish.RestaurantID, dish.Name, dish.Price, dish.Category).Scan(&dish.ID, &dish.CreatedAt); err != nil {
		return err
	}

	if err := insertSideDishes(tx, dish.ID, dish.SideDishes); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresRepository) GetDish(id int) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, price, COALESCE(category, ''), created_at
		FROM dishes
		WHERE id = $1`, id).
		Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Price, &dish.Category, &dish.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sideDishes, err := r.loadSideDishes([]int{dish.ID})
	if err != nil {
		return nil, err
	}
	dish.SideDishes = sideDishes[dish.ID]
	return &dish, nil
}

func (r *PostgresRepository) ListDishes(restaurantID int) ([]domain.Dish, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, price, COALESCE(category, ''), created_at
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	var ids []int
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Price, &dish.Category, &dish.CreatedAt); err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
		ids = append(ids, dish.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return dishes, nil
	}

	sideDishes, err := r.loadSideDishes(ids)
	if err != nil {
		return nil, err
	}
	for i := range dishes {
		dishes[i].SideDishes = sideDishes[dishes[i].ID]
	}
	return dishes, nil
}

// UpdateDish rewrites the dish row and replaces its side dish list.
func (r *PostgresRepository) UpdateDish(dish *domain.Dish) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		UPDATE dishes
		SET name=$1, price=$2, category=$3
		WHERE id=$4`,
		dish.Name, dish.Price, dish.Category, dish.ID); err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM side_dishes WHERE dish_id=$1", dish.ID); err != nil {
		return err
	}
	if err := insertSideDishes(tx, dish.ID, dish.SideDishes); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresRepository) DeleteDish(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM dishes WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// AddSideDish appends a side dish at the end of the dish's list.
func (r *PostgresRepository) AddSideDish(dishID int, sideDish domain.SideDish) error {
	_, err := r.DB.Exec(`
		INSERT INTO side_dishes (id, dish_id, name, price, position)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position) + 1, 0) FROM side_dishes WHERE dish_id = $2))`,
		sideDish.ID, dishID, sideDish.Name, sideDish.Price)
	return err
}

func (r *PostgresRepository) CountDishEntriesForDish(dishID int) (int, error) {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM dish_entries WHERE dish_id = $1", dishID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) loadSideDishes(dishIDs []int) (map[int][]domain.SideDish, error) {
	rows, err := r.DB.Query(`
		SELECT dish_id, id, name, price
		FROM side_dishes
		WHERE dish_id = ANY($1)
		ORDER BY dish_id, position`, pq.Array(dishIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int][]domain.SideDish, len(dishIDs))
	for _, id := range dishIDs {
		result[id] = []domain.SideDish{}
	}
	for rows.Next() {
		var dishID int
		var sd domain.SideDish
		if err := rows.Scan(&dishID, &sd.ID, &sd.Name, &sd.Price); err != nil {
			return nil, err
		}
		result[dishID] = append(result[dishID], sd)
	}
	return result, rows.Err()
}

func insertSideDishes(tx *sql.Tx, dishID int, sideDishes []domain.SideDish) error {
	for i, sd := range sideDishes {
		if _, err := tx.Exec(`
			INSERT INTO side_dishes (id, dish_id, name, price, position)
			VALUES ($1, $2, $3, $4, $5)
		`, sd.ID, dishID, sd.Name, sd.Price, i); err != nil {
			return fmt.Errorf("insert side dish %s: %w", sd.ID, err)
		}
	}
	return nil
}
