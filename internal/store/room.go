package store

import (
	"database/sql"
	"fmt"

	"github.com/harryphilip/household-manager/internal/model"
)

type RoomStore struct {
	db *sql.DB
}

func NewRoomStore(db *sql.DB) *RoomStore {
	return &RoomStore{db: db}
}

const roomCols = `id, name, room_type, floor, square_feet, description, created_at, updated_at`

func scanRoom(scanner interface{ Scan(...any) error }) (*model.Room, error) {
	var r model.Room
	var sqFt sql.NullFloat64

	err := scanner.Scan(&r.ID, &r.Name, &r.RoomType, &r.Floor, &sqFt, &r.Description, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if sqFt.Valid {
		r.SquareFeet = &sqFt.Float64
	}
	return &r, nil
}

func (s *RoomStore) Create(name, roomType string, floor int, squareFeet *float64, description string) (*model.Room, error) {
	var sqFt sql.NullFloat64
	if squareFeet != nil {
		sqFt = sql.NullFloat64{Float64: *squareFeet, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO rooms (name, room_type, floor, square_feet, description) VALUES (?, ?, ?, ?, ?)`,
		name, roomType, floor, sqFt, description,
	)
	if err != nil {
		return nil, fmt.Errorf("insert room: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *RoomStore) GetByID(id int64) (*model.Room, error) {
	row := s.db.QueryRow(`SELECT `+roomCols+` FROM rooms WHERE id = ?`, id)
	r, err := scanRoom(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	return r, nil
}

func (s *RoomStore) List() ([]model.Room, error) {
	rows, err := s.db.Query(`SELECT ` + roomCols + ` FROM rooms ORDER BY floor ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, *r)
	}
	return rooms, rows.Err()
}

func (s *RoomStore) Update(id int64, name, roomType string, floor int, squareFeet *float64, description string) (*model.Room, error) {
	var sqFt sql.NullFloat64
	if squareFeet != nil {
		sqFt = sql.NullFloat64{Float64: *squareFeet, Valid: true}
	}

	_, err := s.db.Exec(
		`UPDATE rooms SET name = ?, room_type = ?, floor = ?, square_feet = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		name, roomType, floor, sqFt, description, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}
	return s.GetByID(id)
}

func (s *RoomStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
