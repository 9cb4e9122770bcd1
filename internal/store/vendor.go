package store

import (
	"database/sql"
	"fmt"

	"github.com/harryphilip/household-manager/internal/model"
)

type VendorStore struct {
	db *sql.DB
}

func NewVendorStore(db *sql.DB) *VendorStore {
	return &VendorStore{db: db}
}

const vendorCols = `id, name, contact_person, email, phone, address, website, service_type, notes, created_at, updated_at`

func scanVendor(scanner interface{ Scan(...any) error }) (*model.Vendor, error) {
	var v model.Vendor
	err := scanner.Scan(
		&v.ID, &v.Name, &v.ContactPerson, &v.Email, &v.Phone,
		&v.Address, &v.Website, &v.ServiceType, &v.Notes,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VendorStore) Create(v model.Vendor) (*model.Vendor, error) {
	result, err := s.db.Exec(
		`INSERT INTO vendors (name, contact_person, email, phone, address, website, service_type, notes) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Name, v.ContactPerson, v.Email, v.Phone, v.Address, v.Website, v.ServiceType, v.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("insert vendor: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *VendorStore) GetByID(id int64) (*model.Vendor, error) {
	row := s.db.QueryRow(`SELECT `+vendorCols+` FROM vendors WHERE id = ?`, id)
	v, err := scanVendor(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return v, nil
}

func (s *VendorStore) List() ([]model.Vendor, error) {
	rows, err := s.db.Query(`SELECT ` + vendorCols + ` FROM vendors ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []model.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, *v)
	}
	return vendors, rows.Err()
}

func (s *VendorStore) Update(v model.Vendor) (*model.Vendor, error) {
	_, err := s.db.Exec(
		`UPDATE vendors SET name = ?, contact_person = ?, email = ?, phone = ?, address = ?, website = ?, service_type = ?, notes = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		v.Name, v.ContactPerson, v.Email, v.Phone, v.Address, v.Website, v.ServiceType, v.Notes, v.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update vendor: %w", err)
	}
	return s.GetByID(v.ID)
}

func (s *VendorStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM vendors WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}
