package store

import (
	"database/sql"
	"fmt"

	"github.com/harryphilip/household-manager/internal/model"
)

type ApplianceStore struct {
	db *sql.DB
}

func NewApplianceStore(db *sql.DB) *ApplianceStore {
	return &ApplianceStore{db: db}
}

// manual_text is excluded from list queries: stored manual text can run to
// hundreds of kilobytes and is only needed for extraction.
const applianceCols = `id, name, brand, model_number, serial_number, appliance_type, room_id, purchase_date, warranty_expiry, purchase_price, manual_url, notes, created_at, updated_at`

func scanAppliance(scanner interface{ Scan(...any) error }) (*model.Appliance, error) {
	var a model.Appliance
	var roomID sql.NullInt64
	var purchaseDate, warrantyExpiry sql.NullTime
	var price sql.NullFloat64

	err := scanner.Scan(
		&a.ID, &a.Name, &a.Brand, &a.ModelNumber, &a.SerialNumber,
		&a.ApplianceType, &roomID, &purchaseDate, &warrantyExpiry, &price,
		&a.ManualURL, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if roomID.Valid {
		a.RoomID = &roomID.Int64
	}
	if purchaseDate.Valid {
		a.PurchaseDate = &purchaseDate.Time
	}
	if warrantyExpiry.Valid {
		a.WarrantyExpiry = &warrantyExpiry.Time
	}
	if price.Valid {
		a.PurchasePrice = &price.Float64
	}
	return &a, nil
}

func (s *ApplianceStore) Create(a model.Appliance) (*model.Appliance, error) {
	result, err := s.db.Exec(
		`INSERT INTO appliances (name, brand, model_number, serial_number, appliance_type, room_id, purchase_date, warranty_expiry, purchase_price, manual_url, notes) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Name, a.Brand, a.ModelNumber, a.SerialNumber, a.ApplianceType,
		nullInt64(a.RoomID), nullTime(a.PurchaseDate), nullTime(a.WarrantyExpiry), nullFloat64(a.PurchasePrice),
		a.ManualURL, a.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("insert appliance: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *ApplianceStore) GetByID(id int64) (*model.Appliance, error) {
	row := s.db.QueryRow(`SELECT `+applianceCols+` FROM appliances WHERE id = ?`, id)
	a, err := scanAppliance(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get appliance: %w", err)
	}
	return a, nil
}

func (s *ApplianceStore) List() ([]model.Appliance, error) {
	rows, err := s.db.Query(`SELECT ` + applianceCols + ` FROM appliances ORDER BY room_id ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list appliances: %w", err)
	}
	defer rows.Close()
	return collectAppliances(rows)
}

func (s *ApplianceStore) ListByRoom(roomID int64) ([]model.Appliance, error) {
	rows, err := s.db.Query(`SELECT `+applianceCols+` FROM appliances WHERE room_id = ? ORDER BY name ASC`, roomID)
	if err != nil {
		return nil, fmt.Errorf("list appliances by room: %w", err)
	}
	defer rows.Close()
	return collectAppliances(rows)
}

func collectAppliances(rows *sql.Rows) ([]model.Appliance, error) {
	var appliances []model.Appliance
	for rows.Next() {
		a, err := scanAppliance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appliance: %w", err)
		}
		appliances = append(appliances, *a)
	}
	return appliances, rows.Err()
}

func (s *ApplianceStore) Update(a model.Appliance) (*model.Appliance, error) {
	_, err := s.db.Exec(
		`UPDATE appliances SET name = ?, brand = ?, model_number = ?, serial_number = ?, appliance_type = ?, room_id = ?, purchase_date = ?, warranty_expiry = ?, purchase_price = ?, manual_url = ?, notes = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		a.Name, a.Brand, a.ModelNumber, a.SerialNumber, a.ApplianceType,
		nullInt64(a.RoomID), nullTime(a.PurchaseDate), nullTime(a.WarrantyExpiry), nullFloat64(a.PurchasePrice),
		a.ManualURL, a.Notes, a.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update appliance: %w", err)
	}
	return s.GetByID(a.ID)
}

func (s *ApplianceStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM appliances WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete appliance: %w", err)
	}
	return nil
}

// SetManualText stores the raw text extracted from an appliance's manual.
func (s *ApplianceStore) SetManualText(id int64, text string) error {
	_, err := s.db.Exec(`UPDATE appliances SET manual_text = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, text, id)
	if err != nil {
		return fmt.Errorf("set manual text: %w", err)
	}
	return nil
}

// GetManualText returns the stored manual text, empty string when none.
func (s *ApplianceStore) GetManualText(id int64) (string, error) {
	var text string
	err := s.db.QueryRow(`SELECT manual_text FROM appliances WHERE id = ?`, id).Scan(&text)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get manual text: %w", err)
	}
	return text, nil
}
