package store

import (
	"database/sql"
	"fmt"

	"github.com/harryphilip/household-manager/internal/model"
)

type InvoiceStore struct {
	db *sql.DB
}

func NewInvoiceStore(db *sql.DB) *InvoiceStore {
	return &InvoiceStore{db: db}
}

const invoiceCols = `id, invoice_number, vendor_id, invoice_date, due_date, amount, tax_amount, total_amount, category, description, paid, paid_date, payment_method, appliance_id, notes, created_at, updated_at`

func scanInvoice(scanner interface{ Scan(...any) error }) (*model.Invoice, error) {
	var inv model.Invoice
	var vendorID, applianceID sql.NullInt64
	var dueDate, paidDate sql.NullTime

	err := scanner.Scan(
		&inv.ID, &inv.InvoiceNumber, &vendorID, &inv.InvoiceDate, &dueDate,
		&inv.Amount, &inv.TaxAmount, &inv.TotalAmount, &inv.Category, &inv.Description,
		&inv.Paid, &paidDate, &inv.PaymentMethod, &applianceID, &inv.Notes,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if vendorID.Valid {
		inv.VendorID = &vendorID.Int64
	}
	if applianceID.Valid {
		inv.ApplianceID = &applianceID.Int64
	}
	if dueDate.Valid {
		inv.DueDate = &dueDate.Time
	}
	if paidDate.Valid {
		inv.PaidDate = &paidDate.Time
	}
	return &inv, nil
}

func (s *InvoiceStore) Create(inv model.Invoice) (*model.Invoice, error) {
	// The total defaults to amount plus tax when the caller leaves it zero.
	if inv.TotalAmount == 0 {
		inv.TotalAmount = inv.Amount + inv.TaxAmount
	}

	result, err := s.db.Exec(
		`INSERT INTO invoices (invoice_number, vendor_id, invoice_date, due_date, amount, tax_amount, total_amount, category, description, paid, paid_date, payment_method, appliance_id, notes) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.InvoiceNumber, nullInt64(inv.VendorID), inv.InvoiceDate, nullTime(inv.DueDate),
		inv.Amount, inv.TaxAmount, inv.TotalAmount, inv.Category, inv.Description,
		inv.Paid, nullTime(inv.PaidDate), inv.PaymentMethod, nullInt64(inv.ApplianceID), inv.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *InvoiceStore) GetByID(id int64) (*model.Invoice, error) {
	row := s.db.QueryRow(`SELECT `+invoiceCols+` FROM invoices WHERE id = ?`, id)
	inv, err := scanInvoice(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

func (s *InvoiceStore) List() ([]model.Invoice, error) {
	rows, err := s.db.Query(`SELECT ` + invoiceCols + ` FROM invoices ORDER BY invoice_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	return collectInvoices(rows)
}

func (s *InvoiceStore) ListByVendor(vendorID int64) ([]model.Invoice, error) {
	rows, err := s.db.Query(`SELECT `+invoiceCols+` FROM invoices WHERE vendor_id = ? ORDER BY invoice_date DESC`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list invoices by vendor: %w", err)
	}
	defer rows.Close()
	return collectInvoices(rows)
}

func (s *InvoiceStore) ListByAppliance(applianceID int64) ([]model.Invoice, error) {
	rows, err := s.db.Query(`SELECT `+invoiceCols+` FROM invoices WHERE appliance_id = ? ORDER BY invoice_date DESC`, applianceID)
	if err != nil {
		return nil, fmt.Errorf("list invoices by appliance: %w", err)
	}
	defer rows.Close()
	return collectInvoices(rows)
}

func collectInvoices(rows *sql.Rows) ([]model.Invoice, error) {
	var invoices []model.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, *inv)
	}
	return invoices, rows.Err()
}

func (s *InvoiceStore) Update(inv model.Invoice) (*model.Invoice, error) {
	if inv.TotalAmount == 0 {
		inv.TotalAmount = inv.Amount + inv.TaxAmount
	}

	_, err := s.db.Exec(
		`UPDATE invoices SET invoice_number = ?, vendor_id = ?, invoice_date = ?, due_date = ?, amount = ?, tax_amount = ?, total_amount = ?, category = ?, description = ?, paid = ?, paid_date = ?, payment_method = ?, appliance_id = ?, notes = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		inv.InvoiceNumber, nullInt64(inv.VendorID), inv.InvoiceDate, nullTime(inv.DueDate),
		inv.Amount, inv.TaxAmount, inv.TotalAmount, inv.Category, inv.Description,
		inv.Paid, nullTime(inv.PaidDate), inv.PaymentMethod, nullInt64(inv.ApplianceID), inv.Notes, inv.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return s.GetByID(inv.ID)
}

func (s *InvoiceStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
