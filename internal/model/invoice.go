package model

import "time"

const (
	InvoiceCategoryApplianceRepair = "appliance_repair"
	InvoiceCategoryMaintenance     = "maintenance"
	InvoiceCategoryUtility         = "utility"
	InvoiceCategoryRenovation      = "renovation"
	InvoiceCategoryPurchase        = "purchase"
	InvoiceCategoryService         = "service"
	InvoiceCategoryOther           = "other"
)

const (
	PaymentMethodCash         = "cash"
	PaymentMethodCheck        = "check"
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodDebitCard    = "debit_card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodOther        = "other"
)

type Invoice struct {
	ID            int64      `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	VendorID      *int64     `json:"vendor_id"`
	InvoiceDate   time.Time  `json:"invoice_date"`
	DueDate       *time.Time `json:"due_date"`
	Amount        float64    `json:"amount"`
	TaxAmount     float64    `json:"tax_amount"`
	TotalAmount   float64    `json:"total_amount"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	Paid          bool       `json:"paid"`
	PaidDate      *time.Time `json:"paid_date"`
	PaymentMethod string     `json:"payment_method"`
	ApplianceID   *int64     `json:"appliance_id"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
