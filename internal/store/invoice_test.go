package store

import (
	"testing"
	"time"

	"github.com/harryphilip/household-manager/internal/database"
	"github.com/harryphilip/household-manager/internal/model"
)

func setupInvoiceTestDB(t *testing.T) (*InvoiceStore, *VendorStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewInvoiceStore(db), NewVendorStore(db)
}

func TestInvoiceCreateDefaultsTotal(t *testing.T) {
	is, _ := setupInvoiceTestDB(t)

	inv, err := is.Create(model.Invoice{
		InvoiceNumber: "INV-001",
		InvoiceDate:   date(2024, time.February, 1),
		Amount:        120.00,
		TaxAmount:     9.60,
		Category:      model.InvoiceCategoryApplianceRepair,
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if inv.TotalAmount != 129.60 {
		t.Errorf("total_amount = %v, want 129.60", inv.TotalAmount)
	}
}

func TestInvoiceExplicitTotalKept(t *testing.T) {
	is, _ := setupInvoiceTestDB(t)

	inv, err := is.Create(model.Invoice{
		InvoiceNumber: "INV-002",
		InvoiceDate:   date(2024, time.February, 1),
		Amount:        100.00,
		TaxAmount:     8.00,
		TotalAmount:   95.00, // discounted
		Category:      model.InvoiceCategoryService,
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if inv.TotalAmount != 95.00 {
		t.Errorf("total_amount = %v, want 95.00", inv.TotalAmount)
	}
}

func TestInvoiceListByVendor(t *testing.T) {
	is, vs := setupInvoiceTestDB(t)

	vendor, err := vs.Create(model.Vendor{Name: "Ace Plumbing", ServiceType: model.ServiceTypePlumbing})
	if err != nil {
		t.Fatalf("create vendor: %v", err)
	}

	mustCreate := func(number string, day int, vendorID *int64) {
		t.Helper()
		if _, err := is.Create(model.Invoice{
			InvoiceNumber: number,
			VendorID:      vendorID,
			InvoiceDate:   date(2024, time.March, day),
			Amount:        50,
			Category:      model.InvoiceCategoryService,
		}); err != nil {
			t.Fatalf("create invoice %q: %v", number, err)
		}
	}
	mustCreate("INV-A", 5, &vendor.ID)
	mustCreate("INV-B", 20, &vendor.ID)
	mustCreate("INV-C", 10, nil)

	invoices, err := is.ListByVendor(vendor.ID)
	if err != nil {
		t.Fatalf("list by vendor: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("got %d invoices, want 2", len(invoices))
	}
	// Newest first.
	if invoices[0].InvoiceNumber != "INV-B" || invoices[1].InvoiceNumber != "INV-A" {
		t.Errorf("order = [%q, %q], want [INV-B, INV-A]", invoices[0].InvoiceNumber, invoices[1].InvoiceNumber)
	}
}

func TestInvoiceVendorDeleteSetsNull(t *testing.T) {
	is, vs := setupInvoiceTestDB(t)

	vendor, err := vs.Create(model.Vendor{Name: "Volt Electric", ServiceType: model.ServiceTypeElectrical})
	if err != nil {
		t.Fatalf("create vendor: %v", err)
	}
	inv, err := is.Create(model.Invoice{
		InvoiceNumber: "INV-D",
		VendorID:      &vendor.ID,
		InvoiceDate:   date(2024, time.April, 1),
		Amount:        200,
		Category:      model.InvoiceCategoryMaintenance,
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	if err := vs.Delete(vendor.ID); err != nil {
		t.Fatalf("delete vendor: %v", err)
	}
	got, err := is.GetByID(inv.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if got == nil {
		t.Fatal("invoice should survive its vendor")
	}
	if got.VendorID != nil {
		t.Errorf("vendor_id = %v, want nil after vendor deletion", got.VendorID)
	}
}
