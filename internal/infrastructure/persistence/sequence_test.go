package persistence

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/billing"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/procurement"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
)

func TestQuoteNumberFormat(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tenantID := newTestTenant(t, db)
	project := newTestProject(t, db, tenantID)
	repo := NewGormQuoteRepository(db)

	quote := &billing.Quote{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   tenantID,
		ProjectID:  project.ID,
		CustomerID: project.CustomerID,
		Status:     billing.QuoteStatusDraft,
		IssueDate:  time.Now(),
	}
	require.NoError(t, repo.Create(ctx, quote))

	expected := fmt.Sprintf("QT-%s-%d-0001", tenantID.String()[:8], time.Now().Year())
	assert.Equal(t, expected, quote.QuoteNumber)
}

func TestQuoteNumberSequencePerTenant(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tenantA := newTestTenant(t, db)
	tenantB := newTestTenant(t, db)
	projectA := newTestProject(t, db, tenantA)
	projectB := newTestProject(t, db, tenantB)
	repo := NewGormQuoteRepository(db)

	for i := 0; i < 3; i++ {
		quote := &billing.Quote{
			BaseEntity: shared.NewBaseEntity(),
			TenantID:   tenantA,
			ProjectID:  projectA.ID,
			CustomerID: projectA.CustomerID,
			IssueDate:  time.Now(),
		}
		require.NoError(t, repo.Create(ctx, quote))
		assert.Equal(t, fmt.Sprintf("QT-%s-%d-%04d", tenantA.String()[:8], time.Now().Year(), i+1), quote.QuoteNumber)
	}

	// The second tenant's sequence is independent
	quote := &billing.Quote{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   tenantB,
		ProjectID:  projectB.ID,
		CustomerID: projectB.CustomerID,
		IssueDate:  time.Now(),
	}
	require.NoError(t, repo.Create(ctx, quote))
	assert.Equal(t, fmt.Sprintf("QT-%s-%d-0001", tenantB.String()[:8], time.Now().Year()), quote.QuoteNumber)
}

func TestQuoteNumberUniqueUnderConcurrentCreates(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tenantID := newTestTenant(t, db)
	project := newTestProject(t, db, tenantID)
	repo := NewGormQuoteRepository(db)

	const n = 10
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			quote := &billing.Quote{
				BaseEntity: shared.NewBaseEntity(),
				TenantID:   tenantID,
				ProjectID:  project.ID,
				CustomerID: project.CustomerID,
				IssueDate:  time.Now(),
			}
			errs[i] = repo.Create(ctx, quote)
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
		} else {
			// A loser past the retry budget reports the conflict, it
			// never writes a duplicate.
			assert.ErrorIs(t, err, shared.ErrDuplicateKey)
		}
	}

	var numbers []string
	require.NoError(t, db.Model(&billing.Quote{}).Pluck("quote_number", &numbers).Error)
	require.Len(t, numbers, created)

	seen := make(map[string]bool, len(numbers))
	for _, number := range numbers {
		assert.False(t, seen[number], "duplicate quote number %s", number)
		seen[number] = true
	}
}

func TestInvoiceAndPurchaseOrderNumberPrefixes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tenantID := newTestTenant(t, db)
	project := newTestProject(t, db, tenantID)

	invoiceRepo := NewGormInvoiceRepository(db, nil)
	invoice := &billing.Invoice{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   tenantID,
		ProjectID:  project.ID,
		CustomerID: project.CustomerID,
		IssueDate:  time.Now(),
	}
	require.NoError(t, invoiceRepo.Create(ctx, invoice))
	assert.Equal(t, fmt.Sprintf("INV-%s-%d-0001", tenantID.String()[:8], time.Now().Year()), invoice.InvoiceNumber)

	poRepo := NewGormPurchaseOrderRepository(db)
	order := &procurement.PurchaseOrder{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   tenantID,
		SupplierID: project.CustomerID,
		OrderDate:  time.Now(),
	}
	require.NoError(t, poRepo.Create(ctx, order))
	assert.Equal(t, fmt.Sprintf("PO-%s-%d-0001", tenantID.String()[:8], time.Now().Year()), order.PONumber)
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		number string
		seq    int
		ok     bool
	}{
		{"QT-a1b2c3d4-2026-0042", 42, true},
		{"INV-a1b2c3d4-2026-0001", 1, true},
		{"garbage", 0, false},
		{"QT-a1b2c3d4-2026-", 0, false},
	}
	for _, tt := range tests {
		seq, ok := parseSequence(tt.number)
		assert.Equal(t, tt.ok, ok, tt.number)
		if tt.ok {
			assert.Equal(t, tt.seq, seq, tt.number)
		}
	}
}
