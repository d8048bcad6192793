package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	quoteLine := &QuoteItem{
		Quantity:  decimal.NewFromInt(3),
		UnitPrice: decimal.NewFromFloat(12.50),
	}
	assert.True(t, quoteLine.LineTotal().Equal(decimal.NewFromFloat(37.50)))

	invoiceLine := &InvoiceItem{
		Quantity:  decimal.NewFromFloat(1.5),
		UnitPrice: decimal.NewFromInt(100),
	}
	assert.True(t, invoiceLine.LineTotal().Equal(decimal.NewFromInt(150)))
}

func TestCanDeleteResultConstructors(t *testing.T) {
	allow := Deletable()
	assert.True(t, allow.CanDelete)
	assert.Empty(t, allow.Reason)

	deny := NotDeletable(ReasonQuoteConverted)
	assert.False(t, deny.CanDelete)
	assert.Equal(t, ReasonQuoteConverted, deny.Reason)
}
