package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", ValidateSortOrder("asc"))
	assert.Equal(t, "ASC", ValidateSortOrder(" ASC "))
	assert.Equal(t, "DESC", ValidateSortOrder("desc"))
	assert.Equal(t, "DESC", ValidateSortOrder(""))
	assert.Equal(t, "DESC", ValidateSortOrder("ascending; DROP TABLE users"))
}

func TestValidateSortField(t *testing.T) {
	t.Run("allowed_field_passes", func(t *testing.T) {
		assert.Equal(t, "quote_number", ValidateSortField("quote_number", QuoteSortFields, "created_at"))
	})

	t.Run("empty_falls_back", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("", QuoteSortFields, "created_at"))
		assert.Equal(t, "created_at", ValidateSortField("   ", QuoteSortFields, "created_at"))
	})

	t.Run("unknown_field_falls_back", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("password", UserSortFields, "created_at"))
		assert.Equal(t, "created_at", ValidateSortField("name; DROP TABLE quotes", QuoteSortFields, "created_at"))
	})

	t.Run("whitelists_differ_per_entity", func(t *testing.T) {
		assert.Equal(t, "sku", ValidateSortField("sku", InventoryItemSortFields, "created_at"))
		assert.Equal(t, "created_at", ValidateSortField("sku", QuoteSortFields, "created_at"))
	})
}
