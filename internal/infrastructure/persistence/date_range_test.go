package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/projectops"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
)

func TestTimesheetFindByDateRange(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tenantID := newTestTenant(t, db)
	project := newTestProject(t, db, tenantID)
	repo := NewGormTimesheetRepository(db, nil)
	filter := shared.ScopedTo(tenantID)

	base := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	for _, offset := range []int{0, 2, 9} {
		projectID := project.ID
		sheet := &projectops.Timesheet{
			TenantEntity: shared.NewTenantEntity(tenantID),
			ProjectID:    &projectID,
			EmployeeID:   uuid.New(),
			WorkDate:     base.AddDate(0, 0, offset),
			Hours:        decimal.NewFromInt(8),
		}
		require.NoError(t, repo.Create(ctx, sheet))
	}

	t.Run("bounds_inclusive", func(t *testing.T) {
		sheets := repo.FindByDateRange(ctx, base, base.AddDate(0, 0, 2), filter)
		assert.Len(t, sheets, 2)
	})

	t.Run("ordered_ascending", func(t *testing.T) {
		sheets := repo.FindByDateRange(ctx, base, base.AddDate(0, 0, 30), filter)
		require.Len(t, sheets, 3)
		assert.True(t, sheets[0].WorkDate.Before(sheets[2].WorkDate))
	})

	t.Run("storage_failure_degrades_to_empty", func(t *testing.T) {
		require.NoError(t, db.Migrator().DropTable(&projectops.Timesheet{}))
		sheets := repo.FindByDateRange(ctx, base, base.AddDate(0, 0, 30), filter)
		assert.NotNil(t, sheets)
		assert.Empty(t, sheets)
	})
}

func TestExpenseFindByDateRangeDegradesToEmpty(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tenantID := newTestTenant(t, db)
	repo := NewGormExpenseRepository(db, nil)

	require.NoError(t, db.Migrator().DropTable(&projectops.Expense{}))

	expenses := repo.FindByDateRange(ctx, time.Now().AddDate(0, -1, 0), time.Now(), shared.ScopedTo(tenantID))
	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
}
