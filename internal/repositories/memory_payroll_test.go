package repositories

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpena/go-payroll-disbursement/internal/models"
)

func fallbackRecord(employeeID string, status models.TransferStatus, createdAt time.Time) models.PayrollRecord {
	return models.PayrollRecord{
		TransactionID: "ref-" + employeeID,
		EmployeeID:    employeeID,
		Amount:        decimal.NewFromInt(1000),
		Status:        status,
		CreatedAt:     createdAt,
	}
}

func TestFallbackLogListFilters(t *testing.T) {
	log := NewPayrollFallbackLog()

	august := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
	july := time.Date(2026, time.July, 15, 10, 0, 0, 0, time.UTC)

	log.Append(fallbackRecord("EMP001", models.TransferStatusPending, august))
	log.Append(fallbackRecord("EMP002", models.TransferStatusFailed, august))
	log.Append(fallbackRecord("EMP001", models.TransferStatusSuccess, july))

	t.Run("filter by employee", func(t *testing.T) {
		got := log.List(models.PayrollFilterOptions{EmployeeID: "EMP001"})
		assert.Len(t, got, 2)
	})

	t.Run("filter by period", func(t *testing.T) {
		got := log.List(models.PayrollFilterOptions{Month: 8, Year: 2026})
		assert.Len(t, got, 2)
	})

	t.Run("filter by counted statuses", func(t *testing.T) {
		got := log.List(models.PayrollFilterOptions{
			EmployeeID: "EMP001",
			Month:      8,
			Year:       2026,
			Statuses:   []models.TransferStatus{models.TransferStatusPending, models.TransferStatusSuccess},
		})
		require.Len(t, got, 1)
		assert.Equal(t, models.TransferStatusPending, got[0].Status)
	})

	t.Run("no filters returns everything", func(t *testing.T) {
		assert.Len(t, log.List(models.PayrollFilterOptions{}), 3)
	})
}

func TestFallbackLogUpdateStatusByReference(t *testing.T) {
	log := NewPayrollFallbackLog()
	log.Append(fallbackRecord("EMP001", models.TransferStatusPending, time.Now()))

	before := time.Now()
	assert.True(t, log.UpdateStatusByReference("ref-EMP001", models.TransferStatusSuccess))
	got := log.List(models.PayrollFilterOptions{EmployeeID: "EMP001"})
	require.Len(t, got, 1)
	assert.Equal(t, models.TransferStatusSuccess, got[0].Status)
	// a callback touches updatedAt the same way the durable store does
	assert.False(t, got[0].UpdatedAt.Before(before))

	// unknown reference is a no-op
	assert.False(t, log.UpdateStatusByReference("ref-unknown", models.TransferStatusSuccess))
}

func TestFallbackLogConcurrentAppend(t *testing.T) {
	log := NewPayrollFallbackLog()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Append(fallbackRecord("EMP001", models.TransferStatusPending, time.Now()))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, log.Len())
}
