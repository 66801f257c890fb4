package repositories

import (
	"sync"
	"time"

	"github.com/vpena/go-payroll-disbursement/internal/models"
)

// PayrollFallbackLog is the degraded-mode store. Records land here when
// the database write keeps failing, so an outage never loses track of
// money that already moved. Contents do not survive a restart.
type PayrollFallbackLog interface {
	Append(record models.PayrollRecord)
	List(opts models.PayrollFilterOptions) []models.PayrollRecord
	UpdateStatusByReference(transactionID string, status models.TransferStatus) bool
	Len() int
}

type payrollFallbackLog struct {
	mu      sync.RWMutex
	records []models.PayrollRecord
}

func NewPayrollFallbackLog() PayrollFallbackLog {
	return &payrollFallbackLog{}
}

func (l *payrollFallbackLog) Append(record models.PayrollRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	record.ID = uint64(len(l.records) + 1)
	l.records = append(l.records, record)
}

func (l *payrollFallbackLog) List(opts models.PayrollFilterOptions) []models.PayrollRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var result []models.PayrollRecord
	for _, rec := range l.records {
		if opts.EmployeeID != "" && rec.EmployeeID != opts.EmployeeID {
			continue
		}
		if opts.HasPeriod() {
			if int(rec.CreatedAt.Month()) != opts.Month || rec.CreatedAt.Year() != opts.Year {
				continue
			}
		}
		if len(opts.Statuses) > 0 && !containsStatus(opts.Statuses, rec.Status) {
			continue
		}
		result = append(result, rec)
	}
	return result
}

func (l *payrollFallbackLog) UpdateStatusByReference(transactionID string, status models.TransferStatus) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.records {
		if l.records[i].TransactionID == transactionID {
			l.records[i].Status = status
			l.records[i].UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

func (l *payrollFallbackLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

func containsStatus(statuses []models.TransferStatus, status models.TransferStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
