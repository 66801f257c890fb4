package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/vpena/go-payroll-disbursement/internal/models"
)

var (
	queryPayrollStore = `
		INSERT INTO "payroll_record"(
			"transactionId", "userId", "amount", "reason", "status", "externalId", "createdAt", "updatedAt"
		)
		VALUES($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING "id", "createdAt", "updatedAt";
	`

	queryPayrollUpdateStatus = `
		UPDATE "payroll_record"
		SET "status" = $2, "updatedAt" = now()
		WHERE "transactionId" = $1
		RETURNING
			"id", "transactionId", "userId", "amount", "reason",
			"status", "externalId", "createdAt", "updatedAt";
	`

	queryPayrollGetByTransactionID = `
		SELECT
			"id", "transactionId", "userId", "amount", "reason",
			"status", "externalId", "createdAt", "updatedAt"
		FROM "payroll_record"
		WHERE "transactionId" = $1;
	`
)

func buildListPayrollQuery(opts models.PayrollFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`"id"`,
		`"transactionId"`,
		`"userId"`,
		`"amount"`,
		`COALESCE("reason", '') as "reason"`,
		`"status"`,
		`"externalId"`,
		`"createdAt"`,
		`"updatedAt"`,
	}

	builder := sq.Select(columns...).
		From(`"payroll_record"`).
		PlaceholderFormat(sq.Dollar).
		OrderBy(`"createdAt" DESC`)

	if opts.EmployeeID != "" {
		builder = builder.Where(sq.Eq{`"userId"`: opts.EmployeeID})
	}

	if len(opts.Statuses) > 0 {
		statuses := make([]string, 0, len(opts.Statuses))
		for _, s := range opts.Statuses {
			statuses = append(statuses, s.String())
		}
		builder = builder.Where(sq.Eq{`"status"`: statuses})
	}

	if opts.HasPeriod() {
		builder = builder.
			Where(`EXTRACT(MONTH FROM "createdAt") = ?`, opts.Month).
			Where(`EXTRACT(YEAR FROM "createdAt") = ?`, opts.Year)
	}

	if opts.Limit > 0 {
		builder = builder.Limit(opts.Limit)
	}

	if opts.Offset > 0 {
		builder = builder.Offset(opts.Offset)
	}

	return builder.ToSql()
}
