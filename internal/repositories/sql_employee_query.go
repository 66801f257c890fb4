package repositories

var (
	queryEmployeeGetAll = `
		SELECT
			"id", "name", COALESCE("email", '') as "email",
			COALESCE("mobileMoneyNumber", '') as "mobileMoneyNumber",
			"basicSalary", COALESCE("role", '') as "role",
			"createdAt", "updatedAt"
		FROM "employee"
		ORDER BY "name" ASC;
	`

	queryEmployeeGetByID = `
		SELECT
			"id", "name", COALESCE("email", '') as "email",
			COALESCE("mobileMoneyNumber", '') as "mobileMoneyNumber",
			"basicSalary", COALESCE("role", '') as "role",
			"createdAt", "updatedAt"
		FROM "employee"
		WHERE "id" = $1;
	`

	queryEmployeeCountByMobileNumber = `
		SELECT COUNT(1) FROM "employee" WHERE "mobileMoneyNumber" = $1;
	`

	queryEmployeeStore = `
		INSERT INTO "employee"(
			"id", "name", "email", "mobileMoneyNumber", "basicSalary", "role", "createdAt", "updatedAt"
		)
		VALUES($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''), now(), now())
		RETURNING "createdAt", "updatedAt";
	`
)
