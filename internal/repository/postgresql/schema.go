package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/database"
)

// Schema creates the tables the repositories in this package read and write.
// Every statement is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS employees (
	id              CHAR(6) PRIMARY KEY,
	name            TEXT NOT NULL,
	position        TEXT NOT NULL,
	base_salary     NUMERIC(14, 2) NOT NULL CHECK (base_salary > 0),
	work_start_time VARCHAR(5) NOT NULL,
	work_end_time   VARCHAR(5) NOT NULL,
	join_date       DATE NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS attendance_entries (
	id            UUID PRIMARY KEY,
	employee_id   CHAR(6) NOT NULL REFERENCES employees (id),
	work_date     DATE NOT NULL,
	check_in      VARCHAR(5),
	check_out     VARCHAR(5),
	is_late       BOOLEAN NOT NULL DEFAULT FALSE,
	employee_name TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (employee_id, work_date)
);

CREATE INDEX IF NOT EXISTS idx_attendance_entries_work_date ON attendance_entries (work_date);
`

// Migrate applies Schema.
func Migrate(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
