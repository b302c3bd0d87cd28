package sqlite

import (
	"context"
	"fmt"
	"strings"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS department (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		CONSTRAINT uq_department_name UNIQUE (name),
		CONSTRAINT ck_department_name CHECK (name <> '')
	);

	CREATE TABLE IF NOT EXISTS role (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		title         TEXT NOT NULL,
		salary        REAL NOT NULL,
		department_id INTEGER NOT NULL REFERENCES department(id) ON DELETE CASCADE,
		CONSTRAINT uq_role_title UNIQUE (title),
		CONSTRAINT ck_role_salary CHECK (salary >= 0)
	);

	CREATE TABLE IF NOT EXISTS employee (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL,
		role_id    INTEGER NOT NULL REFERENCES role(id) ON DELETE CASCADE,
		manager_id INTEGER REFERENCES employee(id) ON DELETE SET NULL
	);

	CREATE INDEX IF NOT EXISTS idx_role_department ON role (department_id);
	CREATE INDEX IF NOT EXISTS idx_employee_role ON employee (role_id);
	CREATE INDEX IF NOT EXISTS idx_employee_manager ON employee (manager_id);
	`

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	statements := splitStatements(ddl)
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}

	return nil
}

func splitStatements(ddl string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(ddl, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(stripped, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		statements = append(statements, current.String())
	}

	return statements
}
