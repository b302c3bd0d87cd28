package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	// All statements run in one implicit transaction. IF NOT EXISTS keeps
	// repeated runs harmless.
	ddl := `
CREATE TABLE IF NOT EXISTS department (
    id   BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    name VARCHAR(30) NOT NULL,
    CONSTRAINT uq_department_name UNIQUE (name),
    CONSTRAINT ck_department_name CHECK (name <> '')
);

CREATE TABLE IF NOT EXISTS role (
    id            BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    title         VARCHAR(30) NOT NULL,
    salary        NUMERIC(12, 2) NOT NULL,
    department_id BIGINT NOT NULL REFERENCES department(id) ON DELETE CASCADE,
    CONSTRAINT uq_role_title UNIQUE (title),
    CONSTRAINT ck_role_salary CHECK (salary >= 0)
);

CREATE TABLE IF NOT EXISTS employee (
    id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    first_name VARCHAR(30) NOT NULL,
    last_name  VARCHAR(30) NOT NULL,
    role_id    BIGINT NOT NULL REFERENCES role(id) ON DELETE CASCADE,
    manager_id BIGINT REFERENCES employee(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_role_department ON role (department_id);
CREATE INDEX IF NOT EXISTS idx_employee_role ON employee (role_id);
CREATE INDEX IF NOT EXISTS idx_employee_manager ON employee (manager_id);
`
	_, err := c.pool.Exec(ctx, ddl)
	if err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
