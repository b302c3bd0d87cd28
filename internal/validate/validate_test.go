package validate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"employeetracker/internal/store"
	"employeetracker/internal/store/sqlite"
)

type mockStore struct {
	employees   *store.Result
	departments *store.Result
	roles       *store.Result
	err         error
}

func (m *mockStore) Execute(ctx context.Context, statement string, params []any) (*store.Result, error) {
	if m.err != nil {
		return nil, m.err
	}
	switch {
	case strings.Contains(statement, "FROM employee"):
		return orEmpty(m.employees), nil
	case strings.Contains(statement, "FROM department"):
		return orEmpty(m.departments), nil
	default:
		return orEmpty(m.roles), nil
	}
}

func orEmpty(res *store.Result) *store.Result {
	if res == nil {
		return &store.Result{}
	}
	return res
}

func employee(id int64, first string, manager any) store.Row {
	return store.Row{"id": id, "first_name": first, "last_name": "Test", "manager_id": manager}
}

func TestRunDetectsManagerCycles(t *testing.T) {
	db := &mockStore{employees: &store.Result{Rows: []store.Row{
		employee(1, "Ana", nil),
		employee(2, "Ben", int64(1)),
		employee(3, "Cy", int64(4)),
		employee(4, "Di", int64(5)),
		employee(5, "Ed", int64(3)),
		employee(6, "Flo", int64(3)),
		employee(7, "Gus", int64(7)),
	}}}

	report, err := Run(context.Background(), db)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	errs := report.Errors()
	if len(errs) != 4 {
		t.Fatalf("expected 4 cycle issues, got %d: %+v", len(errs), errs)
	}
	for i, want := range []string{"employee 3 ", "employee 4 ", "employee 5 ", "employee 7 "} {
		if !strings.HasPrefix(errs[i].Entity, want) {
			t.Errorf("issue %d entity = %q, want prefix %q", i, errs[i].Entity, want)
		}
		if errs[i].Code != codeManagerCycle {
			t.Errorf("issue %d code = %q", i, errs[i].Code)
		}
	}
}

func TestRunReportsEmptyDepartmentsAndRoles(t *testing.T) {
	db := &mockStore{
		departments: &store.Result{Rows: []store.Row{{"id": int64(9), "name": "Research"}}},
		roles:       &store.Result{Rows: []store.Row{{"id": int64(4), "title": "Intern"}}},
	}

	report, err := Run(context.Background(), db)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Errors()) != 0 {
		t.Fatalf("expected no errors, got %+v", report.Errors())
	}
	warnings := report.Warnings()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}
	if warnings[0].Code != codeEmptyDepartment || warnings[0].Entity != "department 9 (Research)" {
		t.Errorf("unexpected department warning %+v", warnings[0])
	}
	if warnings[1].Code != codeUnfilledRole || warnings[1].Entity != "role 4 (Intern)" {
		t.Errorf("unexpected role warning %+v", warnings[1])
	}
}

func TestRunPropagatesStoreErrors(t *testing.T) {
	if _, err := Run(context.Background(), &mockStore{err: errors.New("boom")}); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunAgainstSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.New(ctx, "sqlite://:memory:")
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	defer db.Release(ctx)
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensuring schema: %v", err)
	}
	if err := db.Seed(ctx); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	report, err := Run(ctx, db)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("expected clean seed data, got %+v", report.Issues)
	}

	if _, err := db.Execute(ctx, "UPDATE employee SET manager_id = $1 WHERE id = $2", []any{int64(2), int64(1)}); err != nil {
		t.Fatalf("creating cycle: %v", err)
	}
	report, err = Run(ctx, db)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Errors()) != 2 {
		t.Fatalf("expected two employees in a cycle, got %+v", report.Errors())
	}
}
