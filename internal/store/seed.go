package store

import (
	"context"
	"fmt"
)

type Executor interface {
	Execute(ctx context.Context, statement string, params []any) (*Result, error)
}

type seedDepartment struct {
	name  string
	roles []seedRole
}

type seedRole struct {
	title  string
	salary float64
}

type seedEmployee struct {
	first, last string
	role        string
	manager     [2]string
}

var seedDepartments = []seedDepartment{
	{name: "Engineering", roles: []seedRole{{"Lead Engineer", 150000}, {"Software Engineer", 120000}}},
	{name: "Finance", roles: []seedRole{{"Account Manager", 160000}, {"Accountant", 125000}}},
	{name: "Legal", roles: []seedRole{{"Legal Team Lead", 250000}, {"Lawyer", 190000}}},
	{name: "Sales", roles: []seedRole{{"Sales Lead", 100000}, {"Salesperson", 80000}}},
}

var seedEmployees = []seedEmployee{
	{first: "Ashley", last: "Rodriguez", role: "Lead Engineer"},
	{first: "Kevin", last: "Tupik", role: "Software Engineer", manager: [2]string{"Ashley", "Rodriguez"}},
	{first: "Kunal", last: "Singh", role: "Account Manager"},
	{first: "Malia", last: "Brown", role: "Accountant", manager: [2]string{"Kunal", "Singh"}},
	{first: "Sarah", last: "Lourd", role: "Legal Team Lead"},
	{first: "Tom", last: "Allen", role: "Lawyer", manager: [2]string{"Sarah", "Lourd"}},
	{first: "John", last: "Doe", role: "Sales Lead"},
	{first: "Mike", last: "Chan", role: "Salesperson", manager: [2]string{"John", "Doe"}},
}

// SeedSampleData inserts a small sample company. It does nothing when any
// department already exists.
func SeedSampleData(ctx context.Context, db Executor) error {
	res, err := db.Execute(ctx, `SELECT COUNT(*) AS n FROM department`, nil)
	if err != nil {
		return fmt.Errorf("checking existing departments: %w", err)
	}
	if res.Len() > 0 && fmt.Sprint(res.Rows[0]["n"]) != "0" {
		return nil
	}

	for _, d := range seedDepartments {
		if _, err := db.Execute(ctx, `INSERT INTO department (name) VALUES ($1)`, []any{d.name}); err != nil {
			return fmt.Errorf("seeding department %s: %w", d.name, err)
		}
		for _, r := range d.roles {
			_, err := db.Execute(ctx,
				`INSERT INTO role (title, salary, department_id) VALUES ($1, $2, (SELECT id FROM department WHERE name = $3))`,
				[]any{r.title, r.salary, d.name})
			if err != nil {
				return fmt.Errorf("seeding role %s: %w", r.title, err)
			}
		}
	}

	for _, e := range seedEmployees {
		var manager any
		if e.manager[0] != "" {
			res, err := db.Execute(ctx,
				`SELECT id FROM employee WHERE first_name = $1 AND last_name = $2`,
				[]any{e.manager[0], e.manager[1]})
			if err != nil {
				return fmt.Errorf("looking up manager for %s %s: %w", e.first, e.last, err)
			}
			if res.Len() == 0 {
				return fmt.Errorf("seeding employee %s %s: manager %s %s not found", e.first, e.last, e.manager[0], e.manager[1])
			}
			manager = res.Rows[0]["id"]
		}
		_, err := db.Execute(ctx,
			`INSERT INTO employee (first_name, last_name, role_id, manager_id) VALUES ($1, $2, (SELECT id FROM role WHERE title = $3), $4)`,
			[]any{e.first, e.last, e.role, manager})
		if err != nil {
			return fmt.Errorf("seeding employee %s %s: %w", e.first, e.last, err)
		}
	}
	return nil
}
