package validate

import (
	"context"
	"fmt"
	"sort"

	"employeetracker/internal/store"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeManagerCycle    = "manager_cycle"
	codeEmptyDepartment = "empty_department"
	codeUnfilledRole    = "unfilled_role"
)

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	Entity   string
}

type Report struct {
	Issues []Issue
}

func (r *Report) Errors() []Issue {
	return r.filter(SeverityError)
}

func (r *Report) Warnings() []Issue {
	return r.filter(SeverityWarn)
}

func (r *Report) filter(severity Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// Run checks the integrity concerns the menu actions leave to the data:
// reporting cycles, departments without roles and roles nobody holds.
func Run(ctx context.Context, db store.Executor) (*Report, error) {
	if db == nil {
		return nil, fmt.Errorf("store is required")
	}

	issues := make([]Issue, 0)

	employees, err := db.Execute(ctx, `SELECT id, first_name, last_name, manager_id FROM employee ORDER BY id`, nil)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	issues = append(issues, managerCycles(employees)...)

	departments, err := db.Execute(ctx, `SELECT department.id, department.name FROM department
LEFT JOIN role ON role.department_id = department.id
WHERE role.id IS NULL ORDER BY department.id`, nil)
	if err != nil {
		return nil, fmt.Errorf("list empty departments: %w", err)
	}
	for _, row := range departments.Rows {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeEmptyDepartment,
			Message:  "department has no roles",
			Entity:   fmt.Sprintf("department %v (%v)", row["id"], row["name"]),
		})
	}

	roles, err := db.Execute(ctx, `SELECT role.id, role.title FROM role
LEFT JOIN employee ON employee.role_id = role.id
WHERE employee.id IS NULL ORDER BY role.id`, nil)
	if err != nil {
		return nil, fmt.Errorf("list unfilled roles: %w", err)
	}
	for _, row := range roles.Rows {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeUnfilledRole,
			Message:  "role has no employees",
			Entity:   fmt.Sprintf("role %v (%v)", row["id"], row["title"]),
		})
	}

	return &Report{Issues: issues}, nil
}

func managerCycles(res *store.Result) []Issue {
	managers := make(map[int64]int64)
	names := make(map[int64]string)
	var ids []int64
	for _, row := range res.Rows {
		id, ok := toInt64(row["id"])
		if !ok {
			continue
		}
		ids = append(ids, id)
		names[id] = fmt.Sprintf("%v %v", row["first_name"], row["last_name"])
		if manager, ok := toInt64(row["manager_id"]); ok {
			managers[id] = manager
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[int64]int, len(ids))
	inCycle := make(map[int64]bool)

	for _, start := range ids {
		var path []int64
		cur := start
		looped := false
		for state[cur] == unvisited {
			state[cur] = visiting
			path = append(path, cur)
			next, ok := managers[cur]
			if !ok {
				break
			}
			cur = next
			looped = state[cur] == visiting
		}
		if looped {
			for i := len(path) - 1; i >= 0; i-- {
				inCycle[path[i]] = true
				if path[i] == cur {
					break
				}
			}
		}
		for _, id := range path {
			state[id] = done
		}
	}

	cycleIDs := make([]int64, 0, len(inCycle))
	for id := range inCycle {
		cycleIDs = append(cycleIDs, id)
	}
	sort.Slice(cycleIDs, func(i, j int) bool { return cycleIDs[i] < cycleIDs[j] })

	issues := make([]Issue, 0, len(cycleIDs))
	for _, id := range cycleIDs {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     codeManagerCycle,
			Message:  fmt.Sprintf("reporting chain loops back through manager %d", managers[id]),
			Entity:   fmt.Sprintf("employee %d (%s)", id, names[id]),
		})
	}
	return issues
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
