package action

import "strings"

const (
	ViewEmployees      = "View All Employees"
	AddEmployee        = "Add Employee"
	UpdateEmployeeRole = "Update Employee Role"
	ViewRoles          = "View All Roles"
	AddRole            = "Add Role"
	ViewDepartments    = "View All Departments"
	AddDepartment      = "Add Department"
)

const viewEmployeesSQL = `SELECT employee.id, employee.first_name, employee.last_name, role.title,
	department.name AS department, role.salary,
	CASE WHEN manager.id IS NULL THEN NULL
	     ELSE manager.first_name || ' ' || manager.last_name END AS manager
FROM employee
LEFT JOIN role ON employee.role_id = role.id
LEFT JOIN department ON role.department_id = department.id
LEFT JOIN employee manager ON employee.manager_id = manager.id
ORDER BY employee.id`

// Set is an ordered action table with exact-match lookup by menu label.
type Set struct {
	actions []Action
	index   map[string]int
}

func NewSet(actions ...Action) *Set {
	s := &Set{
		actions: append([]Action(nil), actions...),
		index:   make(map[string]int, len(actions)),
	}
	for i, a := range s.actions {
		s.index[a.Name] = i
	}
	return s
}

// Default returns the employee tracker's actions in menu order.
func Default() *Set {
	return NewSet(
		Action{
			Name:      ViewEmployees,
			Intro:     "Viewing all employees...",
			Statement: viewEmployeesSQL,
		},
		Action{
			Name:  AddEmployee,
			Intro: "Adding employee...",
			Fields: []Field{
				{Name: "first_name", Label: "Enter employee first name:", Kind: KindText},
				{Name: "last_name", Label: "Enter employee last name:", Kind: KindText},
				{Name: "role_id", Label: "Enter employee role ID:", Kind: KindInteger},
				{Name: "manager_id", Label: "Enter employee manager ID (blank for none):", Kind: KindInteger, Optional: true},
			},
			Statement: `INSERT INTO employee (first_name, last_name, role_id, manager_id) VALUES ($1, $2, $3, $4)`,
			Bind:      []string{"first_name", "last_name", "role_id", "manager_id"},
			Success:   "Employee added successfully.",
		},
		Action{
			Name:  UpdateEmployeeRole,
			Intro: "Updating employee role...",
			Fields: []Field{
				{Name: "employee_id", Label: "Enter employee ID:", Kind: KindInteger},
				{Name: "role_id", Label: "Enter new role ID:", Kind: KindInteger},
			},
			Statement: `UPDATE employee SET role_id = $1 WHERE id = $2`,
			Bind:      []string{"role_id", "employee_id"},
			Success:   "Employee role updated successfully.",
		},
		Action{
			Name:  ViewRoles,
			Intro: "Viewing all roles...",
			Fields: []Field{
				{Name: "department_id", Label: "Enter department ID:", Kind: KindInteger},
			},
			Statement: `SELECT * FROM role WHERE department_id = $1 ORDER BY id`,
			Bind:      []string{"department_id"},
		},
		Action{
			Name:  AddRole,
			Intro: "Adding role...",
			Fields: []Field{
				{Name: "title", Label: "Enter role title:", Kind: KindText},
				{Name: "salary", Label: "Enter role salary:", Kind: KindDecimal},
				{Name: "department_id", Label: "Enter role department ID:", Kind: KindInteger},
			},
			Statement: `INSERT INTO role (title, salary, department_id) VALUES ($1, $2, $3)`,
			Bind:      []string{"title", "salary", "department_id"},
			Success:   "Role added successfully.",
		},
		Action{
			Name:      ViewDepartments,
			Intro:     "Viewing all departments...",
			Statement: `SELECT * FROM department ORDER BY id`,
		},
		Action{
			Name:  AddDepartment,
			Intro: "Adding department...",
			Fields: []Field{
				{Name: "name", Label: "Enter department name:", Kind: KindText},
			},
			Statement: `INSERT INTO department (name) VALUES ($1)`,
			Bind:      []string{"name"},
			Success:   "Department added successfully.",
		},
	)
}

func (s *Set) Lookup(label string) (Action, bool) {
	i, ok := s.index[label]
	if !ok {
		return Action{}, false
	}
	return s.actions[i], true
}

func (s *Set) Actions() []Action {
	return append([]Action(nil), s.actions...)
}

// Menu returns every action label followed by ExitLabel.
func (s *Set) Menu() []string {
	labels := make([]string, 0, len(s.actions)+1)
	for _, a := range s.actions {
		labels = append(labels, a.Name)
	}
	return append(labels, ExitLabel)
}

// MenuQuestion is the single-choice prompt shown at the top of every loop.
func (s *Set) MenuQuestion() Question {
	return Question{
		Field:   "action",
		Label:   "What would you like to do?",
		Kind:    KindChoice,
		Options: s.Menu(),
	}
}

// ToolName converts a menu label into a snake_case identifier.
func ToolName(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}
