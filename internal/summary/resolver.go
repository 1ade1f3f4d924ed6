package summary

import (
	"context"
	"strings"

	"go-attendance/internal/department"
	"go-attendance/internal/employee"
)

// Resolver decides the authoritative department list. The departments
// collection wins whenever it is non-empty; otherwise identities are
// inferred from the distinct department names on employee records, so the
// summary view stays useful before any department has been registered.
type Resolver struct {
	departments department.Repository
	employees   employee.Repository
}

func NewResolver(departments department.Repository, employees employee.Repository) *Resolver {
	return &Resolver{departments: departments, employees: employees}
}

func (r *Resolver) Resolve(ctx context.Context) ([]DepartmentIdentity, error) {
	depts, err := r.departments.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(depts) > 0 {
		out := make([]DepartmentIdentity, len(depts))
		for i, d := range depts {
			out[i] = DepartmentIdentity{
				ID:        d.ID.String(),
				Name:      d.Name,
				Positions: d.PositionTitles(),
			}
		}
		return out, nil
	}

	rows, err := r.employees.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// Distinctness is case-sensitive: "Sales" and "sales" stay separate
	// identities because that is how the records are stored.
	seen := make(map[string]struct{}, len(rows))
	var out []DepartmentIdentity
	for _, e := range rows {
		name := e.Department
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, DepartmentIdentity{
			ID:   Slugify(name),
			Name: name,
		})
	}
	return out, nil
}

// Slugify lowercases a name and collapses whitespace runs into single
// hyphens, e.g. "Customer  Support" -> "customer-support".
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
