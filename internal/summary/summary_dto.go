package summary

// DepartmentIdentity is what the resolver yields: either an authoritative
// department record or an identity inferred from employee data.
type DepartmentIdentity struct {
	ID        string
	Name      string
	Positions []string
}

// DepartmentSummary is the derived per-department view. It is rebuilt on
// every refresh and never persisted.
type DepartmentSummary struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Positions      []string `json:"positions,omitempty"`
	EmployeeCount  int      `json:"employee_count"`
	AttendanceRate int      `json:"attendance_rate"`
}

type SummariesResponse struct {
	Summaries  []DepartmentSummary `json:"summaries"`
	InProgress bool                `json:"in_progress"`
	LastError  string              `json:"last_error,omitempty"`
}
