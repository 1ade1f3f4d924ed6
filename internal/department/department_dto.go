package department

type CreateDepartmentRequest struct {
	Name      string   `json:"name" binding:"required"`
	Positions []string `json:"positions"`
}

type DepartmentResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Positions []string `json:"positions"`
	CreatedAt string   `json:"created_at,omitempty"`
}
