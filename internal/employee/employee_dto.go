package employee

type CreateEmployeeRequest struct {
	Name       string `form:"name" json:"name" binding:"required"`
	Department string `form:"department" json:"department" binding:"required"`
	Salary     string `form:"salary" json:"salary" binding:"omitempty,numeric"`
	StartDate  string `form:"start_date" json:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateEmployeeRequest struct {
	Name       string `form:"name" json:"name" binding:"required"`
	Department string `form:"department" json:"department" binding:"required"`
	Salary     string `form:"salary" json:"salary" binding:"omitempty,numeric"`
	StartDate  string `form:"start_date" json:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

type EmployeeResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Salary     string `json:"salary,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
}
