package model

// Department is owned by the department service.
type Department struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	DepartmentName string `json:"departmentName" gorm:"size:255"`
}

// TableName keeps the singular table name of the existing schema.
func (Department) TableName() string {
	return "department"
}
