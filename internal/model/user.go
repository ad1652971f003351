package model

// User is owned by the user service. DepartmentID is a soft reference that is
// never checked on write; Department is filled in only on single-record reads.
type User struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	FirstName    string      `json:"firstName" gorm:"size:255"`
	LastName     string      `json:"lastName" gorm:"size:255"`
	Gender       string      `json:"gender" gorm:"size:50"`
	Age          int         `json:"age"`
	DepartmentID uint        `json:"departmentId" gorm:"index"`
	Department   *Department `json:"department" gorm:"-"` // never persisted
}

// TableName keeps the singular table name of the existing schema.
func (User) TableName() string {
	return "user"
}
