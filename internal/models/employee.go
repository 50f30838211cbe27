package models

type Employee struct {
	ID          uint   `json:"employee_id" gorm:"column:employeeid;primaryKey;autoIncrement:false"`
	Name        string `json:"employee_name" gorm:"column:employeename;not null"`
	Role        string `json:"employee_role" gorm:"column:employeerole"`
	HoursWorked int    `json:"hours_worked" gorm:"column:hoursworked"`
}

func (Employee) TableName() string {
	return "employees"
}
