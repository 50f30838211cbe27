package models

import "time"

// Order is one completed sale. CustomerID is nil for walk-in customers.
// Orders are written exactly once by the submission transaction and never
// mutated afterwards.
type Order struct {
	ID          uint      `json:"order_id" gorm:"column:orderid;primaryKey;autoIncrement:false"`
	TimeOfOrder time.Time `json:"time_of_order" gorm:"column:timeoforder"`
	CustomerID  *uint     `json:"customer_id" gorm:"column:customerid"`
	EmployeeID  uint      `json:"employee_id" gorm:"column:employeeid;not null"`
	TotalCost   float64   `json:"total_cost" gorm:"column:totalcost"`
	OrderWeek   int       `json:"order_week" gorm:"column:orderweek"`
}

func (Order) TableName() string {
	return "orders"
}
