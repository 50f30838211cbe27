package models

// OrderItem is one line of an order. It belongs to exactly one order; a
// rollback of the order removes its items with it.
type OrderItem struct {
	ID         uint `json:"order_item_id" gorm:"column:orderitemid;primaryKey;autoIncrement:false"`
	OrderID    uint `json:"order_id" gorm:"column:orderid;not null"`
	MenuItemID uint `json:"menu_item_id" gorm:"column:menuitemid;not null"`
	Quantity   int  `json:"quantity" gorm:"column:quantity;not null"`
}

func (OrderItem) TableName() string {
	return "orderitems"
}
