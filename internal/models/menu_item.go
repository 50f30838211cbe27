package models

// MenuItem is one sellable drink on the menu. The ID is assigned by the
// store as max existing id + 1; only the price changes after creation.
type MenuItem struct {
	ID            uint    `json:"menu_item_id" gorm:"column:menuitemid;primaryKey;autoIncrement:false"`
	DrinkCategory string  `json:"drink_category" gorm:"column:drinkcategory"`
	Name          string  `json:"menu_item_name" gorm:"column:menuitemname;unique;not null"`
	Price         float64 `json:"price" gorm:"column:price"`
}

func (MenuItem) TableName() string {
	return "menuitems"
}
