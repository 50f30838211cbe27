package models

// RecipeLine maps a menu item to one ingredient it consumes and how many
// units a single drink needs. A menu item with no recipe lines has no
// ingredient constraint.
type RecipeLine struct {
	MenuItemID   uint `json:"menu_item_id" gorm:"column:menuitemid;primaryKey;autoIncrement:false"`
	IngredientID uint `json:"ingredient_id" gorm:"column:ingredientid;primaryKey;autoIncrement:false"`
	Quantity     int  `json:"ingredient_qty" gorm:"column:ingredientqty;not null"`
}

func (RecipeLine) TableName() string {
	return "menuitemingredients"
}
