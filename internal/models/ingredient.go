package models

// Ingredient is one row of the inventory ledger. Count is on-hand units and
// must never go negative; order submission is the only path that decrements
// it.
type Ingredient struct {
	ID    uint   `json:"ingredient_id" gorm:"column:ingredientid;primaryKey;autoIncrement:false"`
	Name  string `json:"ingredient_name" gorm:"column:ingredientname;not null"`
	Count int    `json:"ingredient_count" gorm:"column:ingredientcount;not null"`
}

func (Ingredient) TableName() string {
	return "inventory"
}
