package model

// Ingredient is a catalog entry. Quantities live on RecipeIngredient.
type Ingredient struct {
	ID              uint   `gorm:"primarykey" json:"id"`
	Name            string `gorm:"size:256;not null;index:idx_ingredients_name_unit,unique" json:"name"`
	MeasurementUnit string `gorm:"size:64;not null;index:idx_ingredients_name_unit,unique" json:"measurement_unit"`
}
