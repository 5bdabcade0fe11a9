package model

import "time"

type Recipe struct {
	ID          uint               `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	AuthorID    uint               `gorm:"not null;index" json:"author_id"`
	Author      *User              `gorm:"constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Name        string             `gorm:"size:200;not null" json:"name"`
	Text        string             `gorm:"type:text;not null" json:"text"`
	Image       string             `gorm:"size:512" json:"image"`
	CookingTime int                `gorm:"not null;check:cooking_time > 0" json:"cooking_time"`
	Tags        []Tag              `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags"`
	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
}

// RecipeIngredient carries the per-recipe amount of a catalog ingredient.
// A recipe lists a given ingredient at most once.
type RecipeIngredient struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	RecipeID     uint        `gorm:"not null;index:idx_recipe_ingredient,unique" json:"recipe_id"`
	IngredientID uint        `gorm:"not null;index:idx_recipe_ingredient,unique;index" json:"ingredient_id"`
	Ingredient   *Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
	Amount       int         `gorm:"not null;check:amount > 0" json:"amount"`
}
