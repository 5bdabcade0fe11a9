package model

import "time"

// Favorite bookmarks a recipe for a user
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index:idx_favorite_user_recipe,unique" json:"user_id"`
	RecipeID  uint      `gorm:"not null;index:idx_favorite_user_recipe,unique;index" json:"recipe_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Recipe    *Recipe   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// ShoppingCartEntry puts a recipe into a user's cart
type ShoppingCartEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index:idx_cart_user_recipe,unique" json:"user_id"`
	RecipeID  uint      `gorm:"not null;index:idx_cart_user_recipe,unique;index" json:"recipe_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Recipe    *Recipe   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (ShoppingCartEntry) TableName() string {
	return "shopping_cart_entries"
}

// Follow is a subscription of UserID to the recipes of AuthorID
type Follow struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index:idx_follow_pair,unique" json:"user_id"`
	AuthorID  uint      `gorm:"not null;index:idx_follow_pair,unique;index" json:"author_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Author    *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Follow) TableName() string {
	return "follows"
}
