package model

// Tag is admin-managed reference data attached to recipes
type Tag struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `gorm:"size:256;not null" json:"name"`
	Color string `gorm:"size:40;not null" json:"color"`
	Slug  string `gorm:"size:50;not null;uniqueIndex" json:"slug"`
}
