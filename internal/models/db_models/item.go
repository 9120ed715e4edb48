package db_models

// Item is a category of recyclable material a collection point accepts.
// Reference data: seeded at migration time and managed through the admin
// surface, never through the public API.
type Item struct {
	ID    uint `gorm:"primaryKey"`
	Title string
	Image string

	Points []Point `gorm:"many2many:point_items"`
}
