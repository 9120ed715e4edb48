package db_models

// Point is a registered waste-collection location. Points are created once
// and never updated or deleted.
type Point struct {
	ID        uint `gorm:"primaryKey"`
	Image     string
	Name      string
	Email     string
	Whatsapp  string
	Latitude  float64
	Longitude float64
	City      string
	UF        string `gorm:"column:uf"`

	Items []Item `gorm:"many2many:point_items"`
}
