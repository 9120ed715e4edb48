package db_models

// PointItem links a point to one item category it accepts. The composite
// primary key keeps a pair from being persisted twice.
type PointItem struct {
	PointID uint `gorm:"primaryKey"`
	ItemID  uint `gorm:"primaryKey"`
}

func (PointItem) TableName() string {
	return "point_items"
}
