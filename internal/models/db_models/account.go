package db_models

// Account is an administrative user allowed to manage item categories.
type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string
}
