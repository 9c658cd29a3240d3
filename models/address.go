package models

// Address is a saved pickup/delivery location.
type Address struct {
	ID        string `bson:"id" json:"id"`
	Label     string `bson:"label" json:"label"` // e.g. "Home", "Office"
	Address   string `bson:"address" json:"address"`
	IsDefault bool   `bson:"isDefault" json:"isDefault"`
}
