package models

// Group is a community posts can be filed under. Groups are managed by administrators.
type Group struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Slug        string `gorm:"size:50;uniqueIndex;not null"`
	Description string `gorm:"not null;default:''"`
}
