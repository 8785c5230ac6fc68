package models

import "time"

type Category struct {
	ID        string    `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:255;not null" bson:"name" json:"name"` // case sensitive
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
