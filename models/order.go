package models

import "time"

type Order struct {
	ID         string    `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	CartID     string    `gorm:"uniqueIndex;size:64;not null" bson:"cart" json:"-"` // one order per cart
	Cart       *Cart     `gorm:"-" bson:"-" json:"cart,omitempty"`
	PaidOut    bool      `bson:"paidOut" json:"paidOut"`
	Name       string    `gorm:"not null" bson:"name" json:"name"`
	SecondName string    `gorm:"not null" bson:"secondName" json:"secondName"`
	Email      string    `gorm:"not null" bson:"email" json:"email"`
	Phone      string    `gorm:"not null" bson:"phone" json:"phone"`
	Country    string    `gorm:"not null" bson:"country" json:"country"`
	Address    string    `gorm:"not null" bson:"address" json:"address"`
	ZipCode    string    `gorm:"not null" bson:"zipCode" json:"zipCode"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
