package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart keeps references to products, not copies: Products is resolved from
// ProductIDs on every read, so price changes show up in existing carts.
type Cart struct {
	ID             string          `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	UserID         string          `gorm:"index;size:64;not null" bson:"user" json:"-"`
	User           *User           `gorm:"-" bson:"-" json:"user,omitempty"`
	ProductIDs     []string        `gorm:"serializer:json;type:text" bson:"products" json:"-"`
	Products       []Product       `gorm:"-" bson:"-" json:"products"`
	Amounts        []int           `gorm:"serializer:json;type:text" bson:"amounts" json:"amounts"` // parallel to ProductIDs
	TotalItems     int             `bson:"totalItems" json:"totalItems"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(14,4)" bson:"totalPrice" json:"totalPrice"`
	TotalPriceTaxs decimal.Decimal `gorm:"type:decimal(14,4)" bson:"totalPriceTaxs" json:"totalPriceTaxs"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updatedAt" json:"updatedAt"`
}
