package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImageExtension is appended to the product code to name its stored image.
const ImageExtension = "jpeg"

type Product struct {
	ID              string          `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	Code            string          `gorm:"uniqueIndex;size:255;not null" bson:"code" json:"code"` // always lowercase
	CategoryID      string          `gorm:"index;size:64;not null" bson:"category" json:"-"`
	Category        *Category       `gorm:"-" bson:"-" json:"category,omitempty"`
	Name            string          `gorm:"not null" bson:"name" json:"name"`
	Description     string          `bson:"description" json:"description"`
	Price           decimal.Decimal `gorm:"type:decimal(14,4);not null" bson:"price" json:"price"`
	Tax             decimal.Decimal `gorm:"type:decimal(14,4);not null" bson:"tax" json:"tax"`
	PublicSellPrice decimal.Decimal `gorm:"type:decimal(14,4);not null" bson:"publicSellPrice" json:"publicSellPrice"`
	Stock           int             `bson:"stock" json:"stock"`
	Image           string          `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// ImageName is the file name the product image is stored under.
func (p *Product) ImageName() string {
	return p.Code + "." + ImageExtension
}
