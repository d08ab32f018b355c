package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	GoogleID  string `gorm:"primaryKey;size:64;not null"` // stable id from the identity provider
	Name      string `gorm:"size:128"`
	CreatedAt time.Time
}

type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:128;not null"`
	Description string          `gorm:"size:1024"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"` // major units, 2 decimal places
	Category    string          `gorm:"size:64;index"`
	CreatedAt   time.Time
}

type Favorite struct {
	// composite PK keeps the at-most-one-row-per-pair invariant
	UserID    string `gorm:"primaryKey;size:64;not null"`
	ProductID uint   `gorm:"primaryKey;not null"`
	CreatedAt time.Time
}

type CartItem struct {
	UserID    string `gorm:"primaryKey;size:64;not null"`
	ProductID uint   `gorm:"primaryKey;not null"`
	Quantity  int32  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Session struct {
	Token     string    `gorm:"primaryKey;size:64;not null"`
	UserID    string    `gorm:"size:64;index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}
