package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Price      float64        `gorm:"not null" json:"price"` // VND
	Image      string         `json:"image"`
	DetailDesc string         `gorm:"type:text" json:"detail_desc"`
	ShortDesc  string         `json:"short_desc"`
	Quantity   int64          `json:"quantity"` // units in stock
	Sold       int64          `json:"sold"`
	Factory    string         `gorm:"index" json:"factory"` // manufacturer, e.g. APPLE, DELL
	Target     string         `gorm:"index" json:"target"`  // audience tag, e.g. GAMING, SINHVIEN-VANPHONG
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
