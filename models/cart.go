package models

import "time"

type Cart struct {
	ID        uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint         `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per user
	Sum       int          `json:"sum"`                        // count of distinct line items, not total quantity
	Details   []CartDetail `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"details"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"-"`
}

type CartDetail struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint      `gorm:"index:idx_cart_product,unique" json:"cart_id"`
	ProductID uint      `gorm:"index:idx_cart_product,unique" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Price     float64   `json:"price"` // snapshot of Product.Price at add time, never repriced
	Quantity  int64     `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}
