package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"  // placed at checkout, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusComplete  OrderStatus = "COMPLETE"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID              uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef        string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID          uint          `gorm:"index;not null" json:"user_id"`
	User            User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ReceiverName    string        `json:"receiver_name"`
	ReceiverAddress string        `json:"receiver_address"`
	ReceiverPhone   string        `json:"receiver_phone"`
	TotalPrice      float64       `json:"total_price"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	Details         []OrderDetail `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"details"`
	CreatedAt       time.Time     `json:"created_at"`
}

// OrderDetail is a frozen copy of one cart line at checkout time,
// decoupled from the cart that produced it.
type OrderDetail struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}
