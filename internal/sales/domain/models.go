package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Segment is a customer classification bucket. The code is the natural key;
// the empty string is a valid, reusable code.
type Segment struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	SegmentCode string       `gorm:"uniqueIndex;not null" json:"segment_code"`
	Description string       `json:"description"`
}

type Customer struct {
	ID           snowflake.ID  `gorm:"primaryKey" json:"id"`
	CustomerCode string        `gorm:"uniqueIndex;not null" json:"customer_code"`
	Name         string        `json:"name"`
	SegmentID    *snowflake.ID `gorm:"index" json:"segment_id,omitempty"`
	Segment      *Segment      `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

type Category struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	CategoryCode string       `gorm:"uniqueIndex;not null" json:"category_code"`
	CategoryName string       `json:"category_name"`
}

// Product carries the first-seen unit price in currency minor units.
// UnitPrice is nil when the source value was not numeric.
type Product struct {
	ID          snowflake.ID  `gorm:"primaryKey" json:"id"`
	ProductCode string        `gorm:"uniqueIndex;not null" json:"product_code"`
	ProductName string        `json:"product_name"`
	CategoryID  *snowflake.ID `gorm:"index" json:"category_id,omitempty"`
	Category    *Category     `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	UnitPrice   *int64        `json:"unit_price,omitempty"`
}

type Order struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	OrderCode  string       `gorm:"uniqueIndex;not null" json:"order_code"`
	CustomerID snowflake.ID `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time    `gorm:"not null" json:"created_at"`
}

// OrderDetail is one product line within an order, the atomic unit of
// revenue. At most one line exists per (order, product) pair.
type OrderDetail struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	OrderID   snowflake.ID `gorm:"not null;uniqueIndex:idx_order_details_order_product" json:"order_id"`
	ProductID snowflake.ID `gorm:"not null;uniqueIndex:idx_order_details_order_product" json:"product_id"`
	Order     *Order       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Product   *Product     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Quantity  int64        `gorm:"not null" json:"quantity"`
	Price     int64        `gorm:"not null" json:"price"`
	Total     int64        `gorm:"not null" json:"total"`
}

// BeforeSave recomputes the line total on every write.
func (d *OrderDetail) BeforeSave(tx *gorm.DB) error {
	d.Total = d.Quantity * d.Price
	return nil
}

// Models lists every entity for schema migration.
func Models() []any {
	return []any{
		&Segment{},
		&Customer{},
		&Category{},
		&Product{},
		&Order{},
		&OrderDetail{},
	}
}
