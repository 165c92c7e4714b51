package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Store resolves entities by natural key and inserts line items. Every
// Resolve* call is resolve-or-insert: when the key is unknown the defaults
// are persisted and created is true; when it already exists the stored
// record is returned untouched and created is false. Callers decide what
// to do with the flag, which keeps first-write-wins an explicit branch.
//
// All operations run against the handle they are given, so a caller-scoped
// transaction covers every write.
type Store interface {
	ResolveSegment(ctx context.Context, tx *gorm.DB, code string, defaults Segment) (*Segment, bool, error)
	ResolveCustomer(ctx context.Context, tx *gorm.DB, code string, defaults Customer) (*Customer, bool, error)
	ResolveCategory(ctx context.Context, tx *gorm.DB, code string, defaults Category) (*Category, bool, error)
	ResolveProduct(ctx context.Context, tx *gorm.DB, code string, defaults Product) (*Product, bool, error)
	ResolveOrder(ctx context.Context, tx *gorm.DB, code string, customerID snowflake.ID, defaults Order) (*Order, bool, error)

	DetailExists(ctx context.Context, tx *gorm.DB, orderID, productID snowflake.ID) (bool, error)
	// InsertDetail inserts a new line item, recomputing its total.
	// Returns ErrDuplicateDetail when the (order, product) pair exists.
	InsertDetail(ctx context.Context, tx *gorm.DB, detail *OrderDetail) error
}
