package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// DetailFact is one denormalized line item with every grouping dimension
// attached. Time-derived and multi-pass statistics fold over these facts;
// dimension codes are raw (empty when the reference is absent) and the
// sentinel labels are applied by the handlers.
type DetailFact struct {
	OrderID      snowflake.ID `gorm:"column:order_id"`
	CreatedAt    time.Time    `gorm:"column:created_at"`
	Total        int64        `gorm:"column:total"`
	ProductCode  string       `gorm:"column:product_code"`
	ProductName  string       `gorm:"column:product_name"`
	CategoryCode string       `gorm:"column:category_code"`
	CategoryName string       `gorm:"column:category_name"`
	SegmentCode  string       `gorm:"column:segment_code"`
	SegmentName  string       `gorm:"column:segment_name"`
}

// OrderFact is one order row, including orders without line items.
type OrderFact struct {
	OrderID   snowflake.ID `gorm:"column:order_id"`
	CreatedAt time.Time    `gorm:"column:created_at"`
}

// ProductRevenueRow is a grouped revenue sum per product.
type ProductRevenueRow struct {
	Code      string `gorm:"column:code"`
	Name      string `gorm:"column:name"`
	GroupCode string `gorm:"column:group_code"`
	GroupName string `gorm:"column:group_name"`
	Total     int64  `gorm:"column:total"`
}

// CategoryRevenueRow is a grouped revenue sum per category.
type CategoryRevenueRow struct {
	GroupCode string `gorm:"column:group_code"`
	GroupName string `gorm:"column:group_name"`
	Total     int64  `gorm:"column:total"`
}

// SegmentCustomerCountRow counts customers per segment.
type SegmentCustomerCountRow struct {
	SegmentCode   string `gorm:"column:segment_code"`
	SegmentName   string `gorm:"column:segment_name"`
	CustomerCount int64  `gorm:"column:customer_count"`
}

// SegmentOrderStatsRow carries revenue and distinct order count per segment.
type SegmentOrderStatsRow struct {
	SegmentCode  string `gorm:"column:segment_code"`
	SegmentName  string `gorm:"column:segment_name"`
	OrderCount   int64  `gorm:"column:order_count"`
	TotalRevenue int64  `gorm:"column:total_revenue"`
}

// SegmentRevenueRow is a revenue sum per segment over line items.
type SegmentRevenueRow struct {
	SegmentCode  string `gorm:"column:segment_code"`
	SegmentName  string `gorm:"column:segment_name"`
	TotalRevenue int64  `gorm:"column:total_revenue"`
}

// SegmentCategoryRevenueRow is one cell of the segment × category pivot.
type SegmentCategoryRevenueRow struct {
	SegmentCode  string `gorm:"column:segment_code"`
	CategoryCode string `gorm:"column:category_code"`
	TotalRevenue int64  `gorm:"column:total_revenue"`
}

// CustomerSpendRow is the total spend of one customer with at least one
// line item.
type CustomerSpendRow struct {
	CustomerCode string `gorm:"column:customer_code"`
	SegmentCode  string `gorm:"column:segment_code"`
	TotalSpent   int64  `gorm:"column:total_spent"`
}

// CustomerOrderCountRow counts distinct orders per customer, including
// customers with none.
type CustomerOrderCountRow struct {
	CustomerCode string `gorm:"column:customer_code"`
	OrderCount   int64  `gorm:"column:order_count"`
}

// NameRow maps a natural code to its display name.
type NameRow struct {
	Code string `gorm:"column:code"`
	Name string `gorm:"column:name"`
}

// Repository exposes the read-side aggregates. Dimension groupings are
// explicit multi-table aggregate queries; time-derived groupings are
// served as flat fact scans and folded by the handlers.
type Repository interface {
	ProductRevenue(ctx context.Context, db *gorm.DB) ([]ProductRevenueRow, error)
	CategoryRevenue(ctx context.Context, db *gorm.DB) ([]CategoryRevenueRow, error)
	SegmentCustomerCounts(ctx context.Context, db *gorm.DB) ([]SegmentCustomerCountRow, error)
	SegmentOrderStats(ctx context.Context, db *gorm.DB) ([]SegmentOrderStatsRow, error)
	SegmentRevenue(ctx context.Context, db *gorm.DB) ([]SegmentRevenueRow, error)
	SegmentCategoryRevenue(ctx context.Context, db *gorm.DB) ([]SegmentCategoryRevenueRow, error)
	CustomerSpending(ctx context.Context, db *gorm.DB) ([]CustomerSpendRow, error)
	CustomerOrderCounts(ctx context.Context, db *gorm.DB) ([]CustomerOrderCountRow, error)
	DetailFacts(ctx context.Context, db *gorm.DB) ([]DetailFact, error)
	OrderFacts(ctx context.Context, db *gorm.DB) ([]OrderFact, error)
	SegmentNames(ctx context.Context, db *gorm.DB) ([]NameRow, error)
	CategoryNames(ctx context.Context, db *gorm.DB) ([]NameRow, error)
}
