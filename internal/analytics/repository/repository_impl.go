package repository

import (
	"context"

	"github.com/openretail/salesboard/internal/analytics/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ProductRevenue(ctx context.Context, db *gorm.DB) ([]domain.ProductRevenueRow, error) {
	var rows []domain.ProductRevenueRow
	err := db.WithContext(ctx).Raw(
		`SELECT p.product_code AS code,
		        p.product_name AS name,
		        COALESCE(c.category_code, '') AS group_code,
		        COALESCE(c.category_name, '') AS group_name,
		        SUM(d.total) AS total
		 FROM order_details d
		 JOIN products p ON p.id = d.product_id
		 LEFT JOIN categories c ON c.id = p.category_id
		 GROUP BY p.product_code, p.product_name, c.category_code, c.category_name
		 ORDER BY total DESC`,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) CategoryRevenue(ctx context.Context, db *gorm.DB) ([]domain.CategoryRevenueRow, error) {
	var rows []domain.CategoryRevenueRow
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(c.category_code, '') AS group_code,
		        COALESCE(c.category_name, '') AS group_name,
		        SUM(d.total) AS total
		 FROM order_details d
		 JOIN products p ON p.id = d.product_id
		 LEFT JOIN categories c ON c.id = p.category_id
		 GROUP BY c.category_code, c.category_name
		 ORDER BY total DESC`,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) SegmentCustomerCounts(ctx context.Context, db *gorm.DB) ([]domain.SegmentCustomerCountRow, error) {
	var rows []domain.SegmentCustomerCountRow
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(s.segment_code, '') AS segment_code,
		        COALESCE(s.description, '') AS segment_name,
		        COUNT(cu.id) AS customer_count
		 FROM customers cu
		 LEFT JOIN segments s ON s.id = cu.segment_id
		 GROUP BY s.segment_code, s.description
		 ORDER BY customer_count DESC`,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) SegmentOrderStats(ctx context.Context, db *gorm.DB) ([]domain.SegmentOrderStatsRow, error) {
	var rows []domain.SegmentOrderStatsRow
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(s.segment_code, '') AS segment_code,
		        COALESCE(s.description, '') AS segment_name,
		        COUNT(DISTINCT o.id) AS order_count,
		        COALESCE(SUM(d.total), 0) AS total_revenue
		 FROM orders o
		 JOIN customers cu ON cu.id = o.customer_id
		 LEFT JOIN segments s ON s.id = cu.segment_id
		 LEFT JOIN order_details d ON d.order_id = o.id
		 GROUP BY s.segment_code, s.description`,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) SegmentRevenue(ctx context.Context, db *gorm.DB) ([]domain.SegmentRevenueRow, error) {
	var rows []domain.SegmentRevenueRow
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(s.segment_code, '') AS segment_code,
		        COALESCE(s.description, '') AS segment_name,
		        SUM(d.total) AS total_revenue
		 FROM order_details d
		 JOIN orders o ON o.id = d.order_id
		 JOIN customers cu ON cu.id = o.customer_id
		 LEFT JOIN segments s ON s.id = cu.segment_id
		 GROUP BY s.segment_code, s.description
		 ORDER BY total_revenue DESC`,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) SegmentCategoryRevenue(ctx context.Context, db *gorm.DB) ([]domain.SegmentCategoryRevenueRow, error) {
	var rows []domain.SegmentCategoryRevenueRow
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(s.segment_code, '') AS segment_code,
		        COALESCE(c.category_code, '') AS category_code,
		        SUM(d.total) AS total_revenue
		 FROM order_details d
		 JOIN products p ON p.id = d.product_id
		 LEFT JOIN categories c ON c.id = p.category_id
		 JOIN orders o ON o.id = d.order_id
		 JOIN customers cu ON cu.id = o.customer_id
		 LEFT JOIN segments s ON s.id = cu.segment_id
		 GROUP BY s.segment_code, c.category_code`,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) CustomerSpending(ctx context.Context, db *gorm.DB) ([]domain.CustomerSpendRow, error) {
	var rows []domain.CustomerSpendRow
	err := db.WithContext(ctx).Raw(
		`SELECT cu.customer_code AS customer_code,
		        COALESCE(s.segment_code, '') AS segment_code,
		        SUM(d.total) AS total_spent
		 FROM order_details d
		 JOIN orders o ON o.id = d.order_id
		 JOIN customers cu ON cu.id = o.customer_id
		 LEFT JOIN segments s ON s.id = cu.segment_id
		 GROUP BY cu.customer_code, s.segment_code
		 ORDER BY s.segment_code`,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) CustomerOrderCounts(ctx context.Context, db *gorm.DB) ([]domain.CustomerOrderCountRow, error) {
	var rows []domain.CustomerOrderCountRow
	err := db.WithContext(ctx).Raw(
		`SELECT cu.customer_code AS customer_code,
		        COUNT(o.id) AS order_count
		 FROM customers cu
		 LEFT JOIN orders o ON o.customer_id = cu.id
		 GROUP BY cu.customer_code`,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) DetailFacts(ctx context.Context, db *gorm.DB) ([]domain.DetailFact, error) {
	var rows []domain.DetailFact
	err := db.WithContext(ctx).Raw(
		`SELECT d.order_id AS order_id,
		        o.created_at AS created_at,
		        d.total AS total,
		        p.product_code AS product_code,
		        p.product_name AS product_name,
		        COALESCE(c.category_code, '') AS category_code,
		        COALESCE(c.category_name, '') AS category_name,
		        COALESCE(s.segment_code, '') AS segment_code,
		        COALESCE(s.description, '') AS segment_name
		 FROM order_details d
		 JOIN orders o ON o.id = d.order_id
		 JOIN products p ON p.id = d.product_id
		 LEFT JOIN categories c ON c.id = p.category_id
		 JOIN customers cu ON cu.id = o.customer_id
		 LEFT JOIN segments s ON s.id = cu.segment_id
		 ORDER BY o.created_at, d.id`,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) OrderFacts(ctx context.Context, db *gorm.DB) ([]domain.OrderFact, error) {
	var rows []domain.OrderFact
	err := db.WithContext(ctx).Raw(
		`SELECT o.id AS order_id, o.created_at AS created_at
		 FROM orders o
		 ORDER BY o.created_at, o.id`,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) SegmentNames(ctx context.Context, db *gorm.DB) ([]domain.NameRow, error) {
	var rows []domain.NameRow
	err := db.WithContext(ctx).Raw(
		`SELECT segment_code AS code, description AS name FROM segments`,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) CategoryNames(ctx context.Context, db *gorm.DB) ([]domain.NameRow, error) {
	var rows []domain.NameRow
	err := db.WithContext(ctx).Raw(
		`SELECT category_code AS code, category_name AS name FROM categories`,
	).Scan(&rows).Error
	return rows, err
}
