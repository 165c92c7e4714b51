package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/openretail/salesboard/internal/sales/domain"
	"github.com/openretail/salesboard/pkg/db"
	"gorm.io/gorm"
)

type store struct {
	genID *snowflake.Node
}

func Provide(genID *snowflake.Node) domain.Store {
	return &store{genID: genID}
}

func (s *store) ResolveSegment(ctx context.Context, tx *gorm.DB, code string, defaults domain.Segment) (*domain.Segment, bool, error) {
	var segment domain.Segment
	err := tx.WithContext(ctx).Where("segment_code = ?", code).Take(&segment).Error
	if err == nil {
		return &segment, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	segment = defaults
	segment.ID = s.genID.Generate()
	segment.SegmentCode = code
	if err := tx.WithContext(ctx).Create(&segment).Error; err != nil {
		// A concurrent batch may have won the race; re-read its row.
		if db.IsDuplicateKeyErr(err) {
			var existing domain.Segment
			if rerr := tx.WithContext(ctx).Where("segment_code = ?", code).Take(&existing).Error; rerr == nil {
				return &existing, false, nil
			}
		}
		return nil, false, err
	}
	return &segment, true, nil
}

func (s *store) ResolveCustomer(ctx context.Context, tx *gorm.DB, code string, defaults domain.Customer) (*domain.Customer, bool, error) {
	var customer domain.Customer
	err := tx.WithContext(ctx).Where("customer_code = ?", code).Take(&customer).Error
	if err == nil {
		return &customer, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	customer = defaults
	customer.ID = s.genID.Generate()
	customer.CustomerCode = code
	if err := tx.WithContext(ctx).Create(&customer).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			var existing domain.Customer
			if rerr := tx.WithContext(ctx).Where("customer_code = ?", code).Take(&existing).Error; rerr == nil {
				return &existing, false, nil
			}
		}
		return nil, false, err
	}
	return &customer, true, nil
}

func (s *store) ResolveCategory(ctx context.Context, tx *gorm.DB, code string, defaults domain.Category) (*domain.Category, bool, error) {
	var category domain.Category
	err := tx.WithContext(ctx).Where("category_code = ?", code).Take(&category).Error
	if err == nil {
		return &category, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	category = defaults
	category.ID = s.genID.Generate()
	category.CategoryCode = code
	if err := tx.WithContext(ctx).Create(&category).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			var existing domain.Category
			if rerr := tx.WithContext(ctx).Where("category_code = ?", code).Take(&existing).Error; rerr == nil {
				return &existing, false, nil
			}
		}
		return nil, false, err
	}
	return &category, true, nil
}

func (s *store) ResolveProduct(ctx context.Context, tx *gorm.DB, code string, defaults domain.Product) (*domain.Product, bool, error) {
	var product domain.Product
	err := tx.WithContext(ctx).Where("product_code = ?", code).Take(&product).Error
	if err == nil {
		return &product, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	product = defaults
	product.ID = s.genID.Generate()
	product.ProductCode = code
	if err := tx.WithContext(ctx).Create(&product).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			var existing domain.Product
			if rerr := tx.WithContext(ctx).Where("product_code = ?", code).Take(&existing).Error; rerr == nil {
				return &existing, false, nil
			}
		}
		return nil, false, err
	}
	return &product, true, nil
}

func (s *store) ResolveOrder(ctx context.Context, tx *gorm.DB, code string, customerID snowflake.ID, defaults domain.Order) (*domain.Order, bool, error) {
	var order domain.Order
	err := tx.WithContext(ctx).
		Where("order_code = ? AND customer_id = ?", code, customerID).
		Take(&order).Error
	if err == nil {
		return &order, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	order = defaults
	order.ID = s.genID.Generate()
	order.OrderCode = code
	order.CustomerID = customerID
	if err := tx.WithContext(ctx).Create(&order).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			var existing domain.Order
			if rerr := tx.WithContext(ctx).
				Where("order_code = ? AND customer_id = ?", code, customerID).
				Take(&existing).Error; rerr == nil {
				return &existing, false, nil
			}
		}
		return nil, false, err
	}
	return &order, true, nil
}

func (s *store) DetailExists(ctx context.Context, tx *gorm.DB, orderID, productID snowflake.ID) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&domain.OrderDetail{}).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *store) InsertDetail(ctx context.Context, tx *gorm.DB, detail *domain.OrderDetail) error {
	if detail.ID == 0 {
		detail.ID = s.genID.Generate()
	}
	if err := tx.WithContext(ctx).Create(detail).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.ErrDuplicateDetail
		}
		return err
	}
	return nil
}
