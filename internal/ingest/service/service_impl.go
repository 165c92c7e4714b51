package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/openretail/salesboard/internal/ingest/domain"
	salesdomain "github.com/openretail/salesboard/internal/sales/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Store salesdomain.Store
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	store salesdomain.Store
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("ingest.service"),
		store: p.Store,
	}
}

// IngestCSV runs one batch inside a single transaction. Rows that fail
// validation are skipped with a diagnostic and do not abort the batch; an
// error escaping the per-row boundary (the CSV reader itself) rolls back
// every write of the batch.
func (s *Service) IngestCSV(ctx context.Context, r io.Reader) (domain.Report, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Report{}, domain.ErrEmptyFile
		}
		return domain.Report{}, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, label := range header {
		index[strings.TrimSpace(label)] = i
	}
	for _, col := range domain.RequiredColumns {
		if _, ok := index[col]; !ok {
			return domain.Report{}, &domain.MissingColumnError{Column: col}
		}
	}

	report := domain.Report{}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := 0
		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				// Structural CSV failure outside the per-row boundary:
				// the whole batch rolls back.
				return fmt.Errorf("read row %d: %w", row+1, err)
			}

			row++
			report.TotalRows++

			get := func(col string) string {
				i := index[col]
				if i >= len(record) {
					return ""
				}
				return strings.TrimSpace(record[i])
			}

			if diag := s.runRow(ctx, tx, row, get); diag != nil {
				report.SkippedRows++
				report.Diagnostics = append(report.Diagnostics, *diag)
				s.log.Warn("row skipped",
					zap.Int("row", diag.Row),
					zap.String("reason", diag.Reason),
					zap.String("value", diag.Value),
					zap.String("detail", diag.Detail),
				)
			}
		}
	})
	if err != nil {
		return domain.Report{}, err
	}

	s.log.Info("batch ingested",
		zap.Int("total_rows", report.TotalRows),
		zap.Int("skipped_rows", report.SkippedRows),
	)
	return report, nil
}

// runRow keeps row failures row-scoped: a panic inside row processing is
// recorded as an "unexpected" diagnostic and the batch continues.
func (s *Service) runRow(ctx context.Context, tx *gorm.DB, row int, get func(string) string) (diag *domain.RowDiagnostic) {
	defer func() {
		if r := recover(); r != nil {
			diag = &domain.RowDiagnostic{
				Row:    row,
				Reason: domain.ReasonUnexpected,
				Detail: fmt.Sprint(r),
			}
		}
	}()
	return s.processRow(ctx, tx, row, get)
}

func (s *Service) processRow(ctx context.Context, tx *gorm.DB, row int, get func(string) string) *domain.RowDiagnostic {
	dateStr := get(domain.ColOrderCreated)
	createdAt, err := time.Parse(domain.TimeLayout, dateStr)
	if err != nil {
		return &domain.RowDiagnostic{Row: row, Reason: domain.ReasonBadDate, Value: dateStr}
	}

	// Segment code may be empty: the empty string is a valid key.
	segment, _, err := s.store.ResolveSegment(ctx, tx, get(domain.ColSegmentCode), salesdomain.Segment{
		Description: get(domain.ColSegmentDesc),
	})
	if err != nil {
		return s.unexpected(row, err)
	}

	customerCode := get(domain.ColCustomerCode)
	if customerCode == "" {
		return &domain.RowDiagnostic{Row: row, Reason: domain.ReasonMissingCustomerCode}
	}

	// Defaults apply on creation only: an existing customer keeps its
	// first-seen name and segment.
	segmentID := segment.ID
	customer, _, err := s.store.ResolveCustomer(ctx, tx, customerCode, salesdomain.Customer{
		Name:      get(domain.ColCustomerName),
		SegmentID: &segmentID,
	})
	if err != nil {
		return s.unexpected(row, err)
	}

	category, _, err := s.store.ResolveCategory(ctx, tx, get(domain.ColCategoryCode), salesdomain.Category{
		CategoryName: get(domain.ColCategoryName),
	})
	if err != nil {
		return s.unexpected(row, err)
	}

	productCode := get(domain.ColProductCode)
	if productCode == "" {
		return &domain.RowDiagnostic{Row: row, Reason: domain.ReasonMissingProductCode}
	}

	categoryID := category.ID
	product, _, err := s.store.ResolveProduct(ctx, tx, productCode, salesdomain.Product{
		ProductName: get(domain.ColProductName),
		CategoryID:  &categoryID,
		UnitPrice:   safeInt(get(domain.ColUnitPrice)),
	})
	if err != nil {
		return s.unexpected(row, err)
	}

	order, _, err := s.store.ResolveOrder(ctx, tx, get(domain.ColOrderCode), customer.ID, salesdomain.Order{
		CreatedAt: createdAt,
	})
	if err != nil {
		return s.unexpected(row, err)
	}

	quantity := safeInt(get(domain.ColQuantity))
	price := safeInt(get(domain.ColUnitPrice))
	if quantity == nil || price == nil {
		return &domain.RowDiagnostic{Row: row, Reason: domain.ReasonInvalidQuantity}
	}

	exists, err := s.store.DetailExists(ctx, tx, order.ID, product.ID)
	if err != nil {
		return s.unexpected(row, err)
	}
	if exists {
		return &domain.RowDiagnostic{
			Row:     row,
			Reason:  domain.ReasonDuplicateLineItem,
			Order:   order.OrderCode,
			Product: product.ProductCode,
		}
	}

	err = s.store.InsertDetail(ctx, tx, &salesdomain.OrderDetail{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  *quantity,
		Price:     *price,
	})
	if errors.Is(err, salesdomain.ErrDuplicateDetail) {
		return &domain.RowDiagnostic{
			Row:     row,
			Reason:  domain.ReasonDuplicateLineItem,
			Order:   order.OrderCode,
			Product: product.ProductCode,
		}
	}
	if err != nil {
		return s.unexpected(row, err)
	}

	return nil
}

func (s *Service) unexpected(row int, err error) *domain.RowDiagnostic {
	return &domain.RowDiagnostic{Row: row, Reason: domain.ReasonUnexpected, Detail: err.Error()}
}

func safeInt(value string) *int64 {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
