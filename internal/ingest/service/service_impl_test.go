package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/openretail/salesboard/internal/ingest/domain"
	salesdomain "github.com/openretail/salesboard/internal/sales/domain"
	salesrepo "github.com/openretail/salesboard/internal/sales/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(salesdomain.Models()...))
	return db
}

func newTestService(t *testing.T, db *gorm.DB) domain.Service {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Store: salesrepo.Provide(node),
	})
}

type testRow struct {
	customer     string
	customerName string
	segment      string
	segmentDesc  string
	category     string
	categoryName string
	product      string
	productName  string
	price        string
	order        string
	created      string
	qty          string
}

func defaultRow() testRow {
	return testRow{
		customer:     "KH01",
		customerName: "Nguyen Van A",
		segment:      "S1",
		segmentDesc:  "Retail",
		category:     "BOT",
		categoryName: "Bot",
		product:      "P01",
		productName:  "Product One",
		price:        "1000",
		order:        "ORD01",
		created:      "2024-01-05 10:30:00",
		qty:          "2",
	}
}

func (r testRow) fields() []string {
	return []string{
		r.customer, r.customerName,
		r.segment, r.segmentDesc,
		r.category, r.categoryName,
		r.product, r.productName,
		r.price, r.order, r.created, r.qty,
	}
}

var csvHeader = strings.Join([]string{
	domain.ColCustomerCode, domain.ColCustomerName,
	domain.ColSegmentCode, domain.ColSegmentDesc,
	domain.ColCategoryCode, domain.ColCategoryName,
	domain.ColProductCode, domain.ColProductName,
	domain.ColUnitPrice, domain.ColOrderCode,
	domain.ColOrderCreated, domain.ColQuantity,
}, ",")

func buildCSV(rows ...testRow) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(strings.Join(r.fields(), ","))
		b.WriteString("\n")
	}
	return b.String()
}

func countDetails(t *testing.T, db *gorm.DB) int64 {
	var n int64
	require.NoError(t, db.Model(&salesdomain.OrderDetail{}).Count(&n).Error)
	return n
}

func TestIngestCSVRowFailureIsIsolated(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	rows := make([]testRow, 5)
	for i := range rows {
		r := defaultRow()
		r.order = fmt.Sprintf("ORD%02d", i+1)
		r.product = fmt.Sprintf("P%02d", i+1)
		rows[i] = r
	}
	rows[2].created = "05/01/2024"

	report, err := svc.IngestCSV(context.Background(), strings.NewReader(buildCSV(rows...)))
	require.NoError(t, err)

	assert.Equal(t, 5, report.TotalRows)
	assert.Equal(t, 1, report.SkippedRows)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, 3, report.Diagnostics[0].Row)
	assert.Equal(t, domain.ReasonBadDate, report.Diagnostics[0].Reason)
	assert.Equal(t, "05/01/2024", report.Diagnostics[0].Value)
	assert.EqualValues(t, 4, countDetails(t, db))
}

func TestIngestCSVFirstWriteWins(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	first := defaultRow()
	second := defaultRow()
	second.customerName = "Someone Else"
	second.order = "ORD02"
	second.product = "P02"

	_, err := svc.IngestCSV(context.Background(), strings.NewReader(buildCSV(first, second)))
	require.NoError(t, err)

	var customer salesdomain.Customer
	require.NoError(t, db.Where("customer_code = ?", "KH01").Take(&customer).Error)
	assert.Equal(t, "Nguyen Van A", customer.Name)

	var n int64
	require.NoError(t, db.Model(&salesdomain.Customer{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestIngestCSVDuplicateLineItem(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	report, err := svc.IngestCSV(context.Background(),
		strings.NewReader(buildCSV(defaultRow(), defaultRow())))
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalRows)
	assert.Equal(t, 1, report.SkippedRows)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, domain.ReasonDuplicateLineItem, report.Diagnostics[0].Reason)
	assert.Equal(t, "ORD01", report.Diagnostics[0].Order)
	assert.Equal(t, "P01", report.Diagnostics[0].Product)
	assert.EqualValues(t, 1, countDetails(t, db))
}

func TestIngestCSVLineTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	row := defaultRow()
	row.qty = "3"
	row.price = "2500"

	_, err := svc.IngestCSV(context.Background(), strings.NewReader(buildCSV(row)))
	require.NoError(t, err)

	var detail salesdomain.OrderDetail
	require.NoError(t, db.Take(&detail).Error)
	assert.EqualValues(t, 3, detail.Quantity)
	assert.EqualValues(t, 2500, detail.Price)
	assert.EqualValues(t, 7500, detail.Total)
}

func TestIngestCSVMissingColumn(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	header := strings.Replace(csvHeader, ","+domain.ColQuantity, "", 1)
	_, err := svc.IngestCSV(context.Background(), strings.NewReader(header+"\n"))

	var missing *domain.MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, domain.ColQuantity, missing.Column)
}

func TestIngestCSVEmptyFile(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	_, err := svc.IngestCSV(context.Background(), strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrEmptyFile)
}

func TestIngestCSVReaderErrorRollsBackBatch(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	// One valid row, then a structurally broken one: an unterminated
	// quote fails the CSV reader itself, which must undo the whole batch.
	body := buildCSV(defaultRow()) + `"broken`

	_, err := svc.IngestCSV(context.Background(), strings.NewReader(body))
	require.Error(t, err)
	assert.EqualValues(t, 0, countDetails(t, db))

	var n int64
	require.NoError(t, db.Model(&salesdomain.Order{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestIngestCSVUnparseablePriceSkipsRowKeepsProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	row := defaultRow()
	row.price = "abc"

	report, err := svc.IngestCSV(context.Background(), strings.NewReader(buildCSV(row)))
	require.NoError(t, err)

	assert.Equal(t, 1, report.SkippedRows)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, domain.ReasonInvalidQuantity, report.Diagnostics[0].Reason)
	assert.EqualValues(t, 0, countDetails(t, db))

	// The product upsert happens before quantity/price validation; the
	// product survives with no recorded unit price.
	var product salesdomain.Product
	require.NoError(t, db.Where("product_code = ?", "P01").Take(&product).Error)
	assert.Nil(t, product.UnitPrice)
}

func TestIngestCSVEmptySegmentCodeIsValidKey(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	row := defaultRow()
	row.segment = ""
	row.segmentDesc = ""

	report, err := svc.IngestCSV(context.Background(), strings.NewReader(buildCSV(row)))
	require.NoError(t, err)
	assert.Equal(t, 0, report.SkippedRows)

	var segment salesdomain.Segment
	require.NoError(t, db.Where("segment_code = ?", "").Take(&segment).Error)

	var customer salesdomain.Customer
	require.NoError(t, db.Where("customer_code = ?", "KH01").Take(&customer).Error)
	require.NotNil(t, customer.SegmentID)
	assert.Equal(t, segment.ID, *customer.SegmentID)
}
