package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/openretail/salesboard/internal/analytics/domain"
	"github.com/openretail/salesboard/internal/analytics/repository"
	salesdomain "github.com/openretail/salesboard/internal/sales/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	t    *testing.T
	db   *gorm.DB
	node *snowflake.Node
	svc  domain.Service
}

func newFixture(t *testing.T) *fixture {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(salesdomain.Models()...))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return &fixture{
		t:    t,
		db:   db,
		node: node,
		svc: New(Params{
			DB:   db,
			Log:  zap.NewNop(),
			Repo: repository.Provide(),
		}),
	}
}

func (f *fixture) segment(code, desc string) salesdomain.Segment {
	s := salesdomain.Segment{ID: f.node.Generate(), SegmentCode: code, Description: desc}
	require.NoError(f.t, f.db.Create(&s).Error)
	return s
}

func (f *fixture) customer(code string, segmentID *snowflake.ID) salesdomain.Customer {
	c := salesdomain.Customer{ID: f.node.Generate(), CustomerCode: code, Name: code, SegmentID: segmentID}
	require.NoError(f.t, f.db.Create(&c).Error)
	return c
}

func (f *fixture) category(code, name string) salesdomain.Category {
	c := salesdomain.Category{ID: f.node.Generate(), CategoryCode: code, CategoryName: name}
	require.NoError(f.t, f.db.Create(&c).Error)
	return c
}

func (f *fixture) product(code string, categoryID *snowflake.ID) salesdomain.Product {
	p := salesdomain.Product{ID: f.node.Generate(), ProductCode: code, ProductName: code, CategoryID: categoryID}
	require.NoError(f.t, f.db.Create(&p).Error)
	return p
}

func (f *fixture) order(code string, customerID snowflake.ID, at time.Time) salesdomain.Order {
	o := salesdomain.Order{ID: f.node.Generate(), OrderCode: code, CustomerID: customerID, CreatedAt: at}
	require.NoError(f.t, f.db.Create(&o).Error)
	return o
}

func (f *fixture) detail(orderID, productID snowflake.ID, qty, price int64) {
	d := salesdomain.OrderDetail{
		ID:        f.node.Generate(),
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  qty,
		Price:     price,
	}
	require.NoError(f.t, f.db.Create(&d).Error)
}

func TestQueryUnknownQuestion(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Query(context.Background(), domain.Question("Q99"))
	require.NoError(t, err)
	assert.Equal(t, []any{}, res)
}

func TestWeekdayAverageRevenue(t *testing.T) {
	f := newFixture(t)

	seg := f.segment("S1", "Retail")
	cust := f.customer("KH01", &seg.ID)
	cat := f.category("BOT", "Bot")
	prod := f.product("P01", &cat.ID)

	// Two Mondays: 100 and 200 revenue, so the Monday average is 150.
	o1 := f.order("ORD01", cust.ID, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	f.detail(o1.ID, prod.ID, 1, 100)
	o2 := f.order("ORD02", cust.ID, time.Date(2024, 1, 8, 15, 0, 0, 0, time.UTC))
	f.detail(o2.ID, prod.ID, 1, 200)

	res, err := f.svc.Query(context.Background(), domain.Q4)
	require.NoError(t, err)

	rows, ok := res.([]domain.WeekdayRevenue)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "Thứ Hai", rows[0].Day)
	assert.Equal(t, 150.0, rows[0].AvgRevenue)
}

func TestSpendDistributionBoxPlot(t *testing.T) {
	f := newFixture(t)

	seg := f.segment("S1", "Retail")
	cat := f.category("BOT", "Bot")
	prod := f.product("P01", &cat.ID)

	spends := []int64{30, 10, 100, 20, 40}
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, spent := range spends {
		cust := f.customer(fmt.Sprintf("KH%02d", i+1), &seg.ID)
		o := f.order(fmt.Sprintf("ORD%02d", i+1), cust.ID, at)
		f.detail(o.ID, prod.ID, 1, spent)
	}

	res, err := f.svc.Query(context.Background(), domain.Q19)
	require.NoError(t, err)

	rows, ok := res.([]domain.SegmentSpendStats)
	require.True(t, ok)
	require.Len(t, rows, 1)

	stats := rows[0]
	assert.Equal(t, "S1", stats.SegmentCode)
	assert.EqualValues(t, 10, stats.Min)
	assert.EqualValues(t, 20, stats.Q1)
	assert.EqualValues(t, 30, stats.Median)
	assert.EqualValues(t, 40, stats.Q3)
	assert.EqualValues(t, 100, stats.Max)
	assert.Equal(t, []int64{100}, stats.Outliers)
	assert.EqualValues(t, 10, stats.WhiskerBottom)
	assert.EqualValues(t, 40, stats.WhiskerTop)
	assert.Equal(t, []int64{10, 20, 30, 40, 100}, stats.RawData)
}

func TestMonthlyGrowthRates(t *testing.T) {
	f := newFixture(t)

	seg := f.segment("S1", "Retail")
	cust := f.customer("KH01", &seg.ID)
	cat := f.category("BOT", "Bot")
	prod := f.product("P01", &cat.ID)

	// Jan 1000, Feb 1500, Mar 0 (a zero-priced line), Apr 750.
	months := []struct {
		month int
		price int64
	}{{1, 1000}, {2, 1500}, {3, 0}, {4, 750}}
	for i, m := range months {
		o := f.order(fmt.Sprintf("ORD%02d", i+1), cust.ID,
			time.Date(2024, time.Month(m.month), 10, 12, 0, 0, 0, time.UTC))
		f.detail(o.ID, prod.ID, 1, m.price)
	}

	res, err := f.svc.Query(context.Background(), domain.Q17)
	require.NoError(t, err)

	rows, ok := res.([]domain.MonthlyGrowth)
	require.True(t, ok)
	require.Len(t, rows, 4)

	assert.Equal(t, 0.0, rows[0].GrowthRate)
	assert.Equal(t, 50.0, rows[1].GrowthRate)
	assert.Equal(t, -100.0, rows[2].GrowthRate)
	// Previous month had zero revenue: the rate degrades to zero.
	assert.Equal(t, 0.0, rows[3].GrowthRate)
}

func TestPivotRowPercentages(t *testing.T) {
	f := newFixture(t)

	seg := f.segment("S1", "Retail")
	cust := f.customer("KH01", &seg.ID)
	c1 := f.category("C1", "One")
	c2 := f.category("C2", "Two")
	p1 := f.product("P01", &c1.ID)
	p2 := f.product("P02", &c2.ID)

	o := f.order("ORD01", cust.ID, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	f.detail(o.ID, p1.ID, 1, 600)
	f.detail(o.ID, p2.ID, 1, 400)

	res, err := f.svc.Query(context.Background(), domain.Q18)
	require.NoError(t, err)

	pivot, ok := res.(domain.Pivot)
	require.True(t, ok)
	assert.Equal(t, []string{"S1"}, pivot.Segments)
	assert.Equal(t, []string{"C1", "C2"}, pivot.Categories)

	require.Len(t, pivot.Matrix, 1)
	row := pivot.Matrix[0]
	assert.EqualValues(t, 1000, row.Total)
	assert.Equal(t, 60.0, row.Categories["C1"].Percentage)
	assert.Equal(t, 40.0, row.Categories["C2"].Percentage)
	assert.EqualValues(t, 600, row.Categories["C1"].Revenue)
	assert.EqualValues(t, 400, row.Categories["C2"].Revenue)
}

func TestSegmentSentinelLabels(t *testing.T) {
	f := newFixture(t)

	seg := f.segment("S1", "Retail")
	f.customer("KH01", &seg.ID)
	f.customer("KH02", nil)

	res, err := f.svc.Query(context.Background(), domain.Q13)
	require.NoError(t, err)

	rows, ok := res.([]domain.SegmentCustomerCount)
	require.True(t, ok)
	require.Len(t, rows, 2)

	var unknown *domain.SegmentCustomerCount
	for i := range rows {
		if rows[i].SegmentCode == domain.UnknownCode {
			unknown = &rows[i]
		}
	}
	require.NotNil(t, unknown)
	assert.Equal(t, domain.UnknownName, unknown.SegmentName)
	assert.EqualValues(t, 1, unknown.CustomerCount)
}

func TestSegmentAOVTruncates(t *testing.T) {
	f := newFixture(t)

	seg := f.segment("S1", "Retail")
	cust := f.customer("KH01", &seg.ID)
	cat := f.category("BOT", "Bot")
	prod := f.product("P01", &cat.ID)

	totals := []int64{400, 300, 300}
	for i, total := range totals {
		o := f.order(fmt.Sprintf("ORD%02d", i+1), cust.ID,
			time.Date(2024, 6, i+1, 10, 0, 0, 0, time.UTC))
		f.detail(o.ID, prod.ID, 1, total)
	}

	res, err := f.svc.Query(context.Background(), domain.Q16)
	require.NoError(t, err)

	rows, ok := res.([]domain.SegmentAOV)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 1000, rows[0].TotalRevenue)
	assert.EqualValues(t, 3, rows[0].OrderCount)
	assert.EqualValues(t, 333, rows[0].AOV)
}

func TestOrderFrequencyIncludesZero(t *testing.T) {
	f := newFixture(t)

	seg := f.segment("S1", "Retail")
	buyer := f.customer("KH01", &seg.ID)
	f.customer("KH02", &seg.ID)

	at := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	f.order("ORD01", buyer.ID, at)
	f.order("ORD02", buyer.ID, at.Add(time.Hour))

	res, err := f.svc.Query(context.Background(), domain.Q11)
	require.NoError(t, err)

	rows, ok := res.([]domain.OrderFrequency)
	require.True(t, ok)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.OrderFrequency{TotalOrders: 0, CountCustomers: 1}, rows[0])
	assert.Equal(t, domain.OrderFrequency{TotalOrders: 2, CountCustomers: 1}, rows[1])
}

func TestMonthlyProductProbabilityCategoryOrder(t *testing.T) {
	f := newFixture(t)

	seg := f.segment("S1", "Retail")
	cust := f.customer("KH01", &seg.ID)
	set := f.category("SET", "Set")
	other := f.category("AAA", "Other")
	pSet := f.product("P01", &set.ID)
	pOther := f.product("P02", &other.ID)

	o := f.order("ORD01", cust.ID, time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))
	f.detail(o.ID, pSet.ID, 1, 100)
	f.detail(o.ID, pOther.ID, 1, 100)

	res, err := f.svc.Query(context.Background(), domain.Q10)
	require.NoError(t, err)

	groups, ok := res.([]domain.CategoryMonthlyProbabilities)
	require.True(t, ok)
	require.Len(t, groups, 2)

	// The fixed override puts SET ahead of alphabetically-earlier codes.
	assert.Equal(t, "SET", groups[0].GroupCode)
	assert.Equal(t, "AAA", groups[1].GroupCode)

	require.Len(t, groups[0].Products, 1)
	require.Len(t, groups[0].Products[0].MonthlyData, 1)
	assert.Equal(t, 7, groups[0].Products[0].MonthlyData[0].Month)
	assert.Equal(t, 1.0, groups[0].Products[0].MonthlyData[0].Probability)
}
