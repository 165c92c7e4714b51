package service

import (
	"context"
	"sort"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/openretail/salesboard/internal/analytics/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In
	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &service{
		db:   p.DB,
		log:  p.Log,
		repo: p.Repo,
	}
}

func (s *service) Query(ctx context.Context, q domain.Question) (any, error) {
	switch q {
	case domain.Q1:
		return s.productRevenue(ctx)
	case domain.Q2:
		return s.categoryRevenue(ctx)
	case domain.Q3:
		return s.monthlyRevenue(ctx)
	case domain.Q4:
		return s.weekdayRevenue(ctx)
	case domain.Q5:
		return s.dayOfMonthRevenue(ctx)
	case domain.Q6:
		return s.hourlyRevenue(ctx)
	case domain.Q7:
		return s.categoryProbability(ctx)
	case domain.Q8:
		return s.monthlyCategoryProbability(ctx)
	case domain.Q9:
		return s.productProbability(ctx)
	case domain.Q10:
		return s.monthlyProductProbability(ctx)
	case domain.Q11:
		return s.orderFrequency(ctx)
	case domain.Q12:
		return s.customerSpending(ctx)
	case domain.Q13:
		return s.segmentCustomerCounts(ctx)
	case domain.Q14:
		return s.segmentRevenue(ctx)
	case domain.Q15:
		return s.peakMonthSegmentRevenue(ctx)
	case domain.Q16:
		return s.segmentAOV(ctx)
	case domain.Q17:
		return s.monthlyGrowth(ctx)
	case domain.Q18:
		return s.segmentCategoryPivot(ctx)
	case domain.Q19:
		return s.segmentSpendStats(ctx)
	default:
		s.log.Warn("unknown analytics question", zap.String("question", string(q)))
		return []any{}, nil
	}
}

func (s *service) productRevenue(ctx context.Context) (any, error) {
	rows, err := s.repo.ProductRevenue(ctx, s.db)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ProductRevenue, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ProductRevenue{
			Code:      r.Code,
			Name:      r.Name,
			GroupCode: codeOrUnknown(r.GroupCode),
			GroupName: nameOrUnknown(r.GroupName),
			Total:     r.Total,
		})
	}
	return out, nil
}

func (s *service) categoryRevenue(ctx context.Context) (any, error) {
	rows, err := s.repo.CategoryRevenue(ctx, s.db)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CategoryRevenue, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.CategoryRevenue{
			GroupCode: codeOrUnknown(r.GroupCode),
			GroupName: nameOrUnknown(r.GroupName),
			Total:     r.Total,
		})
	}
	return out, nil
}

func (s *service) monthlyRevenue(ctx context.Context) (any, error) {
	facts, err := s.repo.DetailFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	totals := map[int]int64{}
	for _, f := range facts {
		totals[int(f.CreatedAt.Month())] += f.Total
	}

	months := sortedIntKeys(totals)
	out := make([]domain.MonthlyRevenue, 0, len(months))
	for _, m := range months {
		out = append(out, domain.MonthlyRevenue{Month: m, Total: totals[m]})
	}
	return out, nil
}

// weekdayRevenue averages the daily revenue of each weekday: the sum of
// all line-item totals on dates falling on the weekday divided by the
// number of distinct such dates.
func (s *service) weekdayRevenue(ctx context.Context) (any, error) {
	facts, err := s.repo.DetailFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	dayTotal := map[string]int64{}
	dayWeekday := map[string]time.Weekday{}
	for _, f := range facts {
		k := f.CreatedAt.Format("2006-01-02")
		dayTotal[k] += f.Total
		dayWeekday[k] = f.CreatedAt.Weekday()
	}

	sums := map[time.Weekday]int64{}
	days := map[time.Weekday]int64{}
	for date, total := range dayTotal {
		wd := dayWeekday[date]
		sums[wd] += total
		days[wd]++
	}

	out := make([]domain.WeekdayRevenue, 0, len(sums))
	for _, wd := range weekdayOrder {
		if days[wd] == 0 {
			continue
		}
		out = append(out, domain.WeekdayRevenue{
			Day:        weekdayNames[wd],
			AvgRevenue: round0(float64(sums[wd]) / float64(days[wd])),
		})
	}
	return out, nil
}

// dayOfMonthRevenue divides the revenue booked on each day-of-month by
// the number of distinct (year, month) pairs that saw any order on that
// day, so a month without orders on the 31st does not dilute the average.
func (s *service) dayOfMonthRevenue(ctx context.Context) (any, error) {
	facts, err := s.repo.DetailFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.OrderFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	totals := map[int]int64{}
	for _, f := range facts {
		totals[f.CreatedAt.Day()] += f.Total
	}

	months := map[int]map[string]struct{}{}
	for _, o := range orders {
		d := o.CreatedAt.Day()
		if months[d] == nil {
			months[d] = map[string]struct{}{}
		}
		months[d][o.CreatedAt.Format("2006-01")] = struct{}{}
	}

	days := sortedIntKeys(totals)
	out := make([]domain.DayOfMonthRevenue, 0, len(days))
	for _, d := range days {
		avg := 0.0
		if n := len(months[d]); n > 0 {
			avg = round0(float64(totals[d]) / float64(n))
		}
		out = append(out, domain.DayOfMonthRevenue{Day: d, AvgRevenue: avg})
	}
	return out, nil
}

func (s *service) hourlyRevenue(ctx context.Context) (any, error) {
	facts, err := s.repo.DetailFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.OrderFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	totals := map[int]int64{}
	for _, f := range facts {
		totals[f.CreatedAt.Hour()] += f.Total
	}

	dates := map[int]map[string]struct{}{}
	for _, o := range orders {
		h := o.CreatedAt.Hour()
		if dates[h] == nil {
			dates[h] = map[string]struct{}{}
		}
		dates[h][o.CreatedAt.Format("2006-01-02")] = struct{}{}
	}

	hours := sortedIntKeys(totals)
	out := make([]domain.HourlyRevenue, 0, len(hours))
	for _, h := range hours {
		avg := 0.0
		if n := len(dates[h]); n > 0 {
			avg = round0(float64(totals[h]) / float64(n))
		}
		out = append(out, domain.HourlyRevenue{Hour: h, AvgRevenue: avg})
	}
	return out, nil
}

// categoryProbability reports, per category, the share of all orders
// containing at least one product of the category.
func (s *service) categoryProbability(ctx context.Context) (any, error) {
	facts, err := s.repo.DetailFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.OrderFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	type agg struct {
		name   string
		orders map[snowflake.ID]struct{}
	}
	aggs := map[string]*agg{}
	for _, f := range facts {
		code := codeOrUnknown(f.CategoryCode)
		a := aggs[code]
		if a == nil {
			a = &agg{name: nameOrUnknown(f.CategoryName), orders: map[snowflake.ID]struct{}{}}
			aggs[code] = a
		}
		a.orders[f.OrderID] = struct{}{}
	}

	codes := sortedStringKeys(aggs)
	sort.SliceStable(codes, func(i, j int) bool {
		return len(aggs[codes[i]].orders) > len(aggs[codes[j]].orders)
	})

	grand := len(orders)
	out := make([]domain.CategoryProbability, 0, len(codes))
	for _, code := range codes {
		a := aggs[code]
		p := 0.0
		if grand > 0 {
			p = float64(len(a.orders)) / float64(grand)
		}
		out = append(out, domain.CategoryProbability{
			GroupCode:   code,
			GroupName:   a.name,
			Probability: p,
		})
	}
	return out, nil
}

func (s *service) monthlyCategoryProbability(ctx context.Context) (any, error) {
	facts, err := s.repo.DetailFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.OrderFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	monthOrders := map[int]map[snowflake.ID]struct{}{}
	for _, o := range orders {
		m := int(o.CreatedAt.Month())
		if monthOrders[m] == nil {
			monthOrders[m] = map[snowflake.ID]struct{}{}
		}
		monthOrders[m][o.OrderID] = struct{}{}
	}

	type agg struct {
		name   string
		orders map[snowflake.ID]struct{}
	}
	byMonth := map[int]map[string]*agg{}
	for _, f := range facts {
		m := int(f.CreatedAt.Month())
		if byMonth[m] == nil {
			byMonth[m] = map[string]*agg{}
		}
		code := codeOrUnknown(f.CategoryCode)
		a := byMonth[m][code]
		if a == nil {
			a = &agg{name: nameOrUnknown(f.CategoryName), orders: map[snowflake.ID]struct{}{}}
			byMonth[m][code] = a
		}
		a.orders[f.OrderID] = struct{}{}
	}

	out := []domain.MonthlyCategoryProbability{}
	for _, m := range sortedIntKeys(byMonth) {
		aggs := byMonth[m]
		codes := sortedStringKeys(aggs)
		sort.SliceStable(codes, func(i, j int) bool {
			return len(aggs[codes[i]].orders) > len(aggs[codes[j]].orders)
		})

		denom := len(monthOrders[m])
		for _, code := range codes {
			a := aggs[code]
			p := 0.0
			if denom > 0 {
				p = float64(len(a.orders)) / float64(denom)
			}
			out = append(out, domain.MonthlyCategoryProbability{
				Month:       m,
				GroupCode:   code,
				GroupName:   a.name,
				Probability: p,
			})
		}
	}
	return out, nil
}

// productProbability nests, per category, the share each product takes
// of the orders containing that category.
func (s *service) productProbability(ctx context.Context) (any, error) {
	facts, err := s.repo.DetailFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	type prodAgg struct {
		name   string
		orders map[snowflake.ID]struct{}
	}
	type catAgg struct {
		name     string
		orders   map[snowflake.ID]struct{}
		products map[string]*prodAgg
	}
	cats := map[string]*catAgg{}
	for _, f := range facts {
		code := codeOrUnknown(f.CategoryCode)
		c := cats[code]
		if c == nil {
			c = &catAgg{
				name:     nameOrUnknown(f.CategoryName),
				orders:   map[snowflake.ID]struct{}{},
				products: map[string]*prodAgg{},
			}
			cats[code] = c
		}
		c.orders[f.OrderID] = struct{}{}

		p := c.products[f.ProductCode]
		if p == nil {
			p = &prodAgg{name: f.ProductName, orders: map[snowflake.ID]struct{}{}}
			c.products[f.ProductCode] = p
		}
		p.orders[f.OrderID] = struct{}{}
	}

	out := make([]domain.CategoryProductProbabilities, 0, len(cats))
	for _, code := range sortedStringKeys(cats) {
		c := cats[code]
		group := domain.CategoryProductProbabilities{
			GroupCode: code,
			GroupName: c.name,
			Products:  make([]domain.ProductProbability, 0, len(c.products)),
		}
		for _, pc := range sortedStringKeys(c.products) {
			p := c.products[pc]
			group.Products = append(group.Products, domain.ProductProbability{
				GroupCode:   code,
				GroupName:   c.name,
				ProductCode: pc,
				ProductName: p.name,
				Probability: float64(len(p.orders)) / float64(len(c.orders)),
			})
		}
		out = append(out, group)
	}
	return out, nil
}

func (s *service) monthlyProductProbability(ctx context.Context) (any, error) {
	facts, err := s.repo.DetailFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	type prodAgg struct {
		name    string
		monthly map[int]map[snowflake.ID]struct{}
	}
	type catAgg struct {
		name     string
		monthly  map[int]map[snowflake.ID]struct{}
		products map[string]*prodAgg
	}
	cats := map[string]*catAgg{}
	for _, f := range facts {
		m := int(f.CreatedAt.Month())
		code := codeOrUnknown(f.CategoryCode)
		c := cats[code]
		if c == nil {
			c = &catAgg{
				name:     nameOrUnknown(f.CategoryName),
				monthly:  map[int]map[snowflake.ID]struct{}{},
				products: map[string]*prodAgg{},
			}
			cats[code] = c
		}
		if c.monthly[m] == nil {
			c.monthly[m] = map[snowflake.ID]struct{}{}
		}
		c.monthly[m][f.OrderID] = struct{}{}

		p := c.products[f.ProductCode]
		if p == nil {
			p = &prodAgg{name: f.ProductName, monthly: map[int]map[snowflake.ID]struct{}{}}
			c.products[f.ProductCode] = p
		}
		if p.monthly[m] == nil {
			p.monthly[m] = map[snowflake.ID]struct{}{}
		}
		p.monthly[m][f.OrderID] = struct{}{}
	}

	out := make([]domain.CategoryMonthlyProbabilities, 0, len(cats))
	for _, code := range categoryOrder(cats) {
		c := cats[code]
		group := domain.CategoryMonthlyProbabilities{
			GroupCode: code,
			GroupName: c.name,
			Products:  make([]domain.ProductMonthlyProbabilities, 0, len(c.products)),
		}
		for _, pc := range sortedStringKeys(c.products) {
			p := c.products[pc]
			entry := domain.ProductMonthlyProbabilities{
				ProductCode: pc,
				ProductName: p.name,
				MonthlyData: make([]domain.MonthlyProbability, 0, len(p.monthly)),
			}
			for _, m := range sortedIntKeys(p.monthly) {
				prob := 0.0
				if denom := len(c.monthly[m]); denom > 0 {
					prob = float64(len(p.monthly[m])) / float64(denom)
				}
				entry.MonthlyData = append(entry.MonthlyData, domain.MonthlyProbability{
					Month:       m,
					Probability: prob,
				})
			}
			group.Products = append(group.Products, entry)
		}
		out = append(out, group)
	}
	return out, nil
}

func (s *service) orderFrequency(ctx context.Context) (any, error) {
	rows, err := s.repo.CustomerOrderCounts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	freq := map[int]int{}
	for _, r := range rows {
		freq[int(r.OrderCount)]++
	}

	out := make([]domain.OrderFrequency, 0, len(freq))
	for _, n := range sortedIntKeys(freq) {
		out = append(out, domain.OrderFrequency{TotalOrders: n, CountCustomers: freq[n]})
	}
	return out, nil
}

func (s *service) customerSpending(ctx context.Context) (any, error) {
	rows, err := s.repo.CustomerSpending(ctx, s.db)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CustomerSpend, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.CustomerSpend{TotalSpent: r.TotalSpent})
	}
	return out, nil
}

func (s *service) segmentCustomerCounts(ctx context.Context) (any, error) {
	rows, err := s.repo.SegmentCustomerCounts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{}
	names := map[string]string{}
	order := []string{}
	for _, r := range rows {
		code := codeOrUnknown(r.SegmentCode)
		if _, ok := counts[code]; !ok {
			order = append(order, code)
			names[code] = nameOrUnknown(r.SegmentName)
		}
		counts[code] += r.CustomerCount
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })

	out := make([]domain.SegmentCustomerCount, 0, len(order))
	for _, code := range order {
		out = append(out, domain.SegmentCustomerCount{
			SegmentCode:   code,
			SegmentName:   names[code],
			CustomerCount: counts[code],
		})
	}
	return out, nil
}

func (s *service) segmentRevenue(ctx context.Context) (any, error) {
	rows, err := s.repo.SegmentRevenue(ctx, s.db)
	if err != nil {
		return nil, err
	}

	totals := map[string]int64{}
	names := map[string]string{}
	order := []string{}
	for _, r := range rows {
		code := codeOrUnknown(r.SegmentCode)
		if _, ok := totals[code]; !ok {
			order = append(order, code)
			names[code] = nameOrUnknown(r.SegmentName)
		}
		totals[code] += r.TotalRevenue
	}
	sort.SliceStable(order, func(i, j int) bool { return totals[order[i]] > totals[order[j]] })

	out := make([]domain.SegmentRevenue, 0, len(order))
	for _, code := range order {
		out = append(out, domain.SegmentRevenue{
			SegmentCode:  code,
			SegmentName:  names[code],
			TotalRevenue: totals[code],
		})
	}
	return out, nil
}

// peakMonthSegmentRevenue finds the single highest-revenue month (the
// first of equal maxima) and breaks its revenue down by segment.
func (s *service) peakMonthSegmentRevenue(ctx context.Context) (any, error) {
	facts, err := s.repo.DetailFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	out := []domain.PeakSegmentRevenue{}
	if len(facts) == 0 {
		return out, nil
	}

	monthTotal := map[int]int64{}
	for _, f := range facts {
		monthTotal[int(f.CreatedAt.Month())] += f.Total
	}
	peak := 0
	var best int64
	for _, m := range sortedIntKeys(monthTotal) {
		if peak == 0 || monthTotal[m] > best {
			peak, best = m, monthTotal[m]
		}
	}

	totals := map[string]int64{}
	names := map[string]string{}
	for _, f := range facts {
		if int(f.CreatedAt.Month()) != peak {
			continue
		}
		code := codeOrUnknown(f.SegmentCode)
		if _, ok := totals[code]; !ok {
			names[code] = nameOrUnknown(f.SegmentName)
		}
		totals[code] += f.Total
	}

	order := sortedStringKeys(totals)
	sort.SliceStable(order, func(i, j int) bool { return totals[order[i]] > totals[order[j]] })
	for _, code := range order {
		out = append(out, domain.PeakSegmentRevenue{
			SegmentCode:  code,
			SegmentName:  names[code],
			TotalRevenue: totals[code],
			PeakMonth:    peak,
		})
	}
	return out, nil
}

func (s *service) segmentAOV(ctx context.Context) (any, error) {
	rows, err := s.repo.SegmentOrderStats(ctx, s.db)
	if err != nil {
		return nil, err
	}

	type agg struct {
		name    string
		orders  int64
		revenue int64
	}
	aggs := map[string]*agg{}
	for _, r := range rows {
		code := codeOrUnknown(r.SegmentCode)
		a := aggs[code]
		if a == nil {
			a = &agg{name: nameOrUnknown(r.SegmentName)}
			aggs[code] = a
		}
		a.orders += r.OrderCount
		a.revenue += r.TotalRevenue
	}

	aov := func(a *agg) int64 {
		if a.orders == 0 {
			return 0
		}
		return a.revenue / a.orders
	}

	order := sortedStringKeys(aggs)
	sort.SliceStable(order, func(i, j int) bool { return aov(aggs[order[i]]) > aov(aggs[order[j]]) })

	out := make([]domain.SegmentAOV, 0, len(order))
	for _, code := range order {
		a := aggs[code]
		out = append(out, domain.SegmentAOV{
			SegmentCode:  code,
			SegmentName:  a.name,
			AOV:          aov(a),
			OrderCount:   a.orders,
			TotalRevenue: a.revenue,
		})
	}
	return out, nil
}

func (s *service) monthlyGrowth(ctx context.Context) (any, error) {
	facts, err := s.repo.DetailFacts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	totals := map[int]int64{}
	for _, f := range facts {
		totals[int(f.CreatedAt.Month())] += f.Total
	}

	out := []domain.MonthlyGrowth{}
	var prev int64
	for i, m := range sortedIntKeys(totals) {
		cur := totals[m]
		rate := 0.0
		if i > 0 && prev > 0 {
			rate = round1(float64(cur-prev) / float64(prev) * 100)
		}
		out = append(out, domain.MonthlyGrowth{
			Month:        m,
			TotalRevenue: cur,
			GrowthRate:   rate,
		})
		prev = cur
	}
	return out, nil
}

func (s *service) segmentCategoryPivot(ctx context.Context) (any, error) {
	cells, err := s.repo.SegmentCategoryRevenue(ctx, s.db)
	if err != nil {
		return nil, err
	}
	segRows, err := s.repo.SegmentNames(ctx, s.db)
	if err != nil {
		return nil, err
	}
	catRows, err := s.repo.CategoryNames(ctx, s.db)
	if err != nil {
		return nil, err
	}

	segNames := map[string]string{}
	for _, r := range segRows {
		segNames[codeOrUnknown(r.Code)] = r.Name
	}
	catNames := map[string]string{}
	for _, r := range catRows {
		catNames[codeOrUnknown(r.Code)] = r.Name
	}

	type rowAgg struct {
		total int64
		cells map[string]int64
	}
	rows := map[string]*rowAgg{}
	catSet := map[string]struct{}{}
	for _, c := range cells {
		seg := codeOrUnknown(c.SegmentCode)
		cat := codeOrUnknown(c.CategoryCode)
		catSet[cat] = struct{}{}
		row := rows[seg]
		if row == nil {
			row = &rowAgg{cells: map[string]int64{}}
			rows[seg] = row
		}
		row.cells[cat] += c.TotalRevenue
		row.total += c.TotalRevenue
	}
	if _, ok := rows[domain.UnknownCode]; ok {
		segNames[domain.UnknownCode] = domain.UnknownName
	}
	if _, ok := catSet[domain.UnknownCode]; ok {
		catNames[domain.UnknownCode] = domain.UnknownName
	}

	segments := sortedStringKeys(rows)
	categories := make([]string, 0, len(catSet))
	for cat := range catSet {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	matrix := make([]domain.PivotRow, 0, len(segments))
	for _, seg := range segments {
		agg := rows[seg]
		row := domain.PivotRow{
			SegmentCode: seg,
			SegmentName: displayName(segNames, seg),
			Total:       agg.total,
			Categories:  make(map[string]domain.PivotCell, len(categories)),
		}
		for _, cat := range categories {
			rev := agg.cells[cat]
			pct := 0.0
			if agg.total > 0 {
				pct = round2(float64(rev) / float64(agg.total) * 100)
			}
			row.Categories[cat] = domain.PivotCell{Revenue: rev, Percentage: pct}
		}
		matrix = append(matrix, row)
	}

	return domain.Pivot{
		Segments:      segments,
		Categories:    categories,
		SegmentNames:  segNames,
		CategoryNames: catNames,
		Matrix:        matrix,
	}, nil
}

func (s *service) segmentSpendStats(ctx context.Context) (any, error) {
	rows, err := s.repo.CustomerSpending(ctx, s.db)
	if err != nil {
		return nil, err
	}

	by := map[string][]int64{}
	for _, r := range rows {
		code := codeOrUnknown(r.SegmentCode)
		by[code] = append(by[code], r.TotalSpent)
	}

	out := make([]domain.SegmentSpendStats, 0, len(by))
	for _, code := range sortedStringKeys(by) {
		out = append(out, spendStats(code, by[code]))
	}
	return out, nil
}

// categoryOrder lists the present category codes with the fixed override
// first and everything else appended in code order.
func categoryOrder[V any](cats map[string]V) []string {
	seen := map[string]struct{}{}
	order := []string{}
	for _, code := range domain.PreferredCategoryOrder {
		if _, ok := cats[code]; ok {
			order = append(order, code)
			seen[code] = struct{}{}
		}
	}
	for _, code := range sortedStringKeys(cats) {
		if _, ok := seen[code]; !ok {
			order = append(order, code)
		}
	}
	return order
}

func sortedIntKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedStringKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
