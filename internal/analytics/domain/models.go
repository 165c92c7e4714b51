package domain

// Sentinel labels for absent segment/category groupings.
const (
	UnknownCode = "KXĐ"
	UnknownName = "Không xác định"
)

// PreferredCategoryOrder fixes the category ordering of the nested
// monthly view; categories outside the list are appended afterward.
var PreferredCategoryOrder = []string{"BOT", "SET", "THO", "TMX", "TTC"}

// ProductRevenue is one Q1 row: total revenue per product.
type ProductRevenue struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	GroupCode string `json:"groupCode"`
	GroupName string `json:"groupName"`
	Total     int64  `json:"total"`
}

// CategoryRevenue is one Q2 row: total revenue per category.
type CategoryRevenue struct {
	GroupCode string `json:"groupCode"`
	GroupName string `json:"groupName"`
	Total     int64  `json:"total"`
}

// MonthlyRevenue is one Q3 row.
type MonthlyRevenue struct {
	Month int   `json:"month"`
	Total int64 `json:"total"`
}

// WeekdayRevenue is one Q4 row: average daily revenue per weekday.
type WeekdayRevenue struct {
	Day        string  `json:"day"`
	AvgRevenue float64 `json:"avgRevenue"`
}

// DayOfMonthRevenue is one Q5 row.
type DayOfMonthRevenue struct {
	Day        int     `json:"day"`
	AvgRevenue float64 `json:"avgRevenue"`
}

// HourlyRevenue is one Q6 row.
type HourlyRevenue struct {
	Hour       int     `json:"hour"`
	AvgRevenue float64 `json:"avgRevenue"`
}

// CategoryProbability is one Q7 row: share of distinct orders that
// contain the category.
type CategoryProbability struct {
	GroupCode   string  `json:"groupCode"`
	GroupName   string  `json:"groupName"`
	Probability float64 `json:"probability"`
}

// MonthlyCategoryProbability is one Q8 row: Q7 partitioned by month.
type MonthlyCategoryProbability struct {
	Month       int     `json:"month"`
	GroupCode   string  `json:"groupCode"`
	GroupName   string  `json:"groupName"`
	Probability float64 `json:"probability"`
}

// ProductProbability is one product entry of a Q9 category group.
type ProductProbability struct {
	GroupCode   string  `json:"group_code"`
	GroupName   string  `json:"group_name"`
	ProductCode string  `json:"product_code"`
	ProductName string  `json:"product_name"`
	Probability float64 `json:"probability"`
}

// CategoryProductProbabilities is one Q9 group: product order share
// within the category.
type CategoryProductProbabilities struct {
	GroupCode string               `json:"group_code"`
	GroupName string               `json:"group_name"`
	Products  []ProductProbability `json:"products"`
}

// MonthlyProbability is one month entry of a Q10 product.
type MonthlyProbability struct {
	Month       int     `json:"month"`
	Probability float64 `json:"probability"`
}

// ProductMonthlyProbabilities is one product of a Q10 category group.
type ProductMonthlyProbabilities struct {
	ProductCode string               `json:"product_code"`
	ProductName string               `json:"product_name"`
	MonthlyData []MonthlyProbability `json:"monthly_data"`
}

// CategoryMonthlyProbabilities is one Q10 group.
type CategoryMonthlyProbabilities struct {
	GroupCode string                        `json:"group_code"`
	GroupName string                        `json:"group_name"`
	Products  []ProductMonthlyProbabilities `json:"products"`
}

// OrderFrequency is one Q11 row: how many customers placed exactly
// TotalOrders distinct orders (zero included).
type OrderFrequency struct {
	TotalOrders    int `json:"total_orders"`
	CountCustomers int `json:"count_customers"`
}

// CustomerSpend is one Q12 row.
type CustomerSpend struct {
	TotalSpent int64 `json:"total_spent"`
}

// SegmentCustomerCount is one Q13 row.
type SegmentCustomerCount struct {
	SegmentCode   string `json:"segment_code"`
	SegmentName   string `json:"segment_name"`
	CustomerCount int64  `json:"customer_count"`
}

// SegmentRevenue is one Q14 row.
type SegmentRevenue struct {
	SegmentCode  string `json:"segment_code"`
	SegmentName  string `json:"segment_name"`
	TotalRevenue int64  `json:"total_revenue"`
}

// PeakSegmentRevenue is one Q15 row: segment revenue restricted to the
// single peak-revenue month.
type PeakSegmentRevenue struct {
	SegmentCode  string `json:"segment_code"`
	SegmentName  string `json:"segment_name"`
	TotalRevenue int64  `json:"total_revenue"`
	PeakMonth    int    `json:"peak_month"`
}

// SegmentAOV is one Q16 row. AOV is revenue over distinct order count,
// truncated to an integer.
type SegmentAOV struct {
	SegmentCode  string `json:"segment_code"`
	SegmentName  string `json:"segment_name"`
	AOV          int64  `json:"aov"`
	OrderCount   int64  `json:"order_count"`
	TotalRevenue int64  `json:"total_revenue"`
}

// MonthlyGrowth is one Q17 row. GrowthRate is a percentage with one
// decimal; it is 0 for the first month and after a zero-revenue month.
type MonthlyGrowth struct {
	Month        int     `json:"month"`
	TotalRevenue int64   `json:"total_revenue"`
	GrowthRate   float64 `json:"growth_rate"`
}

// PivotCell is one segment×category cell of the Q18 matrix. Percentage
// is of the segment's own row total, two decimals.
type PivotCell struct {
	Revenue    int64   `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

// PivotRow is one Q18 matrix row.
type PivotRow struct {
	SegmentCode string               `json:"segment_code"`
	SegmentName string               `json:"segment_name"`
	Total       int64                `json:"total"`
	Categories  map[string]PivotCell `json:"categories"`
}

// Pivot is the Q18 result: a segment×category revenue cross-tab.
type Pivot struct {
	Segments      []string          `json:"segments"`
	Categories    []string          `json:"categories"`
	SegmentNames  map[string]string `json:"segment_names"`
	CategoryNames map[string]string `json:"category_names"`
	Matrix        []PivotRow        `json:"matrix"`
}

// SegmentSpendStats is one Q19 row: box-plot statistics over per-customer
// total spend within a segment. Quartiles use index-based selection, not
// interpolation.
type SegmentSpendStats struct {
	SegmentCode   string  `json:"segment_code"`
	Min           int64   `json:"min"`
	Q1            int64   `json:"q1"`
	Median        int64   `json:"median"`
	Q3            int64   `json:"q3"`
	Max           int64   `json:"max"`
	WhiskerBottom int64   `json:"whisker_bottom"`
	WhiskerTop    int64   `json:"whisker_top"`
	Outliers      []int64 `json:"outliers"`
	RawData       []int64 `json:"raw_data"`
}
