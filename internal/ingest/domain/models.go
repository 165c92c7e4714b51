package domain

// Column labels of the source CSV exports. The header is fixed and
// validated before any row is processed.
const (
	ColCustomerCode  = "Mã khách hàng"
	ColCustomerName  = "Tên khách hàng"
	ColSegmentCode   = "Mã PKKH"
	ColSegmentDesc   = "Mô tả Phân Khúc Khách hàng"
	ColCategoryCode  = "Mã nhóm hàng"
	ColCategoryName  = "Tên nhóm hàng"
	ColProductCode   = "Mã mặt hàng"
	ColProductName   = "Tên mặt hàng"
	ColUnitPrice     = "Đơn giá"
	ColOrderCode     = "Mã đơn hàng"
	ColOrderCreated  = "Thời gian tạo đơn"
	ColQuantity      = "SL"
)

// RequiredColumns lists every column the header must carry.
var RequiredColumns = []string{
	ColCustomerCode,
	ColCustomerName,
	ColSegmentCode,
	ColSegmentDesc,
	ColCategoryCode,
	ColCategoryName,
	ColProductCode,
	ColProductName,
	ColUnitPrice,
	ColOrderCode,
	ColOrderCreated,
	ColQuantity,
}

// TimeLayout is the exact timestamp pattern of the order-created column.
const TimeLayout = "2006-01-02 15:04:05"

// Row-level diagnostic reasons.
const (
	ReasonBadDate             = "bad date"
	ReasonMissingCustomerCode = "missing customer code"
	ReasonMissingProductCode  = "missing product code"
	ReasonInvalidQuantity     = "invalid quantity/price"
	ReasonDuplicateLineItem   = "duplicate line item"
	ReasonUnexpected          = "unexpected"
)

// RowDiagnostic records why a single row was skipped. Row numbers are
// 1-indexed over the data rows, excluding the header.
type RowDiagnostic struct {
	Row     int    `json:"row"`
	Reason  string `json:"reason"`
	Value   string `json:"value,omitempty"`
	Order   string `json:"order,omitempty"`
	Product string `json:"product,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Report summarizes an ingestion batch. Skipped rows never abort the
// batch; the diagnostics keep their source order.
type Report struct {
	TotalRows   int             `json:"total_rows"`
	SkippedRows int             `json:"skipped_rows"`
	Diagnostics []RowDiagnostic `json:"diagnostics"`
}
