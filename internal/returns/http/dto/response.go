package dto

import (
	"time"

	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

// ValidityResponse reports the validity of every field of a form.
type ValidityResponse struct {
	Valid  bool                                 `json:"valid"`
	Fields map[string]returnsDomain.FieldResult `json:"fields"`
}

// MapReportToResponse converts a validity report to an API response.
func MapReportToResponse(report returnsDomain.ValidityReport) ValidityResponse {
	fields := make(map[string]returnsDomain.FieldResult, len(report.Fields()))
	for f, res := range report.Results() {
		fields[string(f)] = res
	}
	return ValidityResponse{Valid: report.Valid(), Fields: fields}
}

// TelephoneResponse carries a formatted telephone number.
type TelephoneResponse struct {
	Telephone string `json:"telephone"`
	Changed   bool   `json:"changed"`
}

// ZoneResponse is one row of the tariff table.
type ZoneResponse struct {
	Island     string  `json:"island"`
	Multiplier float64 `json:"multiplier"`
}

// ListZonesResponse lists the priced zones in table order.
type ListZonesResponse struct {
	Data []ZoneResponse `json:"data"`
}

// MapTariffsToListResponse converts the tariff table to an API response.
func MapTariffsToListResponse(tariffs []pricingDomain.Tariff) ListZonesResponse {
	zones := make([]ZoneResponse, 0, len(tariffs))
	for _, t := range tariffs {
		zones = append(zones, ZoneResponse{Island: string(t.Zone), Multiplier: t.Multiplier})
	}
	return ListZonesResponse{Data: zones}
}

// QuoteResponse is the cost breakdown of a return.
type QuoteResponse struct {
	Height     float64 `json:"height"`
	Width      float64 `json:"width"`
	Depth      float64 `json:"depth"`
	Volume     float64 `json:"volume"`
	Island     string  `json:"island"`
	BaseRate   float64 `json:"base_rate"`
	Multiplier float64 `json:"multiplier"`
	Cost       float64 `json:"cost"`
}

// MapQuoteToResponse converts a quote to an API response. Volume and cost
// are rounded to two decimals.
func MapQuoteToResponse(q *pricingDomain.Quote) QuoteResponse {
	return QuoteResponse{
		Height:     q.Height,
		Width:      q.Width,
		Depth:      q.Depth,
		Volume:     returnsDomain.Round2(q.Volume),
		Island:     string(q.Zone),
		BaseRate:   q.BaseRate,
		Multiplier: q.Multiplier,
		Cost:       returnsDomain.Round2(q.Cost),
	}
}

// ReceiptResponse represents a saved receipt in API responses.
type ReceiptResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Telephone string    `json:"telephone"`
	Address   string    `json:"address"`
	Island    string    `json:"island"`
	Height    float64   `json:"height"`
	Width     float64   `json:"width"`
	Depth     float64   `json:"depth"`
	Volume    float64   `json:"volume"`
	Cost      float64   `json:"cost"`
	CreatedAt time.Time `json:"created_at"`
	Lines     []string  `json:"lines"`
}

// MapReceiptToResponse converts a receipt record to an API response.
func MapReceiptToResponse(r *returnsDomain.ReceiptRecord) ReceiptResponse {
	return ReceiptResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		Email:     r.Email,
		Telephone: r.Telephone,
		Address:   r.Address,
		Island:    string(r.Island),
		Height:    r.Height,
		Width:     r.Width,
		Depth:     r.Depth,
		Volume:    r.Volume,
		Cost:      r.Cost,
		CreatedAt: r.CreatedAt,
		Lines:     r.Lines(),
	}
}

// ListReceiptsResponse is one page of receipts.
type ListReceiptsResponse struct {
	Data   []ReceiptResponse `json:"data"`
	Total  int               `json:"total"`
	Offset int               `json:"offset"`
	Limit  int               `json:"limit"`
}

// MapReceiptsToListResponse converts a page of receipts to an API response.
func MapReceiptsToListResponse(
	receipts []*returnsDomain.ReceiptRecord,
	total, offset, limit int,
) ListReceiptsResponse {
	data := make([]ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		data = append(data, MapReceiptToResponse(r))
	}
	return ListReceiptsResponse{Data: data, Total: total, Offset: offset, Limit: limit}
}
