// Package http provides HTTP handlers for the return workflow.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlinz/returns/internal/httputil"
	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
	"github.com/onlinz/returns/internal/returns/http/dto"
	returnsUseCase "github.com/onlinz/returns/internal/returns/usecase"
	customValidation "github.com/onlinz/returns/internal/validation"
)

// ReceiptHandler handles HTTP requests for return quotes and receipts.
type ReceiptHandler struct {
	receiptUseCase returnsUseCase.ReceiptUseCase
	logger         *slog.Logger
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(receiptUseCase returnsUseCase.ReceiptUseCase, logger *slog.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptUseCase: receiptUseCase,
		logger:         logger,
	}
}

// ValidateCustomerHandler reports the validity of every customer field.
// POST /v1/customers/validate - Always returns 200 OK with the report.
func (h *ReceiptHandler) ValidateCustomerHandler(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	report := h.receiptUseCase.ValidateCustomer(req.ToForm())
	c.JSON(http.StatusOK, dto.MapReportToResponse(report))
}

// FormatTelephoneHandler puts a telephone number in national format.
// POST /v1/telephone/format - Returns 200 OK. Numbers that cannot be parsed
// are echoed back with changed=false.
func (h *ReceiptHandler) FormatTelephoneHandler(c *gin.Context) {
	var req dto.TelephoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	formatted, changed := h.receiptUseCase.FormatTelephone(req.Telephone)
	c.JSON(http.StatusOK, dto.TelephoneResponse{Telephone: formatted, Changed: changed})
}

// ListZonesHandler lists the priced islands in display order.
// GET /v1/zones - Returns 200 OK.
func (h *ReceiptHandler) ListZonesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MapTariffsToListResponse(h.receiptUseCase.Tariffs()))
}

// QuoteHandler prices a box for an island without saving anything.
// POST /v1/quotes - Returns 200 OK, or 422 with per-field messages.
func (h *ReceiptHandler) QuoteHandler(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	report := h.receiptUseCase.ValidateBox(req.BoxRequest.ToForm())
	if err := req.ValidateIsland(h.zoneNames()); err != nil {
		report.Invalidate(returnsDomain.FieldIsland, err.Error())
	}
	if !report.Valid() {
		httputil.HandleErrorGin(c, returnsDomain.NewValidationError(report), h.logger)
		return
	}

	box, err := h.receiptUseCase.BoxDimensions(req.BoxRequest.ToForm())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	quote, err := h.receiptUseCase.Quote(c.Request.Context(), box, pricingDomain.Zone(req.Island))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapQuoteToResponse(quote))
}

// CreateReceiptHandler prices a complete return and appends its receipt.
// POST /v1/receipts - Returns 201 Created, 422 with per-field messages for
// invalid input or 503 when the receipt could not be saved.
func (h *ReceiptHandler) CreateReceiptHandler(c *gin.Context) {
	var req dto.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	customerForm := req.Customer.ToForm()
	boxForm := req.Box.ToForm()

	report := returnsDomain.MergeReports(
		h.receiptUseCase.ValidateCustomer(customerForm),
		h.receiptUseCase.ValidateBox(boxForm),
	)
	if !report.Valid() {
		httputil.HandleErrorGin(c, returnsDomain.NewValidationError(report), h.logger)
		return
	}

	customer, err := h.receiptUseCase.CustomerDetails(customerForm)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	box, err := h.receiptUseCase.BoxDimensions(boxForm)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	receipt, err := h.receiptUseCase.Finalize(c.Request.Context(), customer, box)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("receipt saved",
		slog.String("receipt_id", receipt.ID.String()),
		slog.String("island", string(receipt.Island)),
		slog.Float64("cost", receipt.Cost),
	)

	c.JSON(http.StatusCreated, dto.MapReceiptToResponse(receipt))
}

// ListReceiptsHandler returns saved receipts in insertion order.
// GET /v1/receipts?offset=0&limit=50 - Returns 200 OK.
func (h *ReceiptHandler) ListReceiptsHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	receipts, err := h.receiptUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	page := httputil.Page(receipts, offset, limit)
	c.JSON(http.StatusOK, dto.MapReceiptsToListResponse(page, len(receipts), offset, limit))
}

func (h *ReceiptHandler) zoneNames() []string {
	tariffs := h.receiptUseCase.Tariffs()
	names := make([]string, len(tariffs))
	for i, t := range tariffs {
		names[i] = string(t.Zone)
	}
	return names
}
