package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Corely-AI/corely-ledger/internal/core/ports/services"
	"github.com/Corely-AI/corely-ledger/internal/dto"
	"github.com/Corely-AI/corely-ledger/internal/middleware"
)

// purchasingHandler handles HTTP requests for purchasing postings.
type purchasingHandler struct {
	purchasingService portssvc.PurchasingSvcFacade
}

// newPurchasingHandler creates a new purchasingHandler.
func newPurchasingHandler(purchasingService portssvc.PurchasingSvcFacade) *purchasingHandler {
	return &purchasingHandler{purchasingService: purchasingService}
}

// registerPurchasingRoutes registers the /purchasing routes.
func registerPurchasingRoutes(group *gin.RouterGroup, purchasingService portssvc.PurchasingSvcFacade) {
	h := newPurchasingHandler(purchasingService)
	purchasing := group.Group("/purchasing")
	{
		purchasing.POST("/vendor-bills", h.postVendorBill)
		purchasing.POST("/cogs", h.postCOGS)
		purchasing.POST("/po-number", h.allocatePONumber)
	}
}

// postVendorBill godoc
// @Summary Post a vendor bill to the ledger
// @Description Records expense debits against an accounts payable credit and posts the entry. Retries with the same idempotency key replay the original result.
// @Tags purchasing
// @Accept json
// @Produce json
// @Param bill body dto.PostVendorBillRequest true "Vendor bill"
// @Success 200 {object} dto.PostVendorBillResponse
// @Failure 400 {object} map[string]string "Ledger rejected the entry"
// @Failure 404 {object} map[string]string "Accounts payable account not configured"
// @Router /purchasing/vendor-bills [post]
func (h *purchasingHandler) postVendorBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostVendorBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postVendorBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	resp, err := h.purchasingService.PostVendorBill(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post vendor bill")
		return
	}

	logger.Info("Vendor bill posted", slog.String("bill_id", req.BillID), slog.Bool("replayed", resp.Replayed))
	c.JSON(http.StatusOK, resp)
}

// postCOGS godoc
// @Summary Post cost of goods sold for a shipment
// @Description Records a COGS debit against an inventory credit and posts the entry. Retries with the same idempotency key replay the original result.
// @Tags purchasing
// @Accept json
// @Produce json
// @Param shipment body dto.PostCOGSRequest true "Shipment cost"
// @Success 200 {object} dto.PostCOGSResponse
// @Failure 400 {object} map[string]string "Ledger rejected the entry"
// @Failure 404 {object} map[string]string "COGS or inventory account not configured"
// @Router /purchasing/cogs [post]
func (h *purchasingHandler) postCOGS(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostCOGSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postCOGS", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	resp, err := h.purchasingService.PostCOGS(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post COGS")
		return
	}

	logger.Info("COGS posted", slog.String("shipment_id", req.ShipmentID), slog.Bool("replayed", resp.Replayed))
	c.JSON(http.StatusOK, resp)
}

// allocatePONumber godoc
// @Summary Allocate the next purchase order number
// @Tags purchasing
// @Produce json
// @Success 200 {object} map[string]string "Returns the allocated number"
// @Failure 404 {object} map[string]string "Accounting not set up"
// @Router /purchasing/po-number [post]
func (h *purchasingHandler) allocatePONumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	number, err := h.purchasingService.AllocatePONumber(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, logger, err, "Failed to allocate PO number")
		return
	}

	logger.Info("PO number allocated", slog.String("po_number", number))
	c.JSON(http.StatusOK, gin.H{"poNumber": number})
}
