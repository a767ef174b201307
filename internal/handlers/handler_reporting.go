package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Corely-AI/corely-ledger/internal/core/ports/services"
	"github.com/Corely-AI/corely-ledger/internal/dto"
	"github.com/Corely-AI/corely-ledger/internal/middleware"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes registers the /reports routes.
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)
	reports := group.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/general-ledger/:accountID", h.getGeneralLedger)
		reports.GET("/profit-loss", h.getProfitLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
	}
}

// getTrialBalance godoc
// @Summary Get the trial balance
// @Description Per-account debit and credit sums over a date range. Accounts without activity are omitted.
// @Tags reports
// @Produce json
// @Param fromDate query string true "Range start (YYYY-MM-DD)"
// @Param toDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 404 {object} map[string]string "Accounting not set up"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getTrialBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
		return
	}

	tenantID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetTrialBalance(c.Request.Context(), tenantID, params.FromDate, params.ToDate)
	if err != nil {
		respondError(c, logger, err, "Failed to build trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// getGeneralLedger godoc
// @Summary Get the general ledger of one account
// @Description Account movements over a date range with opening, running and closing balances
// @Tags reports
// @Produce json
// @Param accountID path string true "Account ID"
// @Param fromDate query string true "Range start (YYYY-MM-DD)"
// @Param toDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.GeneralLedgerResponse
// @Failure 404 {object} map[string]string "Account not found or accounting not set up"
// @Router /reports/general-ledger/{accountID} [get]
func (h *reportingHandler) getGeneralLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getGeneralLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
		return
	}

	tenantID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetGeneralLedger(c.Request.Context(), tenantID, accountID, params.FromDate, params.ToDate)
	if err != nil {
		respondError(c, logger, err, "Failed to build general ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToGeneralLedgerResponse(report))
}

// getProfitLoss godoc
// @Summary Get the profit and loss statement
// @Description Income and expense balances over a date range with the resulting net profit
// @Tags reports
// @Produce json
// @Param fromDate query string true "Range start (YYYY-MM-DD)"
// @Param toDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitLossResponse
// @Failure 404 {object} map[string]string "Accounting not set up"
// @Router /reports/profit-loss [get]
func (h *reportingHandler) getProfitLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getProfitLoss", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
		return
	}

	tenantID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetProfitLoss(c.Request.Context(), tenantID, params.FromDate, params.ToDate)
	if err != nil {
		respondError(c, logger, err, "Failed to build profit and loss")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitLossResponse(report))
}

// getBalanceSheet godoc
// @Summary Get the balance sheet
// @Description Asset, liability and equity balances cumulatively since inception up to the cut-off date
// @Tags reports
// @Produce json
// @Param asOfDate query string true "Cut-off date (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 404 {object} map[string]string "Accounting not set up"
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getBalanceSheet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cut-off date"})
		return
	}

	tenantID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GetBalanceSheet(c.Request.Context(), tenantID, params.AsOfDate)
	if err != nil {
		respondError(c, logger, err, "Failed to build balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}
