package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/invoice-dashboard/data"
	"github.com/yourusername/invoice-dashboard/models"
	"github.com/yourusername/invoice-dashboard/store"
	"github.com/yourusername/invoice-dashboard/utils"
)

type DashboardHandler struct {
	svc *data.Service
}

func NewDashboardHandler(svc *data.Service) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
	}
}

// InvoiceRow is an invoice search row with display-ready amount and date.
type InvoiceRow struct {
	models.InvoicesTable
	FormattedAmount string `json:"formatted_amount"`
	FormattedDate   string `json:"formatted_date"`
}

type InvoicesPagesResponse struct {
	TotalPages int      `json:"total_pages"`
	Pages      []string `json:"pages"`
}

func (h *DashboardHandler) Revenue(c *gin.Context) {
	revenue, err := h.svc.FetchRevenue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, revenue)
}

func (h *DashboardHandler) Cards(c *gin.Context) {
	cards, err := h.svc.FetchCardData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *DashboardHandler) LatestInvoices(c *gin.Context) {
	latest, err := h.svc.FetchLatestInvoices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, latest)
}

func (h *DashboardHandler) Invoices(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	rows, err := h.svc.FetchFilteredInvoices(c.Request.Context(), c.Query("query"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]InvoiceRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, InvoiceRow{
			InvoicesTable:   row,
			FormattedAmount: utils.FormatCurrency(row.Amount),
			FormattedDate:   utils.FormatDateToLocal(row.Date),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *DashboardHandler) InvoicesPages(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	total, err := h.svc.FetchInvoicesPages(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, InvoicesPagesResponse{
		TotalPages: total,
		Pages:      utils.GeneratePagination(page, total),
	})
}

func (h *DashboardHandler) Invoice(c *gin.Context) {
	invoice, err := h.svc.FetchInvoiceByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *DashboardHandler) Customers(c *gin.Context) {
	customers, err := h.svc.FetchFilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *DashboardHandler) CustomerFields(c *gin.Context) {
	fields, err := h.svc.FetchCustomerFields(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

func pageParam(c *gin.Context) (int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
		return 0, false
	}
	return page, true
}

// respondError answers with the fixed message of a DataAccessError and
// records the full error on the context for the request logger.
func respondError(c *gin.Context, err error) {
	c.Error(err)

	var dae *data.DataAccessError
	if errors.As(err, &dae) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": dae.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
