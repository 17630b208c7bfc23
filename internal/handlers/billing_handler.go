package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/billing"
	"github.com/BruksfildServices01/dental-admin/internal/guard"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
	ucBilling "github.com/BruksfildServices01/dental-admin/internal/usecase/billing"
)

type BillingHandler struct {
	create   *ucBilling.CreateInvoice
	markPaid *ucBilling.MarkInvoicePaid
	delete   *ucBilling.DeleteInvoice
	guard    *guard.Submissions
}

func NewBillingHandler(
	create *ucBilling.CreateInvoice,
	markPaid *ucBilling.MarkInvoicePaid,
	del *ucBilling.DeleteInvoice,
	g *guard.Submissions,
) *BillingHandler {
	return &BillingHandler{create: create, markPaid: markPaid, delete: del, guard: g}
}

func (h *BillingHandler) Create(c *gin.Context) {
	var in domain.Input
	if !bindJSON(c, &in) {
		return
	}
	release, ok := hold(c, h.guard, "invoice:create")
	if !ok {
		return
	}
	defer release()

	inv, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, inv)
}

func (h *BillingHandler) MarkPaid(c *gin.Context) {
	inv, err := h.markPaid.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, inv)
}

func (h *BillingHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
