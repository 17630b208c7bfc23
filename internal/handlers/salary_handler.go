package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/salary"
	"github.com/BruksfildServices01/dental-admin/internal/guard"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
	ucSalary "github.com/BruksfildServices01/dental-admin/internal/usecase/salary"
)

type SalaryHandler struct {
	create   *ucSalary.CreateSalary
	markPaid *ucSalary.MarkSalaryPaid
	delete   *ucSalary.DeleteSalary
	guard    *guard.Submissions
}

func NewSalaryHandler(
	create *ucSalary.CreateSalary,
	markPaid *ucSalary.MarkSalaryPaid,
	del *ucSalary.DeleteSalary,
	g *guard.Submissions,
) *SalaryHandler {
	return &SalaryHandler{create: create, markPaid: markPaid, delete: del, guard: g}
}

func (h *SalaryHandler) Create(c *gin.Context) {
	var in domain.Input
	if !bindJSON(c, &in) {
		return
	}
	release, ok := hold(c, h.guard, "salary:create")
	if !ok {
		return
	}
	defer release()

	s, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *SalaryHandler) MarkPaid(c *gin.Context) {
	s, err := h.markPaid.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *SalaryHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
