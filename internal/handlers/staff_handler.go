package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/staff"
	"github.com/BruksfildServices01/dental-admin/internal/guard"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
	ucStaff "github.com/BruksfildServices01/dental-admin/internal/usecase/staff"
)

type StaffHandler struct {
	create *ucStaff.CreateStaff
	update *ucStaff.UpdateStaff
	delete *ucStaff.DeleteStaff
	guard  *guard.Submissions
}

func NewStaffHandler(
	create *ucStaff.CreateStaff,
	update *ucStaff.UpdateStaff,
	del *ucStaff.DeleteStaff,
	g *guard.Submissions,
) *StaffHandler {
	return &StaffHandler{create: create, update: update, delete: del, guard: g}
}

func (h *StaffHandler) Create(c *gin.Context) {
	var in domain.Input
	if !bindJSON(c, &in) {
		return
	}
	release, ok := hold(c, h.guard, "staff:create")
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

func (h *StaffHandler) Update(c *gin.Context) {
	var in domain.Input
	if !bindJSON(c, &in) {
		return
	}
	id := c.Param("id")
	release, ok := hold(c, h.guard, "staff:"+id)
	if !ok {
		return
	}
	defer release()

	s, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *StaffHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
