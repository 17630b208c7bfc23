package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/patient"
	"github.com/BruksfildServices01/dental-admin/internal/guard"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
	ucPatient "github.com/BruksfildServices01/dental-admin/internal/usecase/patient"
)

type PatientHandler struct {
	create *ucPatient.CreatePatient
	update *ucPatient.UpdatePatient
	delete *ucPatient.DeletePatient
	guard  *guard.Submissions
}

func NewPatientHandler(
	create *ucPatient.CreatePatient,
	update *ucPatient.UpdatePatient,
	del *ucPatient.DeletePatient,
	g *guard.Submissions,
) *PatientHandler {
	return &PatientHandler{create: create, update: update, delete: del, guard: g}
}

func (h *PatientHandler) Create(c *gin.Context) {
	var in domain.Input
	if !bindJSON(c, &in) {
		return
	}
	release, ok := hold(c, h.guard, "patient:create")
	if !ok {
		return
	}
	defer release()

	p, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, p)
}

func (h *PatientHandler) Update(c *gin.Context) {
	var in domain.Input
	if !bindJSON(c, &in) {
		return
	}
	id := c.Param("id")
	release, ok := hold(c, h.guard, "patient:"+id)
	if !ok {
		return
	}
	defer release()

	p, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

// Delete answers with what the follow-up referential repair changed.
func (h *PatientHandler) Delete(c *gin.Context) {
	res, err := h.delete.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id"), "repair": res})
}
