package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-admin/internal/guard"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/dental-admin/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create      *ucAppointment.CreateAppointment
	update      *ucAppointment.UpdateAppointment
	status      *ucAppointment.ChangeStatus
	delete      *ucAppointment.DeleteAppointment
	listByDate  *ucAppointment.ListAppointmentsByDate
	listByMonth *ucAppointment.ListAppointmentsByMonth
	slots       *ucAppointment.SuggestSlots
	guard       *guard.Submissions
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	status *ucAppointment.ChangeStatus,
	del *ucAppointment.DeleteAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
	slots *ucAppointment.SuggestSlots,
	g *guard.Submissions,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:      create,
		update:      update,
		status:      status,
		delete:      del,
		listByDate:  listByDate,
		listByMonth: listByMonth,
		slots:       slots,
		guard:       g,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// WRITES
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var in domain.Input
	if !bindJSON(c, &in) {
		return
	}
	release, ok := hold(c, h.guard, "appointment:create")
	if !ok {
		return
	}
	defer release()

	ap, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var in domain.Input
	if !bindJSON(c, &in) {
		return
	}
	id := c.Param("id")
	release, ok := hold(c, h.guard, "appointment:"+id)
	if !ok {
		return
	}
	defer release()

	ap, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	ap, err := h.status.Execute(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// READS
// ======================================================

// ListByDate answers GET /appointments?date=yyyy-mm-dd; no date means today.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	items, err := h.listByDate.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	items, err := h.listByMonth.Execute(c.Request.Context(), queryInt(c, "year", 0), queryInt(c, "month", 0))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *AppointmentHandler) Slots(c *gin.Context) {
	slots, err := h.slots.Execute(c.Request.Context(), ucAppointment.SuggestSlotsInput{
		Date:     c.Query("date"),
		Duration: queryInt(c, "duration", domain.DefaultDuration),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, slots)
}
