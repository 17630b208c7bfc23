package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/attendance"
	"github.com/BruksfildServices01/dental-admin/internal/guard"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
	ucAttendance "github.com/BruksfildServices01/dental-admin/internal/usecase/attendance"
)

type AttendanceHandler struct {
	mark   *ucAttendance.MarkAttendance
	delete *ucAttendance.DeleteAttendance
	guard  *guard.Submissions
}

func NewAttendanceHandler(
	mark *ucAttendance.MarkAttendance,
	del *ucAttendance.DeleteAttendance,
	g *guard.Submissions,
) *AttendanceHandler {
	return &AttendanceHandler{mark: mark, delete: del, guard: g}
}

func (h *AttendanceHandler) Mark(c *gin.Context) {
	var in domain.Input
	if !bindJSON(c, &in) {
		return
	}
	release, ok := hold(c, h.guard, "attendance:"+in.StaffID)
	if !ok {
		return
	}
	defer release()

	rec, err := h.mark.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, rec)
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
