package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
	"github.com/BruksfildServices01/dental-admin/internal/listing"
	"github.com/BruksfildServices01/dental-admin/internal/view"
)

type ViewHandler struct {
	views *view.Controller
}

func NewViewHandler(views *view.Controller) *ViewHandler {
	return &ViewHandler{views: views}
}

// Show answers GET /view/:section?category=&status=&q=&page=&pageSize=.
func (h *ViewHandler) Show(c *gin.Context) {
	res, err := h.views.Show(c.Request.Context(), view.Request{
		Section:  c.Param("section"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Query:    c.Query("q"),
		Page:     listing.ParsePage(c.DefaultQuery("page", "1")),
		PageSize: listing.ParsePageSize(c.Query("pageSize")),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, res)
}
