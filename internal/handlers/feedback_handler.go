package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/feedback"
	"github.com/BruksfildServices01/dental-admin/internal/guard"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
	ucFeedback "github.com/BruksfildServices01/dental-admin/internal/usecase/feedback"
)

type FeedbackHandler struct {
	create *ucFeedback.CreateFeedback
	delete *ucFeedback.DeleteFeedback
	guard  *guard.Submissions
}

func NewFeedbackHandler(create *ucFeedback.CreateFeedback, del *ucFeedback.DeleteFeedback, g *guard.Submissions) *FeedbackHandler {
	return &FeedbackHandler{create: create, delete: del, guard: g}
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	var in domain.Input
	if !bindJSON(c, &in) {
		return
	}
	release, ok := hold(c, h.guard, "feedback:create")
	if !ok {
		return
	}
	defer release()

	f, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, f)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
