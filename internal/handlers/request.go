package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/guard"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
)

// bindJSON decodes the body into req and answers 400 itself on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is not valid JSON.")
		return false
	}
	return true
}

func queryInt(c *gin.Context, key string, def int) int {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// hold claims the form's submission slot. On a duplicate submission it
// answers 409 and returns ok=false.
func hold(c *gin.Context, g *guard.Submissions, form string) (release func(), ok bool) {
	release, err := g.Acquire(form)
	if err != nil {
		httperr.FromError(c, err)
		return nil, false
	}
	return release, true
}
