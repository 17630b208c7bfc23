package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/guard"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/spreadsheet"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

const maxImportBytes = 10 << 20

type SpreadsheetHandler struct {
	sheets *spreadsheet.Service
	clock  *timezone.Clock
	guard  *guard.Submissions
}

func NewSpreadsheetHandler(sheets *spreadsheet.Service, clock *timezone.Clock, g *guard.Submissions) *SpreadsheetHandler {
	return &SpreadsheetHandler{sheets: sheets, clock: clock, guard: g}
}

// Import takes a multipart "file" field.
func (h *SpreadsheetHandler) Import(c *gin.Context) {
	kind, ok := models.ParseKind(c.Param("entity"))
	if !ok {
		httperr.NotFound(c, "unknown_entity", "Unknown record type.")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Choose a file to import.")
		return
	}
	if fh.Size > maxImportBytes {
		httperr.BadRequest(c, "file_too_large", "The file is larger than 10 MB.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "missing_file", "The file could not be read.")
		return
	}
	defer f.Close()

	release, ok := hold(c, h.guard, "import:"+string(kind))
	if !ok {
		return
	}
	defer release()

	rep, err := h.sheets.Import(c.Request.Context(), kind, fh.Filename, f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, rep)
}

// Export answers GET /export/:entity?format=xlsx|csv as a download.
func (h *SpreadsheetHandler) Export(c *gin.Context) {
	kind, ok := models.ParseKind(c.Param("entity"))
	if !ok {
		httperr.NotFound(c, "unknown_entity", "Unknown record type.")
		return
	}

	format := spreadsheet.Format(c.DefaultQuery("format", string(spreadsheet.FormatXLSX)))
	contentType := "text/csv; charset=utf-8"
	switch format {
	case spreadsheet.FormatXLSX:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case spreadsheet.FormatCSV:
	default:
		httperr.BadRequest(c, "unsupported_file_format", "Export as xlsx or csv.")
		return
	}

	var buf bytes.Buffer
	if err := h.sheets.Export(c.Request.Context(), kind, format, &buf); err != nil {
		httperr.FromError(c, err)
		return
	}

	name := spreadsheet.FileName(kind, h.clock.Today(), format)
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
