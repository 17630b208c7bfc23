package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/backup"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
	"github.com/BruksfildServices01/dental-admin/internal/repair"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

type MaintenanceHandler struct {
	repairer *repair.Repairer
	backups  *backup.Service
	clock    *timezone.Clock
}

func NewMaintenanceHandler(repairer *repair.Repairer, backups *backup.Service, clock *timezone.Clock) *MaintenanceHandler {
	return &MaintenanceHandler{repairer: repairer, backups: backups, clock: clock}
}

func (h *MaintenanceHandler) Repair(c *gin.Context) {
	res, err := h.repairer.Run(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, res)
}

// Backup uploads a snapshot to the configured bucket.
func (h *MaintenanceHandler) Backup(c *gin.Context) {
	res, err := h.backups.Upload(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, res)
}

// DownloadBackup returns the snapshot as a JSON file.
func (h *MaintenanceHandler) DownloadBackup(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.backups.WriteTo(c.Request.Context(), &buf); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="clinic-backup_`+h.clock.Today()+`.json"`)
	c.Data(http.StatusOK, "application/json", buf.Bytes())
}
