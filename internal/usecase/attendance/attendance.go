package attendance

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/attendance"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

// ======================================================
// MARK
// ======================================================

type MarkAttendance struct {
	stores *entity.Stores
	clock  *timezone.Clock
	notify *notify.Dispatcher
}

func NewMarkAttendance(stores *entity.Stores, clock *timezone.Clock, n *notify.Dispatcher) *MarkAttendance {
	return &MarkAttendance{stores: stores, clock: clock, notify: n}
}

// Execute records the staff member's attendance for the date, replacing an
// earlier mark for the same day. Leave also moves the staff record to
// leave; present or late brings it back. Both collections are written under
// one lock, and a failed staff write undoes the attendance write.
func (uc *MarkAttendance) Execute(ctx context.Context, in domain.Input) (models.Attendance, error) {
	if err := in.Validate(); err != nil {
		return models.Attendance{}, err
	}

	var (
		rec        models.Attendance
		staffName  string
		staffMoved bool
	)

	err := uc.stores.Keyspace.Atomic(ctx, func(ctx context.Context) error {
		staff := uc.stores.Staff.All(ctx)
		idx := -1
		for i := range staff {
			if staff[i].ID == in.StaffID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return httperr.ErrBusiness("staff_not_found")
		}
		staffName = staff[idx].Name

		now := uc.clock.Now()
		records := uc.stores.Attendance.All(ctx)
		previous := append([]models.Attendance(nil), records...)

		rec = models.Attendance{
			ID:            uc.stores.Attendance.NextIDLocked(records),
			StaffID:       in.StaffID,
			Date:          in.Date,
			Time:          in.Time,
			Status:        in.Status,
			Notes:         strings.TrimSpace(in.Notes),
			CreatedAt:     now,
			SchemaVersion: models.SchemaVersion,
		}
		if rec.Time == "" && in.Date == now.Format(timezone.DateLayout) {
			rec.Time = now.Format("15:04")
		}

		replaced := false
		for i := range records {
			if records[i].StaffID == in.StaffID && records[i].Date == in.Date {
				rec.ID = records[i].ID
				rec.CreatedAt = records[i].CreatedAt
				records[i] = rec
				replaced = true
				break
			}
		}
		if !replaced {
			records = append(records, rec)
		}

		if domain.ApplyToStaff(&staff[idx], in.Status, in.Date) {
			staff[idx].UpdatedAt = now
			staffMoved = true
		}

		if err := uc.stores.Attendance.SaveLocked(ctx, records); err != nil {
			return err
		}
		if !staffMoved {
			return nil
		}
		if err := uc.stores.Staff.SaveLocked(ctx, staff); err != nil {
			// undo the attendance write
			_ = uc.stores.Attendance.SaveLocked(ctx, previous)
			return err
		}
		return nil
	})
	if err != nil {
		return models.Attendance{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "attendance_marked",
		Entity:   string(models.KindAttendance),
		EntityID: rec.ID,
		Message:  staffName + " marked " + rec.Status + " for " + rec.Date + ".",
	})
	if staffMoved {
		uc.notify.Dispatch(notify.Event{
			Level:    notify.LevelInfo,
			Action:   "staff_status_changed",
			Entity:   string(models.KindStaff),
			EntityID: in.StaffID,
			Message:  staffName + " status updated from attendance.",
		})
	}
	return rec, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteAttendance struct {
	repo   entity.Repository[models.Attendance]
	notify *notify.Dispatcher
}

func NewDeleteAttendance(repo entity.Repository[models.Attendance], n *notify.Dispatcher) *DeleteAttendance {
	return &DeleteAttendance{repo: repo, notify: n}
}

func (uc *DeleteAttendance) Execute(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "attendance_deleted",
		Entity:   string(models.KindAttendance),
		EntityID: id,
		Message:  "Attendance record deleted.",
	})
	return nil
}
