package spreadsheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-admin/internal/domain/billing"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/repair"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

var (
	ErrUnreadableFile    = httperr.ErrBusiness("import_unreadable_file")
	ErrUnsupportedImport = httperr.ErrBusiness("import_not_supported")
)

// Service moves collections in and out of spreadsheet files. Imports append
// to the stored collection under the keyspace lock.
type Service struct {
	stores *entity.Stores
	clock  *timezone.Clock
	notify *notify.Dispatcher
	log    *zap.Logger
}

func NewService(stores *entity.Stores, clock *timezone.Clock, n *notify.Dispatcher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{stores: stores, clock: clock, notify: n, log: log.Named("spreadsheet")}
}

// ======================================================
// Import
// ======================================================

// Import reads filename's content and appends its records to the kind's
// collection. Bad rows are skipped and counted. Only unreadable files and
// appointment files without date/time columns fail outright.
func (s *Service) Import(ctx context.Context, kind models.Kind, filename string, r io.Reader) (Report, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return Report{}, err
	}

	var rep Report
	if format == FormatJSON {
		data, err := io.ReadAll(r)
		if err != nil {
			return Report{}, err
		}
		rep, err = s.importJSON(ctx, kind, data)
		if err != nil {
			return Report{}, err
		}
	} else {
		rows, err := ReadRows(r, format)
		if err != nil {
			s.log.Warn("import file unreadable", zap.String("file", filename), zap.Error(err))
			return Report{}, ErrUnreadableFile
		}
		rep, err = s.importRows(ctx, kind, rows)
		if err != nil {
			return Report{}, err
		}
	}

	s.log.Info("import finished",
		zap.String("kind", string(kind)),
		zap.String("file", filename),
		zap.Int("imported", rep.Imported),
		zap.Int("skipped", rep.Skipped),
	)

	level := notify.LevelSuccess
	if rep.Skipped > 0 {
		level = notify.LevelWarning
	}
	s.notify.Dispatch(notify.Event{
		Level:   level,
		Action:  "import_finished",
		Entity:  string(kind),
		Message: fmt.Sprintf("Imported %d %s, skipped %d.", rep.Imported, kind, rep.Skipped),
	})
	return rep, nil
}

func (s *Service) importRows(ctx context.Context, kind models.Kind, rows [][]string) (Report, error) {
	var rep Report
	now := s.clock.Now()
	today := s.clock.Today()

	err := s.stores.Keyspace.Atomic(ctx, func(ctx context.Context) error {
		switch kind {
		case models.KindPatients:
			var in []models.Patient
			in, rep = PatientsFromRows(rows, today, now)
			return appendLocked(ctx, s.stores.Patients, in, func(p *models.Patient, id string) { p.ID = id })

		case models.KindAppointments:
			idx := repair.NewIndex(s.stores.Patients.All(ctx))
			in, r, err := AppointmentsFromRows(rows, idx, now)
			if err != nil {
				return err
			}
			rep = r
			return appendLocked(ctx, s.stores.Appointments, in, func(a *models.Appointment, id string) { a.ID = id })

		case models.KindInvoices:
			idx := repair.NewIndex(s.stores.Patients.All(ctx))
			var in []models.Invoice
			in, rep = InvoicesFromRows(rows, idx, today, now)
			return s.appendInvoicesLocked(ctx, in)
		}
		return ErrUnsupportedImport
	})
	return rep, err
}

// importJSON vets every record with the same rules as a single save.
// Appointment and feedback patients must resolve; salary and attendance
// staff must exist.
func (s *Service) importJSON(ctx context.Context, kind models.Kind, data []byte) (Report, error) {
	var rep Report
	err := s.stores.Keyspace.Atomic(ctx, func(ctx context.Context) error {
		switch kind {
		case models.KindPatients:
			return appendJSON(ctx, s.stores.Patients, data, &rep, checkPatient, func(p *models.Patient, id string) { p.ID = id })
		case models.KindAppointments:
			idx := repair.NewIndex(s.stores.Patients.All(ctx))
			return appendJSON(ctx, s.stores.Appointments, data, &rep, checkAppointment(idx), func(a *models.Appointment, id string) { a.ID = id })
		case models.KindInvoices:
			var in []models.Invoice
			if err := decodeJSON(data, &in); err != nil {
				return err
			}
			return s.appendInvoicesLocked(ctx, keepValid(in, &rep, checkInvoice))
		case models.KindStaff:
			return appendJSON(ctx, s.stores.Staff, data, &rep, checkStaff, func(m *models.Staff, id string) { m.ID = id })
		case models.KindSalaries:
			staffIDs := staffIDSet(s.stores.Staff.All(ctx))
			return appendJSON(ctx, s.stores.Salaries, data, &rep, checkSalary(staffIDs), func(m *models.Salary, id string) { m.ID = id })
		case models.KindAttendance:
			staffIDs := staffIDSet(s.stores.Staff.All(ctx))
			return appendJSON(ctx, s.stores.Attendance, data, &rep, checkAttendance(staffIDs), func(m *models.Attendance, id string) { m.ID = id })
		case models.KindFeedback:
			idx := repair.NewIndex(s.stores.Patients.All(ctx))
			return appendJSON(ctx, s.stores.Feedback, data, &rep, checkFeedback(idx), func(m *models.Feedback, id string) { m.ID = id })
		}
		return ErrUnsupportedImport
	})
	if err != nil {
		return Report{}, err
	}
	return rep, nil
}

func (s *Service) appendInvoicesLocked(ctx context.Context, in []models.Invoice) error {
	existing := s.stores.Invoices.All(ctx)
	seen := Merge(existing, nil)
	for i := range in {
		if in[i].InvoiceNumber == "" {
			in[i].InvoiceNumber = billing.NextInvoiceNumber(in[i].Date, seen)
		}
		seen = append(seen, in[i])
	}
	return appendLocked(ctx, s.stores.Invoices, in, func(inv *models.Invoice, id string) { inv.ID = id })
}

// appendLocked gives records without an ID the next free one and appends
// them to the stored collection.
func appendLocked[T models.Record](ctx context.Context, c *entity.Collection[T], in []T, setID func(*T, string)) error {
	if len(in) == 0 {
		return nil
	}
	existing := c.All(ctx)

	seen := Merge(existing, nil)
	for i := range in {
		if strings.TrimSpace(in[i].RecordID()) == "" {
			setID(&in[i], c.NextIDLocked(seen))
		}
		seen = append(seen, in[i])
	}
	return c.SaveLocked(ctx, Merge(existing, in))
}

func appendJSON[T models.Record](ctx context.Context, c *entity.Collection[T], data []byte, rep *Report, check recordCheck[T], setID func(*T, string)) error {
	var in []T
	if err := decodeJSON(data, &in); err != nil {
		return err
	}
	return appendLocked(ctx, c, keepValid(in, rep, check), setID)
}

func decodeJSON(data []byte, out any) error {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if err := json.Unmarshal(data, out); err != nil {
		return ErrUnreadableFile
	}
	return nil
}

// ======================================================
// Export
// ======================================================

// Rows projects the stored collection onto its export columns, header first.
func (s *Service) Rows(ctx context.Context, kind models.Kind) ([][]string, error) {
	switch kind {
	case models.KindPatients:
		return PatientRows(s.stores.Patients.All(ctx)), nil
	case models.KindAppointments:
		return AppointmentRows(s.stores.Appointments.All(ctx), s.stores.Patients.All(ctx)), nil
	case models.KindInvoices:
		return InvoiceRows(s.stores.Invoices.All(ctx), s.stores.Patients.All(ctx)), nil
	case models.KindStaff:
		return StaffRows(s.stores.Staff.All(ctx)), nil
	case models.KindSalaries:
		return SalaryRows(s.stores.Salaries.All(ctx), s.stores.Staff.All(ctx)), nil
	case models.KindAttendance:
		return AttendanceRows(s.stores.Attendance.All(ctx), s.stores.Staff.All(ctx)), nil
	case models.KindFeedback:
		return FeedbackRows(s.stores.Feedback.All(ctx), s.stores.Patients.All(ctx)), nil
	}
	return nil, httperr.ErrBusiness("unknown_entity")
}

// Export writes the collection in format to w.
func (s *Service) Export(ctx context.Context, kind models.Kind, format Format, w io.Writer) error {
	rows, err := s.Rows(ctx, kind)
	if err != nil {
		return err
	}

	switch format {
	case FormatXLSX:
		return WriteXLSX(w, SheetName(kind), rows)
	case FormatCSV:
		return WriteCSV(w, rows)
	}
	return ErrUnsupportedFormat
}

// SheetName is the kind with its first letter upper-cased.
func SheetName(kind models.Kind) string {
	k := string(kind)
	if k == "" {
		return "Sheet1"
	}
	return strings.ToUpper(k[:1]) + k[1:]
}

// FileName is the download name for an export taken on date.
func FileName(kind models.Kind, date string, format Format) string {
	return fmt.Sprintf("%s_%s.%s", kind, date, format)
}
