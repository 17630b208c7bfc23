// Package repair keeps every appointment pointing at an existing patient.
//
// The repair pass treats an unresolved patientId as a possibly corrupted
// concatenation of patient details and tries to recover the patient from an
// email, a 10-12 digit phone or a two-word name found inside it. The prune
// pass then deletes whatever is still unresolved.
package repair

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-admin/internal/domain/patient"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
)

var (
	emailToken = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	nameToken  = regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+`)
	digitRun   = regexp.MustCompile(`\d+`)
)

type Result struct {
	Repaired []string `json:"repaired"`
	Pruned   []string `json:"pruned"`
}

func (r Result) Changed() bool {
	return len(r.Repaired) > 0 || len(r.Pruned) > 0
}

type Repairer struct {
	stores *entity.Stores
	notify *notify.Dispatcher
	log    *zap.Logger
}

func New(stores *entity.Stores, d *notify.Dispatcher, log *zap.Logger) *Repairer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repairer{stores: stores, notify: d, log: log.Named("repair")}
}

// Run executes the repair pass and then the prune pass, persisting each
// pass that changed something.
func (r *Repairer) Run(ctx context.Context) (Result, error) {
	var res Result

	err := r.stores.Keyspace.Atomic(ctx, func(ctx context.Context) error {
		patients := r.stores.Patients.All(ctx)
		appts := r.stores.Appointments.All(ctx)

		idx := NewIndex(patients)

		repaired, repairedIDs := Repair(appts, idx)
		if len(repairedIDs) > 0 {
			if err := r.stores.Appointments.SaveLocked(ctx, repaired); err != nil {
				return err
			}
			res.Repaired = repairedIDs
			r.notify.Dispatch(notify.Event{
				Level:   notify.LevelInfo,
				Action:  "appointments_repaired",
				Entity:  string(models.KindAppointments),
				Message: fmt.Sprintf("Repaired patient links on %d appointment(s).", len(repairedIDs)),
			})
		}

		kept, prunedIDs := Prune(repaired, idx)
		if len(prunedIDs) > 0 {
			if err := r.stores.Appointments.SaveLocked(ctx, kept); err != nil {
				return err
			}
			res.Pruned = prunedIDs
			r.notify.Dispatch(notify.Event{
				Level:   notify.LevelWarning,
				Action:  "appointments_pruned",
				Entity:  string(models.KindAppointments),
				Message: fmt.Sprintf("Removed %d appointment(s) with no matching patient.", len(prunedIDs)),
			})
		}
		return nil
	})
	if err != nil {
		r.log.Error("referential repair failed", zap.Error(err))
		return Result{}, err
	}

	if res.Changed() {
		r.log.Info("referential repair applied",
			zap.Strings("repaired", res.Repaired),
			zap.Strings("pruned", res.Pruned),
		)
	}
	return res, nil
}

// ===============================
// Passes
// ===============================

// Repair rewrites unresolved patientIds it can recover. It returns the new
// collection and the IDs of the appointments it changed.
func Repair(appts []models.Appointment, idx *Index) ([]models.Appointment, []string) {
	out := make([]models.Appointment, len(appts))
	copy(out, appts)

	var changed []string
	for i := range out {
		if idx.Has(out[i].PatientID) {
			continue
		}
		if id, ok := idx.Recover(out[i].PatientID); ok {
			out[i].PatientID = id
			changed = append(changed, out[i].ID)
		}
	}
	return out, changed
}

// Prune drops appointments whose patientId does not resolve.
func Prune(appts []models.Appointment, idx *Index) ([]models.Appointment, []string) {
	kept := make([]models.Appointment, 0, len(appts))
	var pruned []string
	for _, a := range appts {
		if idx.Has(a.PatientID) {
			kept = append(kept, a)
			continue
		}
		pruned = append(pruned, a.ID)
	}
	return kept, pruned
}

// ===============================
// Patient index
// ===============================

// Index resolves patients by id, email, phone and name in O(1).
type Index struct {
	byID    map[string]bool
	byEmail map[string]string
	byPhone map[string]string
	byName  map[string]string
}

func NewIndex(patients []models.Patient) *Index {
	idx := &Index{
		byID:    make(map[string]bool, len(patients)),
		byEmail: map[string]string{},
		byPhone: map[string]string{},
		byName:  map[string]string{},
	}

	ambiguous := map[string]bool{}
	for _, p := range patients {
		idx.byID[p.ID] = true

		if e := strings.ToLower(strings.TrimSpace(p.Email)); e != "" {
			if _, dup := idx.byEmail[e]; !dup {
				idx.byEmail[e] = p.ID
			}
		}
		for _, ph := range []string{patient.PhoneKey(p.Phone), phoneDigits(p.Phone)} {
			if ph == "" {
				continue
			}
			if _, dup := idx.byPhone[ph]; !dup {
				idx.byPhone[ph] = p.ID
			}
		}
		if n := nameKey(p.Name); n != "" {
			if _, dup := idx.byName[n]; dup {
				ambiguous[n] = true
			}
			idx.byName[n] = p.ID
		}
	}
	for n := range ambiguous {
		delete(idx.byName, n)
	}
	return idx
}

func (idx *Index) Has(id string) bool {
	return idx.byID[id]
}

// Recover looks for a patient detail inside a corrupted reference. Email
// wins over phone, phone over name. Names only resolve when unique.
func (idx *Index) Recover(ref string) (string, bool) {
	for _, tok := range emailToken.FindAllString(ref, -1) {
		if id, ok := idx.byEmail[strings.ToLower(tok)]; ok {
			return id, true
		}
	}

	for _, run := range digitRun.FindAllString(ref, -1) {
		if len(run) < 10 || len(run) > 12 {
			continue
		}
		if id, ok := idx.byPhone[run]; ok {
			return id, true
		}
	}

	for _, tok := range nameToken.FindAllString(ref, -1) {
		if id, ok := idx.byName[nameKey(tok)]; ok {
			return id, true
		}
	}

	// a bare single-word name stored as the reference
	if id, ok := idx.byName[nameKey(ref)]; ok {
		return id, true
	}
	return "", false
}

// Resolve matches exact patient details in order: id, email, phone, then
// a unique name. Blank details are skipped.
func (idx *Index) Resolve(id, email, phone, name string) (string, bool) {
	if id = strings.TrimSpace(id); id != "" && idx.byID[id] {
		return id, true
	}
	if e := strings.ToLower(strings.TrimSpace(email)); e != "" {
		if pid, ok := idx.byEmail[e]; ok {
			return pid, true
		}
	}
	if ph := patient.PhoneKey(phone); ph != "" {
		if pid, ok := idx.byPhone[ph]; ok {
			return pid, true
		}
	}
	if n := nameKey(name); n != "" {
		if pid, ok := idx.byName[n]; ok {
			return pid, true
		}
	}
	return "", false
}

// phoneDigits keeps only the digits, so "+92 300-1234567" indexes as
// "923001234567".
func phoneDigits(phone string) string {
	return strings.Join(digitRun.FindAllString(phone, -1), "")
}

func nameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
