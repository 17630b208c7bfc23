// Package migrate upgrades stored records to the current schema version.
//
// Version 0 records predate versioning and may miss any defaulted field.
// Version 1 fills those defaults. Version 2 normalises enum casing and
// derived money fields. Every function is idempotent.
package migrate

import (
	"strings"

	"github.com/BruksfildServices01/dental-admin/internal/models"
)

func Patient(p *models.Patient) {
	if p.SchemaVersion < 1 {
		if p.Status == "" {
			p.Status = "Active"
		}
		if p.AddDate == "" && !p.CreatedAt.IsZero() {
			p.AddDate = p.CreatedAt.Format("2006-01-02")
		}
	}
	if p.SchemaVersion < 2 {
		switch strings.ToLower(strings.TrimSpace(p.Status)) {
		case "active":
			p.Status = "Active"
		case "inactive":
			p.Status = "Inactive"
		}
	}
	p.SchemaVersion = models.SchemaVersion
}

func Appointment(a *models.Appointment) {
	if a.SchemaVersion < 1 {
		if a.Duration <= 0 {
			a.Duration = 60
		}
		if a.Status == "" {
			a.Status = "scheduled"
		}
	}
	if a.SchemaVersion < 2 {
		a.Status = strings.ToLower(strings.TrimSpace(a.Status))
	}
	a.SchemaVersion = models.SchemaVersion
}

func Invoice(i *models.Invoice) {
	if i.SchemaVersion < 1 {
		if i.Status == "" {
			i.Status = "unpaid"
		}
		if i.PaymentMethod == "" {
			i.PaymentMethod = "cash"
		}
	}
	if i.SchemaVersion < 2 {
		i.Status = strings.ToLower(strings.TrimSpace(i.Status))
		if i.Total == 0 && len(i.Treatments) > 0 {
			var sub, disc float64
			for _, t := range i.Treatments {
				sub += t.Amount
				disc += t.Discount
			}
			i.Subtotal = sub
			i.TotalDiscount = disc
			i.Total = sub - disc
			if i.Total < 0 {
				i.Total = 0
			}
		}
	}
	i.SchemaVersion = models.SchemaVersion
}

func Staff(s *models.Staff) {
	if s.SchemaVersion < 1 {
		if s.Status == "" {
			s.Status = "active"
		}
	}
	if s.SchemaVersion < 2 {
		s.Status = strings.ToLower(strings.TrimSpace(s.Status))
	}
	s.SchemaVersion = models.SchemaVersion
}

func Salary(s *models.Salary) {
	if s.SchemaVersion < 1 {
		if s.Status == "" {
			s.Status = "pending"
		}
	}
	if s.SchemaVersion < 2 {
		s.Status = strings.ToLower(strings.TrimSpace(s.Status))
		if s.NetSalary == 0 && s.Amount != 0 {
			s.NetSalary = s.Amount
		}
		if s.Amount == 0 && s.NetSalary != 0 {
			s.Amount = s.NetSalary
		}
	}
	s.SchemaVersion = models.SchemaVersion
}

func Attendance(a *models.Attendance) {
	if a.SchemaVersion < 2 {
		a.Status = strings.ToLower(strings.TrimSpace(a.Status))
	}
	a.SchemaVersion = models.SchemaVersion
}

func Feedback(f *models.Feedback) {
	f.SchemaVersion = models.SchemaVersion
}
