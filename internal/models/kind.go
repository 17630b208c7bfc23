package models

// SchemaVersion is stamped on every record written by this version.
// Version 0 is anything persisted before versioning existed.
const SchemaVersion = 2

// Kind names an entity collection; its value is the storage key.
type Kind string

const (
	KindPatients     Kind = "patients"
	KindAppointments Kind = "appointments"
	KindInvoices     Kind = "invoices"
	KindStaff        Kind = "staff"
	KindSalaries     Kind = "salaries"
	KindAttendance   Kind = "attendance"
	KindFeedback     Kind = "feedback"
)

var Kinds = []Kind{
	KindPatients,
	KindAppointments,
	KindInvoices,
	KindStaff,
	KindSalaries,
	KindAttendance,
	KindFeedback,
}

// Prefix is the short code used in generated IDs.
func (k Kind) Prefix() string {
	switch k {
	case KindPatients:
		return "p"
	case KindAppointments:
		return "a"
	case KindInvoices:
		return "b"
	case KindStaff:
		return "s"
	case KindSalaries:
		return "sal"
	case KindAttendance:
		return "att"
	case KindFeedback:
		return "f"
	}
	return ""
}

func (k Kind) Key() string {
	return string(k)
}

func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	if s == "billing" {
		return KindInvoices, true
	}
	if s == "salary" {
		return KindSalaries, true
	}
	return "", false
}

// Record is implemented by every persisted entity.
type Record interface {
	RecordID() string
}
