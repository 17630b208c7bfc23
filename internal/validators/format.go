package validators

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
)

var (
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	phoneDigits     = regexp.MustCompile(`^\+?\d{10,13}$`)
	hhmm            = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// IsEmail checks the address format only; the clinic runs offline, so no
// domain lookups are made.
func IsEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || strings.ContainsAny(email, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return strings.Contains(email[at+1:], ".")
}

// IsPhone accepts 10 to 13 digits with an optional leading +, ignoring
// spaces, dashes and parentheses.
func IsPhone(phone string) bool {
	return phoneDigits.MatchString(phoneSeparators.Replace(strings.TrimSpace(phone)))
}

func IsISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func IsHHMM(s string) bool {
	return hhmm.MatchString(s)
}
