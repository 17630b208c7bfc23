package guard

import (
	"sync"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
)

var ErrInFlight = httperr.ErrBusiness("submission_in_flight")

// Submissions tracks which forms have a save in progress. A form is released
// when its save returns, whatever the outcome.
type Submissions struct {
	mu       sync.Mutex
	inFlight map[string]bool
}

func New() *Submissions {
	return &Submissions{inFlight: map[string]bool{}}
}

// Acquire claims form and returns the release func, or ErrInFlight when a
// save for the same form has not finished yet.
func (s *Submissions) Acquire(form string) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[form] {
		return nil, ErrInFlight
	}
	s.inFlight[form] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.inFlight, form)
			s.mu.Unlock()
		})
	}, nil
}

// Do runs fn while holding form.
func (s *Submissions) Do(form string, fn func() error) error {
	release, err := s.Acquire(form)
	if err != nil {
		return err
	}
	defer release()
	return fn()
}
