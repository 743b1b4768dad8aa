package services

import "errors"

// Error kinds returned by the services. Callers match them with errors.Is;
// the wrapped message is safe to show to API clients.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// Publisher receives notifications about stored records.
type Publisher interface {
	Publish(action string, payload any)
}

func publish(p Publisher, action string, payload any) {
	if p != nil {
		p.Publish(action, payload)
	}
}
