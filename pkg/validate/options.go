package validate

import "time"

// Option configures a Validator.
type Option func(*Validator)

// WithTimeout bounds the oracle call. Zero or negative is ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(v *Validator) {
		if timeout > 0 {
			v.timeout = timeout
		}
	}
}
