// Package mailaddr parses the address forms the intake config accepts:
// a bare "ops@example.com" or a display form "Ops Team <ops@example.com>".
package mailaddr

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Parse returns the parsed address or an error when neither accepted form
// matches. The inner address is additionally checked as an email, since
// net/mail is more permissive than what email providers accept.
func Parse(s string) (*mail.Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty address")
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q: %w", s, err)
	}

	if err := validate.Var(addr.Address, "required,email"); err != nil {
		return nil, fmt.Errorf("%q is not a valid email address", addr.Address)
	}
	return addr, nil
}

// Valid reports whether s parses under either accepted form.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
