package homados

import (
	"errors"
	"fmt"

	"github.com/homados/homados-go/internal/generator"
	"github.com/homados/homados-go/internal/window"
)

var (
	// ErrUnrecognizedIdentifier wraps unknown sound and window names.
	ErrUnrecognizedIdentifier = errors.New("unrecognized identifier")

	// ErrInvalidDomainParameter wraps parameters outside a generator's or
	// window's domain, such as a log sweep bound that is not positive.
	ErrInvalidDomainParameter = errors.New("invalid domain parameter")

	// ErrInvalidFormat wraps an unusable output format.
	ErrInvalidFormat = errors.New("invalid output format")
)

// classify maps errors from the internal libraries onto the exported
// sentinels. Both stay reachable through errors.Is.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, generator.ErrUnknownName), errors.Is(err, window.ErrUnknownName):
		return fmt.Errorf("%w: %w", ErrUnrecognizedIdentifier, err)
	case errors.Is(err, generator.ErrInvalidParam), errors.Is(err, window.ErrInvalidCurve):
		return fmt.Errorf("%w: %w", ErrInvalidDomainParameter, err)
	}
	return err
}
