package gettext

import (
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// DatetimeRenderer renders a unix timestamp with a strftime style pattern.
type DatetimeRenderer interface {
	Render(pattern string, epoch int64) string
}

// RendererFunc adapts a bare function to DatetimeRenderer.
type RendererFunc func(pattern string, epoch int64) string

func (fn RendererFunc) Render(pattern string, epoch int64) string {
	return fn(pattern, epoch)
}

// StrftimeRenderer renders timestamps in a fixed location. A nil location
// follows time.Local, the process wide timezone.
type StrftimeRenderer struct {
	location *time.Location
}

var _ DatetimeRenderer = &StrftimeRenderer{}

func NewStrftimeRenderer(location *time.Location) *StrftimeRenderer {
	return &StrftimeRenderer{location: location}
}

// NewStrftimeRendererForZone loads an IANA zone such as "Europe/Paris".
func NewStrftimeRendererForZone(name string) (*StrftimeRenderer, error) {
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("gettext: load timezone %q: %w", name, err)
	}
	return NewStrftimeRenderer(location), nil
}

// strftimeVerbs are the conversions strftime.NewSpecificationSet knows.
const strftimeVerbs = "AaBbCcDdeFHhIjklMmnpRrSTtUuVvWwXxYyZz%"

// passthroughSpecs resolves the stock conversions and copies unknown ones
// such as %Q to the output verbatim, the way libc strftime does. It is read
// only, so Format can share it across goroutines without locking.
type passthroughSpecs map[byte]strftime.Appender

var errReadOnlySpecs = errors.New("gettext: strftime specification set is read only")

var defaultSpecs = func() passthroughSpecs {
	stock := strftime.NewSpecificationSet()
	specs := make(passthroughSpecs, len(strftimeVerbs))
	for i := 0; i < len(strftimeVerbs); i++ {
		if a, err := stock.Lookup(strftimeVerbs[i]); err == nil {
			specs[strftimeVerbs[i]] = a
		}
	}
	return specs
}()

func (s passthroughSpecs) Lookup(b byte) (strftime.Appender, error) {
	if a, ok := s[b]; ok {
		return a, nil
	}
	return strftime.Verbatim("%" + string([]byte{b})), nil
}

func (passthroughSpecs) Delete(byte) error { return errReadOnlySpecs }

func (passthroughSpecs) Set(byte, strftime.Appender) error { return errReadOnlySpecs }

// Render copies unknown conversions through unchanged. A pattern ending in
// a lone '%' cannot be compiled and is returned untouched.
func (r *StrftimeRenderer) Render(pattern string, epoch int64) string {
	location := time.Local
	if r != nil && r.location != nil {
		location = r.location
	}

	out, err := strftime.Format(pattern, time.Unix(epoch, 0).In(location),
		strftime.WithSpecificationSet(defaultSpecs))
	if err != nil {
		return pattern
	}
	return out
}
