package beautify

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
)

// config is shared by Session, Exporter and PreviewRenderer.
type config struct {
	logger   *log.Logger
	padding  float64
	now      func() time.Time
	hook     func(ExportState)
	maxScale int
	routines int
}

func defaultConfig() *config {
	return &config{
		logger:   log.Default(),
		padding:  Padding,
		now:      time.Now,
		maxScale: MaxOutputScale,
		routines: 2,
	}
}

func newConfig(opts []Option) (*config, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Option is something that can be configured on a Session or Exporter
type Option func(*config) error

// WithLogger sets the logger. A nil logger is rejected.
func WithLogger(l *log.Logger) Option {
	return func(c *config) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		c.logger = l
		return nil
	}
}

// WithPadding sets a non-default logical margin around the image.
func WithPadding(p float64) Option {
	return func(c *config) error {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("padding must be a finite value >= 0, given %v", p)
		}
		c.padding = p
		return nil
	}
}

// WithClock replaces time.Now, which names export files.
func WithClock(now func() time.Time) Option {
	return func(c *config) error {
		if now == nil {
			return fmt.Errorf("clock must not be nil")
		}
		c.now = now
		return nil
	}
}

// WithStateHook is called on every export state transition, in order, on
// the goroutine running the export.
func WithStateHook(fn func(ExportState)) Option {
	return func(c *config) error {
		c.hook = fn
		return nil
	}
}

// WithMaxOutputScale lowers the largest output scale an export will honour.
func WithMaxOutputScale(i int) Option {
	return func(c *config) error {
		if i <= 0 || i > MaxOutputScale {
			return fmt.Errorf("max output scale must be in 1..%d, given %d", MaxOutputScale, i)
		}
		c.maxScale = i
		return nil
	}
}

// OperationRoutines sets how many shadow layers an export renders at once.
func OperationRoutines(i int) Option {
	return func(c *config) error {
		if i <= 0 {
			i = 1
		}
		c.routines = i
		return nil
	}
}
