package tabs

import (
	"log/slog"

	"github.com/vango-dev/tabs/internal/errors"
)

// Accessibility attributes written on every render.
const (
	AttrAriaSelected = "aria-selected"
	AttrTabIndex     = "tabindex"
)

// Markers names the attributes and class of the markup contract.
type Markers struct {
	// Root marks a tab group container.
	Root string

	// Button marks a tab selector, scoped to a root.
	Button string

	// Panel marks a content panel, scoped to a root.
	Panel string

	// ActiveClass marks the active button and panel.
	ActiveClass string
}

// DefaultMarkers returns the data-js-tabs contract.
func DefaultMarkers() Markers {
	return Markers{
		Root:        "data-js-tabs",
		Button:      "data-js-tabs-button",
		Panel:       "data-js-tabs-content",
		ActiveClass: "is-active",
	}
}

// Validate checks that the markers are usable.
func (m Markers) Validate() error {
	if m.Root == "" || m.Button == "" || m.Panel == "" || m.ActiveClass == "" {
		return errors.New("E003").WithDetail("root, button, panel and active class must all be set")
	}
	if m.Root == m.Button || m.Root == m.Panel || m.Button == m.Panel {
		return errors.New("E003").WithDetailf("markers %q, %q and %q are not distinct", m.Root, m.Button, m.Panel)
	}
	return nil
}

// Change describes one activation.
type Change struct {
	Group  *Group
	From   int
	To     int
	Source Source
	Action Action // ActionNone for clicks and direct activation
}

// Option configures groups built by New and NewCollection.
type Option func(*config)

type config struct {
	markers  Markers
	logger   *slog.Logger
	onChange func(Change)
}

func newConfig(opts []Option) config {
	cfg := config{
		markers: DefaultMarkers(),
		logger:  slog.Default().With("component", "tabs"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMarkers replaces the markup contract.
func WithMarkers(m Markers) Option {
	return func(c *config) {
		c.markers = m
	}
}

// WithLogger sets the logger used for activation and construction messages.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// OnChange registers fn to run after every activation, including ones that
// keep the same index.
func OnChange(fn func(Change)) Option {
	return func(c *config) {
		c.onChange = fn
	}
}
