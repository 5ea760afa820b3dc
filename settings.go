// settings.go — process-wide construction settings for xgx-errset.
//
// Design:
//   - One explicit default instance, replaceable and resettable (no hidden
//     ambient state beyond this store).
//   - Read at Err construction time, never cached per set; a Configure call
//     after a set is declared affects values that set constructs afterwards.
//   - Partial updates via functional options; partial YAML merges via
//     LoadSettings for file-driven environments.
//
// The core holds no other shared mutable state. The store is still guarded
// for concurrent readers/writers because Go callers are concurrent even
// when the engine's own control flow is single-threaded.
package xgxerrset

import (
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Format selects the concise Error() rendering of constructed values.
type Format string

const (
	// FormatTagged renders "kind: message" (the default).
	FormatTagged Format = "tagged"
	// FormatPlain renders the message alone.
	FormatPlain Format = "plain"
	// FormatJSON renders a compact JSON object with set, kind, message, data.
	FormatJSON Format = "json"
)

// Settings is the configuration snapshot read when a value is constructed.
type Settings struct {
	Format           Format `yaml:"format"`
	IncludeStack     bool   `yaml:"include_stack"`
	StackDepth       int    `yaml:"stack_depth"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
	Colors           bool   `yaml:"colors"`
}

// Defaults returns the documented default settings: stack capture off,
// timestamps off, depth 10, tagged format, colors on.
func Defaults() Settings {
	return Settings{
		Format:     FormatTagged,
		StackDepth: 10,
		Colors:     true,
	}
}

func (s Settings) validate() error {
	switch s.Format {
	case FormatTagged, FormatPlain, FormatJSON:
	default:
		return fmt.Errorf("xgxerrset: unknown format %q", s.Format)
	}
	if s.StackDepth <= 0 {
		return fmt.Errorf("xgxerrset: stack depth must be positive, got %d", s.StackDepth)
	}
	return nil
}

var (
	settingsMu sync.RWMutex
	global     = Defaults()
)

// Option applies one partial change to a settings snapshot.
type Option func(*Settings)

// WithFormat selects the concise rendering format.
func WithFormat(f Format) Option { return func(s *Settings) { s.Format = f } }

// WithStackCapture toggles stack capture at construction time.
func WithStackCapture(on bool) Option { return func(s *Settings) { s.IncludeStack = on } }

// WithStackDepth bounds captured stacks to n frames.
func WithStackDepth(n int) Option { return func(s *Settings) { s.StackDepth = n } }

// WithTimestamps toggles construction timestamps.
func WithTimestamps(on bool) Option { return func(s *Settings) { s.IncludeTimestamp = on } }

// WithColors toggles colored diagnostic rendering (used by adapters; the
// core itself never emits color).
func WithColors(on bool) Option { return func(s *Settings) { s.Colors = on } }

// Configure merges the given options into the global settings. Fields not
// touched by any option retain their prior values. Invalid results are
// rejected and the prior settings remain in effect.
func Configure(opts ...Option) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	next := global
	for _, opt := range opts {
		if opt != nil {
			opt(&next)
		}
	}
	if err := next.validate(); err != nil {
		return err
	}
	global = next
	return nil
}

// Current returns a snapshot of the global settings.
func Current() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return global
}

// Reset restores the documented defaults. Intended for tests and process
// re-initialization.
func Reset() {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	global = Defaults()
}

// LoadSettings merges a partial YAML settings document over the current
// global settings. Keys absent from the document retain their prior values;
// an invalid merged result is rejected without touching the store.
//
//	format: json
//	include_stack: true
//	stack_depth: 16
func LoadSettings(r io.Reader) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	next := global
	if err := yaml.NewDecoder(r).Decode(&next); err != nil {
		if err == io.EOF {
			return nil // empty document: nothing to merge
		}
		return fmt.Errorf("xgxerrset: decode settings: %w", err)
	}
	if err := next.validate(); err != nil {
		return err
	}
	global = next
	return nil
}

// LoadSettingsFile is LoadSettings over the named file.
func LoadSettingsFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("xgxerrset: open settings: %w", err)
	}
	defer f.Close()
	return LoadSettings(f)
}
