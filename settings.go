package alder

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Duration is a time.Duration that unmarshals from TOML strings like "200ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TouchSettings tune gesture recognition.
type TouchSettings struct {
	// TapSlop is how far a contact may drift and still count as a tap, in
	// logical pixels.
	TapSlop float64 `toml:"tap_slop"`

	// TapTime is how long a contact may stay down and still count as a tap.
	TapTime Duration `toml:"tap_time"`

	// DoubleTapSlop is how far the second tap may land from the first.
	DoubleTapSlop float64 `toml:"double_tap_slop"`

	// DoubleTapTime is the window after a tap in which a second tap counts
	// as a double tap.
	DoubleTapTime Duration `toml:"double_tap_time"`

	// PanDistance is how far a contact must move before panning begins.
	PanDistance float64 `toml:"pan_distance"`

	// LongTapTime is reserved for long-press recognition.
	LongTapTime Duration `toml:"long_tap_time"`
}

// RecordSettings tune the draw cache.
type RecordSettings struct {
	// Enabled turns draw recording on.
	Enabled bool `toml:"enabled"`

	// MaxFramesUnused is how many frames a recording may go unreplayed
	// before it is purged.
	MaxFramesUnused uint64 `toml:"max_frames_unused"`

	// MaxMemory is the cache budget in bytes. Recordings are evicted once
	// usage passes three quarters of it.
	MaxMemory uint64 `toml:"max_memory"`
}

// RenderSettings tune the render passes.
type RenderSettings struct {
	// PixelAlign snaps layout sizes and compose offsets to the device pixel
	// grid by default. Individual widgets can opt out.
	PixelAlign bool `toml:"pixel_align"`
}

// Settings is the engine configuration. Zero values are not useful; start
// from DefaultSettings.
type Settings struct {
	Touch  TouchSettings  `toml:"touch"`
	Record RecordSettings `toml:"record"`
	Render RenderSettings `toml:"render"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Touch: TouchSettings{
			TapSlop:       10,
			TapTime:       Duration(200 * time.Millisecond),
			DoubleTapSlop: 20,
			DoubleTapTime: Duration(300 * time.Millisecond),
			PanDistance:   10,
			LongTapTime:   Duration(500 * time.Millisecond),
		},
		Record: RecordSettings{
			Enabled:         true,
			MaxFramesUnused: 30,
			MaxMemory:       512 << 20,
		},
		Render: RenderSettings{
			PixelAlign: true,
		},
	}
}

// ParseSettings decodes TOML over the defaults, so partial files work.
func ParseSettings(data []byte) (Settings, error) {
	settings := DefaultSettings()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return settings, nil
}

// LoadSettings reads and decodes a TOML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return ParseSettings(data)
}
