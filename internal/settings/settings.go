// Package settings persists small flat-JSON settings blobs (performance
// preset, audio volumes). Each record is read once at startup and rewritten in
// full on every change. Storage failures are logged and swallowed; the caller
// always gets usable defaults so a broken disk never reaches the simulation.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// PerfSettings is the persisted performance governor record.
type PerfSettings struct {
	Level      int  `json:"level"`
	AutoAdjust bool `json:"autoAdjust"`
	Pinned     bool `json:"pinned"`
	// Initialized marks that first-run defaults were already inferred from the
	// device hint. Once set it is never overwritten automatically.
	Initialized bool `json:"initialized"`
}

// DefaultPerfSettings returns the first-run performance record.
func DefaultPerfSettings() PerfSettings {
	return PerfSettings{Level: 0, AutoAdjust: true, Pinned: false, Initialized: false}
}

// AudioSettings is the persisted audio volume record.
type AudioSettings struct {
	Master  float64 `json:"master"`
	Effects float64 `json:"effects"`
	Muted   bool    `json:"muted"`
}

// DefaultAudioSettings returns the default audio record.
func DefaultAudioSettings() AudioSettings {
	return AudioSettings{Master: 0.8, Effects: 1.0, Muted: false}
}

// Store reads and writes settings records under a base directory.
type Store struct {
	dir    string
	logger *log.Logger
}

// NewStore creates a settings store rooted at dir.
// An empty dir resolves to ~/.lander/settings.
func NewStore(dir string, logger *log.Logger) *Store {
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".lander", "settings")
		}
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Store{dir: dir, logger: logger}
}

// LoadPerf reads the performance record, falling back to defaults on any error.
func (s *Store) LoadPerf() PerfSettings {
	out := DefaultPerfSettings()
	data := s.read("perf.json")
	if data == nil {
		return out
	}
	parsed := out
	if err := json.Unmarshal(data, &parsed); err != nil {
		s.logger.Warn("settings: malformed record, using defaults", "file", "perf.json", "error", err)
		return out
	}
	return parsed
}

// SavePerf rewrites the performance record in full.
func (s *Store) SavePerf(p PerfSettings) {
	s.save("perf.json", p)
}

// LoadAudio reads the audio record, falling back to defaults on any error.
func (s *Store) LoadAudio() AudioSettings {
	out := DefaultAudioSettings()
	data := s.read("audio.json")
	if data == nil {
		return out
	}
	parsed := out
	if err := json.Unmarshal(data, &parsed); err != nil {
		s.logger.Warn("settings: malformed record, using defaults", "file", "audio.json", "error", err)
		return out
	}
	return parsed
}

// SaveAudio rewrites the audio record in full.
func (s *Store) SaveAudio(a AudioSettings) {
	s.save("audio.json", a)
}

// read returns the raw bytes of the named record, or nil if it is absent or
// unreadable. Missing files are normal on first run. Decoding happens in the
// typed loaders so a record that fails mid-parse never leaks partial values.
func (s *Store) read(name string) []byte {
	if s.dir == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("settings: cannot read record", "file", name, "error", err)
		}
		return nil
	}
	return data
}

func (s *Store) save(name string, v any) {
	if s.dir == "" {
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Warn("settings: cannot create directory", "dir", s.dir, "error", err)
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.logger.Warn("settings: cannot encode record", "file", name, "error", err)
		return
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		s.logger.Warn("settings: cannot write record", "file", name, "error", err)
	}
}
