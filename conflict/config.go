package conflict

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"
)

// DetectorConfig holds configuration options for the detector.
type DetectorConfig struct {
	// Rules is the business-rule checker list run on every detection in
	// addition to the built-in temporal overlap check.
	Rules []Rule

	// Resolutions, when set, backs DetectWithResolutions. Detect ignores
	// it.
	Resolutions ResolutionStore

	// Logger receives warnings about excluded events and failed
	// resolution lookups. Nil means discard.
	Logger *slog.Logger
}

// RulesConfig is the serializable business-rule catalogue. Each section is
// optional; absent sections contribute no checker. Which rule blocks and
// which merely advises is a per-deployment product decision, so severity
// lives in config rather than code.
type RulesConfig struct {
	WorkingHours *WorkingHoursConfig `yaml:"working_hours,omitempty"`
	Capacity     *CapacityConfig     `yaml:"capacity,omitempty"`
	MinimumGap   *MinimumGapConfig   `yaml:"minimum_gap,omitempty"`
}

// WorkingHoursConfig bounds the hours (in the event's own location) within
// which events may be scheduled.
type WorkingHoursConfig struct {
	StartHour int  `yaml:"start_hour"`
	EndHour   int  `yaml:"end_hour"`
	Blocking  bool `yaml:"blocking"`
}

// CapacityConfig caps how many existing events may already overlap the
// proposed slot.
type CapacityConfig struct {
	MaxPerSlot int  `yaml:"max_per_slot"`
	Blocking   bool `yaml:"blocking"`
}

// MinimumGapConfig requires breathing room between consecutive events.
type MinimumGapConfig struct {
	Minutes  int  `yaml:"minutes"`
	Blocking bool `yaml:"blocking"`
}

// LoadRulesConfig reads a YAML business-rule catalogue.
func LoadRulesConfig(r io.Reader) (RulesConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return RulesConfig{}, fmt.Errorf("reading rules config: %w", err)
	}
	var cfg RulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RulesConfig{}, fmt.Errorf("parsing rules config: %w", err)
	}
	return cfg, nil
}

func severityFor(blocking bool) Severity {
	if blocking {
		return SeverityBlocking
	}
	return SeverityAdvisory
}

// Checkers materializes the configured sections into the checker list a
// DetectorConfig consumes.
func (c RulesConfig) Checkers() []Rule {
	var rules []Rule
	if c.WorkingHours != nil {
		rules = append(rules, &WorkingHoursRule{
			StartHour: c.WorkingHours.StartHour,
			EndHour:   c.WorkingHours.EndHour,
			Severity:  severityFor(c.WorkingHours.Blocking),
		})
	}
	if c.Capacity != nil {
		rules = append(rules, &CapacityRule{
			MaxPerSlot: c.Capacity.MaxPerSlot,
			Severity:   severityFor(c.Capacity.Blocking),
		})
	}
	if c.MinimumGap != nil {
		rules = append(rules, &MinimumGapRule{
			Gap:      time.Duration(c.MinimumGap.Minutes) * time.Minute,
			Severity: severityFor(c.MinimumGap.Blocking),
		})
	}
	return rules
}
