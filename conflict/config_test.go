package conflict

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rulesYAML = `
working_hours:
  start_hour: 8
  end_hour: 18
  blocking: false
capacity:
  max_per_slot: 2
  blocking: true
minimum_gap:
  minutes: 15
`

func TestLoadRulesConfig(t *testing.T) {
	cfg, err := LoadRulesConfig(strings.NewReader(rulesYAML))
	require.NoError(t, err)

	require.NotNil(t, cfg.WorkingHours)
	assert.Equal(t, 8, cfg.WorkingHours.StartHour)
	assert.Equal(t, 18, cfg.WorkingHours.EndHour)

	require.NotNil(t, cfg.Capacity)
	assert.Equal(t, 2, cfg.Capacity.MaxPerSlot)
	assert.True(t, cfg.Capacity.Blocking)

	require.NotNil(t, cfg.MinimumGap)
	assert.Equal(t, 15, cfg.MinimumGap.Minutes)
}

func TestRulesConfigCheckers(t *testing.T) {
	cfg, err := LoadRulesConfig(strings.NewReader(rulesYAML))
	require.NoError(t, err)

	rules := cfg.Checkers()
	require.Len(t, rules, 3)

	wh, ok := rules[0].(*WorkingHoursRule)
	require.True(t, ok)
	assert.Equal(t, SeverityAdvisory, wh.Severity)

	cap, ok := rules[1].(*CapacityRule)
	require.True(t, ok)
	assert.Equal(t, SeverityBlocking, cap.Severity)

	gap, ok := rules[2].(*MinimumGapRule)
	require.True(t, ok)
	assert.Equal(t, 15*time.Minute, gap.Gap)
}

func TestLoadRulesConfigEmpty(t *testing.T) {
	cfg, err := LoadRulesConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Checkers())
}

func TestLoadRulesConfigMalformed(t *testing.T) {
	_, err := LoadRulesConfig(strings.NewReader("working_hours: ["))
	assert.Error(t, err)
}
