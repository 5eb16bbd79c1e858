package modes

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdeck/internal/ui/input/types"
)

type fakeContext struct {
	total       int
	ready       bool
	options     []string
	nationality string
}

func (c fakeContext) CurrentIndex() int { return 0 }
func (c fakeContext) TotalItems() int { return c.total }
func (c fakeContext) Ready() bool { return c.ready }
func (c fakeContext) NationalityOptions() []string { return c.options }
func (c fakeContext) CurrentNationality() string { return c.nationality }

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCycleNationality(t *testing.T) {
	options := []string{"US", "BR", "DE"}

	assert.Equal(t, "US", CycleNationality("", options, 1))
	assert.Equal(t, "BR", CycleNationality("US", options, 1))
	assert.Equal(t, "", CycleNationality("DE", options, 1), "wraps back to all")
	assert.Equal(t, "DE", CycleNationality("", options, -1), "wraps backwards")
	assert.Equal(t, "US", CycleNationality("FR", options, 1), "unknown value restarts from all")
	assert.Equal(t, "", CycleNationality("", nil, 1))
}

func TestListModeDoubleG(t *testing.T) {
	m := NewListMode()
	now := time.Unix(0, 0)
	m.now = func() time.Time { return now }
	ctx := fakeContext{total: 10, ready: true}

	actions, consumed := m.HandleKey(key("g"), ctx)
	assert.True(t, consumed)
	assert.Empty(t, actions)

	now = now.Add(100 * time.Millisecond)
	actions, _ = m.HandleKey(key("g"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.NavigateAction{Direction: "home"}, actions[0])

	// Too slow
	m.HandleKey(key("g"), ctx)
	now = now.Add(time.Second)
	actions, _ = m.HandleKey(key("g"), ctx)
	assert.Empty(t, actions)
}

func TestListModeDetailsNeedRows(t *testing.T) {
	m := NewListMode()
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	actions, consumed := m.HandleKey(enter, fakeContext{ready: true})
	assert.False(t, consumed)
	assert.Empty(t, actions)

	actions, _ = m.HandleKey(enter, fakeContext{total: 1, ready: true})
	require.Len(t, actions, 1)
	assert.Equal(t, types.ShowDetailsAction{}, actions[0])
}

func TestListModeFocusKeys(t *testing.T) {
	m := NewListMode()
	tests := map[string]types.Mode{
		"/": types.ModeSearch,
		"n": types.ModeNationality,
		"f": types.ModeFromDate,
		"t": types.ModeToDate,
	}
	for k, mode := range tests {
		actions, _ := m.HandleKey(key(k), fakeContext{ready: true})
		require.Len(t, actions, 1, k)
		assert.Equal(t, types.ChangeModeAction{Mode: mode}, actions[0], k)

		actions, consumed := m.HandleKey(key(k), fakeContext{})
		assert.Empty(t, actions, "%s before load", k)
		assert.False(t, consumed)
	}
}

func TestNationalityModeIgnoresOtherKeys(t *testing.T) {
	m := NewNationalityMode()
	ctx := fakeContext{ready: true, options: []string{"US"}}

	actions, consumed := m.HandleKey(key("x"), ctx)
	assert.True(t, consumed)
	assert.Empty(t, actions)

	// Backspace on "all" is a no-op
	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, ctx)
	assert.Empty(t, actions)
}

func TestTextModeLeavesEditingToHandler(t *testing.T) {
	m := NewSearchMode(nil)
	actions, consumed := m.HandleKey(key("a"), fakeContext{ready: true})
	assert.False(t, consumed)
	assert.Empty(t, actions)

	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{ready: true})
	require.Len(t, actions, 1)
	assert.Equal(t, types.ChangeModeAction{Mode: types.ModeList}, actions[0])
	assert.Equal(t, "Search: ", m.Prompt())
}
