package scrolltail

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestTriggerFiresOnce(t *testing.T) {
	calls := 0
	cmd := func() tea.Msg { calls++; return nil }

	trig := &trigger{}
	got := trig.fire(cmd)
	assert.NotNil(t, got)
	got()
	assert.Equal(t, 1, calls)

	assert.Nil(t, trig.fire(cmd), "a fired trigger stays fired")
	assert.Nil(t, trig.fire(cmd))
	assert.Equal(t, 1, calls)
}

func TestTriggerFreshInstanceRearms(t *testing.T) {
	cmd := func() tea.Msg { return nil }

	trig := &trigger{}
	assert.NotNil(t, trig.fire(cmd))

	trig = &trigger{}
	assert.NotNil(t, trig.fire(cmd), "a fresh instance starts unfired")
}

func TestNilTriggerNeverFires(t *testing.T) {
	var trig *trigger
	assert.Nil(t, trig.fire(func() tea.Msg { return nil }))
}
