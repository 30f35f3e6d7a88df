package scrolltail

import tea "github.com/charmbracelet/bubbletea"

// trigger guards the fetch command so it is produced at most once per
// trailing-item instance. A fresh instance is installed whenever the trailing
// item's identity changes (count change, error transition, fetchability
// transition), which re-arms the fetch.
type trigger struct {
	fired bool
}

// fire returns cmd on the first call of this instance's lifetime and nil on
// every later call. A nil trigger never fires.
func (t *trigger) fire(cmd tea.Cmd) tea.Cmd {
	if t == nil || t.fired {
		return nil
	}
	t.fired = true
	return cmd
}
