package execution

import (
	"fmt"
	"os/exec"
)

// Display is a scoped handle on a virtual display helper (Xvfb) started
// for one worker. It is always reaped: Stop kills the helper and waits
// for it on every worker exit path.
type Display struct {
	Number int
	cmd    *exec.Cmd
}

// StartDisplay launches Xvfb on the given display number.
func StartDisplay(number int) (*Display, error) {
	cmd := exec.Command("Xvfb",
		fmt.Sprintf(":%d", number),
		"-screen", "0", "1366x768x24",
		"-nolisten", "tcp",
	)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start Xvfb :%d: %w", number, err)
	}
	return &Display{Number: number, cmd: cmd}, nil
}

// Stop tears the display down. Safe on a nil handle so callers can
// defer it unconditionally.
func (d *Display) Stop() {
	if d == nil || d.cmd.Process == nil {
		return
	}
	_ = d.cmd.Process.Kill()
	_ = d.cmd.Wait()
}
