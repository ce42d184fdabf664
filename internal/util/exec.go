package util

import (
	"context"
	"errors"
	"fmt"
	"github.com/markusressel/fanctrl/internal/ui"
	"os/exec"
	"strings"
	"time"
)

// SafeCmdExecution runs the given executable, if its file permissions are considered safe,
// and returns its trimmed stdout. The command is killed after the given timeout.
func SafeCmdExecution(executable string, args []string, timeout time.Duration) (string, error) {
	if _, err := CheckFilePermissionsForExecution(executable); err != nil {
		return "", fmt.Errorf("cannot execute %s: %w", executable, err)
	}
	return runCmd(executable, args, timeout)
}

func runCmd(executable string, args []string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, executable, args...)
	out, err := cmd.Output()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		ui.Warning("Command timed out: %s", executable)
		return "", fmt.Errorf("command timed out after %s: %s", timeout, executable)
	}

	if err != nil {
		ui.Warning("Command failed to execute: %s", executable)
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}
