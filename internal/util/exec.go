package util

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// SafeCmdExecution runs executable (which must pass CheckFilePermissionsForExecution)
// and returns its trimmed stdout.
func SafeCmdExecution(ctx context.Context, executable string, args []string, timeout time.Duration) (string, error) {
	if _, err := CheckFilePermissionsForExecution(executable); err != nil {
		return "", fmt.Errorf("cannot execute %s: %w", executable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, executable, args...)
	out, err := cmd.Output()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("command timed out: %s", executable)
	}
	if err != nil {
		return "", fmt.Errorf("command failed to execute: %s: %w", executable, err)
	}

	return strings.TrimSpace(string(out)), nil
}
