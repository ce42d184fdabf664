package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

const notificationTimeout = 5 * time.Second

var errNoDisplaySession = errors.New("no display session")

// NotifyError tells the user about a critical problem.
//
// On a desktop, a notification is sent to the user of the current display session.
// Headless systems, which are the common case for a fan controller, get a message
// on all terminals instead.
func NotifyError(title, text string) {
	err := notifyDesktop(title, text)
	if err == nil {
		return
	}
	if !errors.Is(err, errNoDisplaySession) {
		Warning("Cannot send desktop notification: %v", err)
	}

	err = runNotificationCommand(strings.NewReader(fmt.Sprintf("fanctrl: %s\n%s\n", title, text)), "wall")
	if err != nil {
		Warning("Cannot broadcast notification: %v", err)
	}
}

func notifyDesktop(title, text string) error {
	display, exists := os.LookupEnv("DISPLAY")
	if !exists {
		return errNoDisplaySession
	}

	output, err := exec.Command("who").Output()
	if err != nil {
		return fmt.Errorf("unable to find user of display session: %w", err)
	}
	user := findDisplayUser(string(output), display)
	if user == "" {
		return errNoDisplaySession
	}

	output, err = exec.Command("id", "-u", user).Output()
	userId := strings.TrimSpace(string(output))
	if err != nil || userId == "" {
		return fmt.Errorf("unable to detect id of user %s: %v", user, err)
	}

	return runNotificationCommand(nil, "sudo", "-u", user,
		"DISPLAY="+display,
		"DBUS_SESSION_BUS_ADDRESS=unix:path=/run/user/"+userId+"/bus",
		"notify-send",
		"-a", "fanctrl",
		"-u", "critical",
		"-i", "dialog-error",
		title, text,
	)
}

// findDisplayUser returns the user owning the given display, based on the output of 'who'
func findDisplayUser(who string, display string) string {
	for _, line := range strings.Split(who, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if strings.Contains(line, "("+display+")") || strings.Contains(line, " "+display+" ") {
			return fields[0]
		}
	}
	return ""
}

func runNotificationCommand(stdin *strings.Reader, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}
	return cmd.Run()
}
