package i18n

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// SystemLocale returns the macOS user locale (AppleLocale), such as "zh_CN",
// or "" when it cannot be read.
func SystemLocale() string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleLocale").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
