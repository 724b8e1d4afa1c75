// Package health implements `shnote doctor`: it resolves every external tool
// shnote can launch and reports its path and version.
package health

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wangnov/shnote/internal/executor"
)

const versionTimeout = 5 * time.Second

// Resolver locates the tools doctor inspects. *executor.Resolver satisfies it.
type Resolver interface {
	Python() (string, error)
	Node() (string, error)
	Shell() (executor.Shell, error)
	Pueue(binary string) (string, error)
}

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Path    string
	Version string
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// Failed returns the number of failed checks.
func (r *HealthReport) Failed() int {
	n := 0
	for _, c := range r.Checks {
		if !c.Passed {
			n++
		}
	}
	return n
}

type check struct {
	name    string
	resolve func() (string, error)
	version func(ctx context.Context, path string) string
}

// RunHealthChecks resolves python, node, the shell, pueue and pueued and
// queries each for its version. Checks run concurrently; the report keeps
// this fixed order.
func RunHealthChecks(ctx context.Context, r Resolver) *HealthReport {
	var shell executor.Shell
	checks := []check{
		{name: "python", resolve: r.Python, version: flagVersion},
		{name: "node", resolve: r.Node, version: flagVersion},
		{
			name: "shell",
			resolve: func() (string, error) {
				s, err := r.Shell()
				shell = s
				return s.Path, err
			},
			version: func(ctx context.Context, path string) string {
				if shell.Kind == executor.Cmd {
					return "Windows CMD"
				}
				return flagVersion(ctx, path)
			},
		},
		{name: "pueue", resolve: func() (string, error) { return r.Pueue("pueue") }, version: flagVersion},
		{name: "pueued", resolve: func() (string, error) { return r.Pueue("pueued") }, version: flagVersion},
	}

	report := &HealthReport{
		Checks: make([]CheckResult, len(checks)),
		Passed: true,
	}

	// Resolution is cheap and touches shared state; only version probes fan out.
	var g errgroup.Group
	for i, c := range checks {
		path, err := c.resolve()
		if err != nil {
			report.Checks[i] = CheckResult{Name: c.name, Message: err.Error()}
			report.Passed = false
			continue
		}
		report.Checks[i] = CheckResult{Name: c.name, Passed: true, Path: path}
		g.Go(func() error {
			report.Checks[i].Version = c.version(ctx, path)
			return nil
		})
	}
	_ = g.Wait()

	return report
}

// flagVersion runs `path --version` and returns the first non-empty line of
// stdout, or of stderr for tools that print their version there. It returns
// "" when the tool fails or prints nothing.
func flagVersion(ctx context.Context, path string) string {
	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "--version")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return ""
	}
	out := strings.TrimSpace(stdout.String())
	if out == "" {
		out = strings.TrimSpace(stderr.String())
	}
	line, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(line)
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var b strings.Builder

	for _, check := range report.Checks {
		if !check.Passed {
			fmt.Fprintf(&b, "✗ %s: %s\n", check.Name, check.Message)
			continue
		}
		if check.Version != "" {
			fmt.Fprintf(&b, "✓ %s: %s (%s)\n", check.Name, check.Path, check.Version)
		} else {
			fmt.Fprintf(&b, "✓ %s: %s\n", check.Name, check.Path)
		}
	}

	return b.String()
}
