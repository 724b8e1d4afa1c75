package errors

import (
	"fmt"
	"strings"

	"github.com/wangnov/shnote/internal/i18n"
)

// MissingRationale reports an execution command without a usable --what/--why
// before the subcommand. Each problem names one flag that is absent, empty or
// misplaced.
func MissingRationale(cat *i18n.Catalog, command string, problems ...string) *CLIError {
	msg := cat.T(i18n.ErrMissingRationale, command)
	if len(problems) > 0 {
		msg += " (" + strings.Join(problems, "; ") + ")"
	}
	err := New(KindMissingRationale, msg, cat.T(i18n.HintRationale, command))
	err.Subject = command
	return err
}

// UnexpectedRationale reports --what/--why on a command that does not execute anything.
func UnexpectedRationale(cat *i18n.Catalog, command string) *CLIError {
	err := New(KindUnexpectedRationale,
		cat.T(i18n.ErrUnexpectedRationale, command),
		cat.T(i18n.HintDropRationale, command))
	err.Subject = command
	return err
}

// UnknownCommand reports a subcommand shnote does not recognise.
func UnknownCommand(cat *i18n.Catalog, command string) *CLIError {
	err := New(KindUnknownCommand, cat.T(i18n.ErrUnknownCommand, command), cat.T(i18n.HintSeeHelp))
	err.Subject = command
	return err
}

// FileNotFound reports a missing script file.
func FileNotFound(cat *i18n.Catalog, path string, cause error) *CLIError {
	err := New(KindFileNotFound, cat.T(i18n.ErrFileNotFound, path))
	err.Subject = path
	err.Err = cause
	return err
}

// ToolNotFound reports an interpreter or tool that could not be resolved.
// configKey is the config key that overrides the tool location, or empty.
func ToolNotFound(cat *i18n.Catalog, tool, configKey string) *CLIError {
	remediation := []string{cat.T(i18n.HintInstallTool, tool)}
	if configKey != "" {
		remediation = append(remediation, cat.T(i18n.HintConfigureTool, configKey, tool))
	}
	if tool == "pueue" || tool == "pueued" {
		remediation = []string{cat.T(i18n.HintSetup)}
	}
	err := New(KindToolNotFound, cat.T(i18n.ErrToolNotFound, tool), remediation...)
	err.Subject = tool
	return err
}

// CorruptMarkedBlock reports a begin marker with no matching end marker.
func CorruptMarkedBlock(cat *i18n.Catalog, path, begin, end string) *CLIError {
	err := New(KindCorruptMarkedBlock,
		cat.T(i18n.ErrCorruptBlock, path, begin, end),
		cat.T(i18n.HintFixBlock))
	err.Subject = path
	return err
}

// DuplicateMarkedBlock reports a second block with the same begin marker.
func DuplicateMarkedBlock(cat *i18n.Catalog, path, begin string, line int) *CLIError {
	err := New(KindCorruptMarkedBlock,
		cat.T(i18n.ErrDuplicateBlock, path, begin, line),
		cat.T(i18n.HintDuplicateBlock))
	err.Subject = path
	return err
}

// ChildSpawnFailed reports a child process that could not be started.
func ChildSpawnFailed(cat *i18n.Catalog, program string, cause error) *CLIError {
	err := New(KindChildSpawnFailed,
		cat.T(i18n.ErrSpawnFailed, program, cause),
		cat.T(i18n.HintCheckPermission, program))
	err.Subject = program
	err.Err = cause
	return err
}

// ChildSignaled reports a child terminated by a signal.
func ChildSignaled(cat *i18n.Catalog, program string, signal int, signalName string) *CLIError {
	if signalName == "" {
		signalName = fmt.Sprintf("%d", signal)
	}
	err := New(KindChildSignaled, cat.T(i18n.ErrChildSignaled, program, signalName))
	err.Subject = program
	err.Signal = signal
	return err
}

// UnknownConfigKey reports a config key outside the schema.
func UnknownConfigKey(cat *i18n.Catalog, key string) *CLIError {
	err := NewConfigError(cat.T(i18n.ErrUnknownConfigKey, key), cat.T(i18n.HintListConfigKeys))
	err.Subject = key
	return err
}

// InvalidConfigValue reports a value rejected by a key's schema.
func InvalidConfigValue(cat *i18n.Catalog, key, value string, allowed []string) *CLIError {
	err := NewConfigError(cat.T(i18n.ErrInvalidConfigValue, value, key, strings.Join(allowed, ", ")))
	err.Subject = key
	return err
}
