package shared

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wangnov/shnote/internal/blockmerge"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/i18n"
)

// AddGroups declares the help groups every subcommand is filed under.
func AddGroups(root *cobra.Command) {
	root.AddGroup(
		&cobra.Group{ID: GroupExecution, Title: "Execution Commands (require --what/--why):"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"},
		&cobra.Group{ID: GroupMaintenance, Title: "Maintenance:"},
	)
}

// UsageArgs turns cobra's positional argument errors into argument errors so
// they land in the validation exit band.
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
		}
		return nil
	}
}

// FileError converts errors from marked-block writes into CLI errors. A
// corrupt block keeps its own kind; everything else is a runtime failure.
func FileError(cat *i18n.Catalog, err error) error {
	if err == nil {
		return nil
	}
	var corrupt *blockmerge.CorruptBlockError
	if stderrors.As(err, &corrupt) {
		if corrupt.Duplicate {
			return errors.DuplicateMarkedBlock(cat, corrupt.Path, corrupt.Markers.Begin, corrupt.Line)
		}
		return errors.CorruptMarkedBlock(cat, corrupt.Path, corrupt.Markers.Begin, corrupt.Markers.End)
	}
	if errors.IsCLIError(err) {
		return err
	}
	return errors.Wrap(err, errors.Runtime)
}

// PromptYesNo asks question on out and reads one line from in. Only an
// explicit y or yes counts as consent; end of input means no. Input is read
// unbuffered so consecutive prompts on one reader each get their own line.
func PromptYesNo(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)

	var line strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				break
			}
			line.WriteByte(buf[0])
		}
		if err != nil {
			break
		}
	}
	answer := strings.TrimSpace(strings.ToLower(line.String()))

	return answer == "y" || answer == "yes"
}
