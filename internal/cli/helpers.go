package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/daykan/internal/app"
)

// AddOutputFlags registers the agent-friendly flags every command carries
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// NewFormatter builds an OutputFormatter from the command's output flags
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// Context returns the command context, never nil
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Open resolves the CLI for a command and reports failures through f.
// The returned func closes it and is safe to defer.
func Open(cmd *cobra.Command, f *OutputFormatter, opts ...app.Option) (*CLI, func(), error) {
	cliInstance, err := GetCLIFromContext(Context(cmd), opts...)
	if err != nil {
		if fmtErr := f.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("error formatting error message", "error", fmtErr)
		}
		return nil, func() {}, reportedError{err}
	}
	return cliInstance, func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}, nil
}

// ParseTaskID reads a positive task ID from the first positional argument
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, &UsageError{Msg: "task ID is required"}
	}
	id, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil || id <= 0 {
		return 0, &UsageError{Msg: fmt.Sprintf("invalid task ID %q: must be a positive integer", args[0])}
	}
	return id, nil
}

// ParseColumnIndex parses a zero-based column index
func ParseColumnIndex(value string) (int, error) {
	index, err := strconv.Atoi(value)
	if err != nil || index < 0 {
		return 0, &UsageError{Msg: fmt.Sprintf("invalid column index %q: must be a non-negative integer", value)}
	}
	return index, nil
}

// ReadDescription returns value, or stdin when value is "-"
func ReadDescription(value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
