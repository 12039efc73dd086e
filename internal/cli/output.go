package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result. human renders the
// human-readable form and may be nil.
func (f *OutputFormatter) Success(data any, human func() string) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if human != nil {
		fmt.Println(human())
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	if f.Quiet {
		return nil
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the current output mode and returns it marked as
// reported, so commands can `return formatter.Fail(err)`.
func (f *OutputFormatter) Fail(err error) error {
	return f.FailWithSuggestion(err, "")
}

// FailWithSuggestion is Fail with a hint for the human-readable output
func (f *OutputFormatter) FailWithSuggestion(err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestion); fmtErr != nil {
		slog.Error("error formatting error message", "error", fmtErr)
	}
	return reportedError{err}
}

// reportedError wraps an error the user has already been shown
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// IsReported reports whether err was already printed by a formatter
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
