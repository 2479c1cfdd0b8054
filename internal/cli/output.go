package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer
	Err   io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		return f.printIDs(data)
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	if w, ok := data.(Writer); ok {
		return w.WriteHuman(f.out())
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// printIDs prints the ID of a result, or one ID per line for a slice of results
func (f *OutputFormatter) printIDs(data any) error {
	if idGetter, ok := data.(interface{ GetID() int }); ok {
		_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
		return err
	}

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Slice {
		for i := range v.Len() {
			if idGetter, ok := v.Index(i).Interface().(interface{ GetID() int }); ok {
				if _, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID()); err != nil {
					return err
				}
			}
		}
	}
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
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns an *ExitError carrying the matching exit code
func (f *OutputFormatter) Fail(err error) error {
	return f.FailWithSuggestion(err, "")
}

// FailWithSuggestion is Fail with a hint for the user
func (f *OutputFormatter) FailWithSuggestion(err error, suggestion string) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		// Already reported
		return err
	}
	var usageErr *UsageError
	if suggestion == "" && errors.As(err, &usageErr) {
		suggestion = usageErr.Suggestion
	}

	code := ExitCodeFor(err)
	_ = f.ErrorWithSuggestion(errorCode(code), err.Error(), suggestion)
	return &ExitError{Code: code, Err: err}
}
