package tools

import "errors"

// Result is what a client sees for one tool call.
type Result struct {
	Text    string
	IsError bool
}

// Outcome converts a tool's text and error into a Result. It is the only
// place where failures become error results: any error, whether from the
// transport, the backend or name resolution, yields "Error: <message>".
func Outcome(text string, err error) Result {
	if err != nil {
		return Result{Text: "Error: " + Message(err), IsError: true}
	}
	return Result{Text: text}
}

// Message returns the user-facing message of err without the tool name
// prefix added by Execute.
func Message(err error) string {
	var te *ToolError
	if errors.As(err, &te) {
		return te.Err.Error()
	}
	return err.Error()
}
