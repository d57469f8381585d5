package tools

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// ArgsError reports tool arguments that could not be decoded or failed
// validation. The backend is never called when it occurs.
type ArgsError struct {
	Err error
}

func (e *ArgsError) Error() string {
	return "invalid arguments: " + e.Err.Error()
}

func (e *ArgsError) Unwrap() error {
	return e.Err
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their argument name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Typed adapts a handler taking a typed argument struct to a ToolFunc.
// The raw argument map is decoded into A and validated against its
// `validate` struct tags before fn runs. Unknown arguments are ignored.
func Typed[A any](fn func(ctx context.Context, args A) (string, error)) ToolFunc {
	return func(ctx context.Context, params map[string]any) (string, error) {
		args, err := decodeArgs[A](params)
		if err != nil {
			return "", err
		}
		return fn(ctx, args)
	}
}

func decodeArgs[A any](params map[string]any) (A, error) {
	var args A

	raw, err := json.Marshal(params)
	if err != nil {
		return args, &ArgsError{Err: err}
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return args, &ArgsError{Err: err}
	}

	if err := validate.Struct(args); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return args, &ArgsError{Err: describe(verrs)}
		}
		return args, &ArgsError{Err: err}
	}
	return args, nil
}

// describe renders validation failures as one readable line.
func describe(verrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
