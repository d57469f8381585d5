// Package resolve turns an optional ID / optional name pair into a definite
// resource ID.
//
// A supplied ID always wins and is returned without touching the backend.
// Otherwise the resource list is fetched and filtered locally for an exact
// name match, since the backend's search filter is not guaranteed to be exact.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/everydev1618/arcane-mcp/arcane"
)

// NameSearchLimit is the page size requested when searching by name.
const NameSearchLimit = 50

// Resolution failure kinds. They are user-input errors and never transient.
var (
	// ErrNoIdentifier is returned when neither an ID nor a name is given.
	ErrNoIdentifier = errors.New("no identifier provided")

	// ErrNotFound is returned when no resource has the requested name.
	ErrNotFound = errors.New("no resource with that name")

	// ErrAmbiguous is returned when more than one resource has the name.
	ErrAmbiguous = errors.New("name matches more than one resource")
)

// Error is a resolution failure. Error() is the user-facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// EnvironmentLister lists environments. arcane.EnvironmentsAPI satisfies it.
type EnvironmentLister interface {
	List(ctx context.Context, opts arcane.ListOptions) (*arcane.Page[arcane.Environment], error)
}

// StackLister lists the stacks of an environment. arcane.StacksAPI satisfies it.
type StackLister interface {
	List(ctx context.Context, envID string, opts arcane.ListOptions) (*arcane.Page[arcane.Project], error)
}

// ContainerLister lists the containers of an environment.
// arcane.ContainersAPI satisfies it.
type ContainerLister interface {
	List(ctx context.Context, envID string) (*arcane.Page[arcane.ContainerSummary], error)
}

// candidate is a listed resource reduced to what resolution needs.
type candidate struct {
	id    string
	names []string
}

// kind describes one resource family for message construction.
type kind struct {
	singular string // "environment"
	plural   string // "environments"
	idArg    string // "environmentId"
	nameArg  string // "environmentName"
	scope    string // " in environment 'E'", empty for environments
}

// EnvironmentID resolves an environment.
func EnvironmentID(ctx context.Context, envs EnvironmentLister, id, name string) (string, error) {
	k := kind{singular: "environment", plural: "environments", idArg: "environmentId", nameArg: "environmentName"}
	if id != "" {
		return id, nil
	}
	if name == "" {
		return "", k.noIdentifier()
	}

	page, err := envs.List(ctx, arcane.ListOptions{Search: name, Limit: NameSearchLimit})
	if err != nil {
		return "", err
	}

	var cands []candidate
	for _, env := range page.Data.All() {
		cands = append(cands, candidate{id: env.ID, names: []string{env.Name}})
	}
	return k.pick(name, cands, page.Data.Present(), exactMatch)
}

// StackID resolves a stack within envID.
func StackID(ctx context.Context, stacks StackLister, envID, id, name string) (string, error) {
	k := kind{singular: "stack", plural: "stacks", idArg: "stackId", nameArg: "stackName", scope: inEnvironment(envID)}
	if id != "" {
		return id, nil
	}
	if name == "" {
		return "", k.noIdentifier()
	}

	page, err := stacks.List(ctx, envID, arcane.ListOptions{Search: name, Limit: NameSearchLimit})
	if err != nil {
		return "", err
	}

	var cands []candidate
	for _, stack := range page.Data.All() {
		cands = append(cands, candidate{id: stack.ID, names: []string{stack.Name}})
	}
	return k.pick(name, cands, page.Data.Present(), exactMatch)
}

// ContainerID resolves a container within envID. The container list has no
// server-side name filter, so the whole list is fetched.
func ContainerID(ctx context.Context, containers ContainerLister, envID, id, name string) (string, error) {
	k := kind{singular: "container", plural: "containers", idArg: "containerId", nameArg: "containerName", scope: inEnvironment(envID)}
	if id != "" {
		return id, nil
	}
	if name == "" {
		return "", k.noIdentifier()
	}

	page, err := containers.List(ctx, envID)
	if err != nil {
		return "", err
	}

	var cands []candidate
	for _, c := range page.Data.All() {
		cands = append(cands, candidate{id: c.ID, names: c.Names})
	}
	return k.pick(name, cands, page.Data.Present(), ContainerNameMatches)
}

// ContainerNameMatches reports whether any of names refers to name.
//
// Docker reports container names with a leading slash ("/web"), so name
// matches both its bare and slash-prefixed form. Comparison is otherwise
// exact and case-sensitive. If the backend ever stops prefixing names this
// stays correct, since the bare form is always accepted.
func ContainerNameMatches(names []string, name string) bool {
	for _, n := range names {
		if n == name || n == "/"+name {
			return true
		}
	}
	return false
}

// DisplayContainerName strips Docker's leading slash from a container name.
func DisplayContainerName(n string) string {
	return strings.TrimPrefix(n, "/")
}

func exactMatch(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// pick applies match to the candidates and reduces them to one ID.
func (k kind) pick(name string, cands []candidate, present bool, match func([]string, string) bool) (string, error) {
	var ids []string
	for _, c := range cands {
		if match(c.names, name) {
			ids = append(ids, c.id)
		}
	}

	switch len(ids) {
	case 0:
		return "", k.notFound(name, cands, present)
	case 1:
		return ids[0], nil
	default:
		return "", &Error{
			Kind: ErrAmbiguous,
			Message: fmt.Sprintf("Multiple %s found with name '%s'%s. Please use the %s ID instead. Matching IDs: %s",
				k.plural, name, k.scope, k.singular, strings.Join(ids, ", ")),
		}
	}
}

func (k kind) noIdentifier() error {
	return &Error{
		Kind:    ErrNoIdentifier,
		Message: fmt.Sprintf("Either %s or %s must be provided", k.idArg, k.nameArg),
	}
}

// notFound lists every name the backend returned, in backend order.
func (k kind) notFound(name string, cands []candidate, present bool) error {
	available := "none"
	if present {
		var names []string
		for _, c := range cands {
			for _, n := range c.names {
				if k.singular == "container" {
					n = DisplayContainerName(n)
				}
				names = append(names, n)
			}
		}
		available = strings.Join(names, ", ")
	}

	return &Error{
		Kind: ErrNotFound,
		Message: fmt.Sprintf("No %s found with name '%s'%s. Available %s: %s",
			k.singular, name, k.scope, k.plural, available),
	}
}

func inEnvironment(envID string) string {
	return fmt.Sprintf(" in environment '%s'", envID)
}
