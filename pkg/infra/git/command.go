package git

import (
	"strings"
)

const redacted = "***"

type arg struct {
	value  string
	secret bool
}

// Command is an argument vector for the git CLI. Arguments carrying credentials are tagged when
// they are added, and String and Scrub never return their values.
type Command struct {
	args    []arg
	secrets []string
}

func NewCommand(args ...string) *Command {
	return (&Command{}).Arg(args...)
}

// Arg appends plain arguments.
func (x *Command) Arg(values ...string) *Command {
	for _, v := range values {
		x.args = append(x.args, arg{value: v})
	}
	return x
}

// Secret appends value as a credential bearing argument. Extra secrets such as the bare token
// embedded in value are scrubbed from captured output as well.
func (x *Command) Secret(value string, extra ...string) *Command {
	x.args = append(x.args, arg{value: value, secret: true})
	for _, s := range append([]string{value}, extra...) {
		if s != "" {
			x.secrets = append(x.secrets, s)
		}
	}
	return x
}

// Conceal registers secrets that are scrubbed from captured output without adding arguments.
// A step that carries no credential itself can still echo one configured by an earlier step.
func (x *Command) Conceal(secrets ...string) *Command {
	for _, s := range secrets {
		if s != "" {
			x.secrets = append(x.secrets, s)
		}
	}
	return x
}

// Args returns the raw argument vector to pass to the process.
func (x *Command) Args() []string {
	args := make([]string, len(x.args))
	for i, a := range x.args {
		args[i] = a.value
	}
	return args
}

// String returns the sanitized command line for logs and errors.
func (x *Command) String() string {
	parts := make([]string, 0, len(x.args)+1)
	parts = append(parts, "git")
	for _, a := range x.args {
		if a.secret {
			parts = append(parts, redacted)
		} else {
			parts = append(parts, a.value)
		}
	}
	return strings.Join(parts, " ")
}

// Scrub replaces every secret of the command found in text.
func (x *Command) Scrub(text string) string {
	for _, s := range x.secrets {
		text = strings.ReplaceAll(text, s, redacted)
	}
	return text
}
