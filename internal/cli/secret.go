package cli

import (
	"github.com/spf13/pflag"
)

// SecretState tells how a credential flag was given.
type SecretState int

const (
	// SecretUnset means the flag was absent.
	SecretUnset SecretState = iota
	// SecretPrompt means the flag was given without a value and the secret
	// is read interactively.
	SecretPrompt
	// SecretValue means the secret was passed as --flag=value.
	SecretValue
)

// promptSentinel is the NoOptDefVal of credential flags; it is also what
// the usage text shows for the bare form.
const promptSentinel = "<prompt>"

// Secret is a credential flag with three states: absent, prompt, or value.
// It implements [pflag.Value].
type Secret struct {
	State SecretState
	Value string
}

// String masks the value so it never shows up in usage or logs.
func (s *Secret) String() string {
	if s.State == SecretValue {
		return "********"
	}
	return ""
}

// Set records a value or, for a bare flag, a prompt request.
func (s *Secret) Set(v string) error {
	if v == promptSentinel {
		*s = Secret{State: SecretPrompt}
		return nil
	}
	*s = Secret{State: SecretValue, Value: v}
	return nil
}

// Type implements pflag.Value.
func (s *Secret) Type() string { return "secret" }

// IsSet reports whether the flag was given at all.
func (s *Secret) IsSet() bool { return s.State != SecretUnset }

// secretFlag registers s as a credential flag whose value is optional.
func secretFlag(fs *pflag.FlagSet, s *Secret, name, shorthand, usage string) {
	f := fs.VarPF(s, name, shorthand, usage)
	f.NoOptDefVal = promptSentinel
}
