package cli

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"

	ghserr "github.com/kagami/github-social-graph/pkg/errors"
	"github.com/kagami/github-social-graph/pkg/integrations/github"
)

// promptSecret asks for a secret without echoing it.
var promptSecret = func(title string) (string, error) {
	if !isTerminal(os.Stdin) {
		return "", ghserr.New(ghserr.ErrCodeInvalidInput, "cannot prompt for %s: stdin is not a terminal", title)
	}
	var value string
	err := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&value).
		Validate(func(s string) error {
			if s == "" {
				return errors.New("value cannot be empty")
			}
			return nil
		}).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", ghserr.New(ghserr.ErrCodeInvalidInput, "%s prompt aborted", title)
	}
	return value, err
}

// resolveSecret returns the flag value, prompting when requested.
func resolveSecret(s Secret, title string) (string, error) {
	switch s.State {
	case SecretPrompt:
		return promptSecret(title)
	case SecretValue:
		return s.Value, nil
	default:
		return "", nil
	}
}

// credentials combines flags, the config file and the environment.
// A token from flags wins over the config file, which wins over
// $GITHUB_TOKEN. A password never falls back to a stored token.
func (o *options) credentials(cfg *Config) (github.Credentials, error) {
	password, err := resolveSecret(o.password, "Password")
	if err != nil {
		return github.Credentials{}, err
	}
	token, err := resolveSecret(o.token, "Token")
	if err != nil {
		return github.Credentials{}, err
	}
	if !o.password.IsSet() && token == "" {
		token = cfg.Token
		if token == "" {
			token = os.Getenv(tokenEnv)
		}
	}
	return github.Credentials{Username: o.username, Password: password, Token: token}, nil
}
