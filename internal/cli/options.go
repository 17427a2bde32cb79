package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	ghserr "github.com/kagami/github-social-graph/pkg/errors"
	gio "github.com/kagami/github-social-graph/pkg/io"
	"github.com/kagami/github-social-graph/pkg/render"
)

// options holds the parsed command-line flags.
type options struct {
	username string
	password Secret
	token    Secret

	input        string
	inputFormat  string
	output       string
	outputFormat string

	orgs  []string
	users []string

	noAvatars bool
	full      bool

	configPath string
}

func (o *options) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.username, "username", "u", "", "GitHub username for authenticated requests")
	secretFlag(f, &o.password, "password", "p", "GitHub `password` for authenticated requests; omit the value to enter it by hand")
	secretFlag(f, &o.token, "token", "t", "GitHub `token` for authenticated requests; omit the value to enter it by hand (default $"+tokenEnv+")")
	f.StringVarP(&o.input, "input", "i", "", `pre-fetched data filename or "-" for stdin`)
	f.StringVar(&o.inputFormat, "input-format", "", "format of the input data (json, dot); guessed from the filename if omitted")
	f.StringVarP(&o.output, "output", "o", "", `output filename or "-" for stdout`)
	f.StringVar(&o.outputFormat, "output-format", "", "format of the output data (json, dot, png, svg, pdf, ...); guessed from the filename if omitted")
	f.StringSliceVar(&o.orgs, "orgs", nil, "organizations to start fetching data with")
	f.StringSliceVar(&o.users, "users", nil, "users to start fetching data with")
	f.BoolVar(&o.noAvatars, "no-avatars", false, "do not show avatars in graphs (saves API requests)")
	f.BoolVar(&o.full, "full", false, "keep users that were not fetched (draws the full graph)")
	f.StringVar(&o.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/github-social-graph/config.toml)")
	_ = cmd.MarkFlagRequired("output")
}

// noPositionalArgs rejects stray arguments. They usually come from writing
// "-p secret" instead of "-p=secret", since credential values are optional.
func noPositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return ghserr.New(ghserr.ErrCodeInvalidInput,
			"unexpected argument %q (pass credential values as --password=VALUE or --token=VALUE)", args[0])
	}
	return nil
}

// isTerminal reports whether f is attached to a terminal.
var isTerminal = func(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// textFormats can be written to a terminal.
var textFormats = []string{gio.FormatJSON, gio.FormatDOT, "svg", "xdot"}

// validate checks flag combinations and resolves input and output formats.
// It runs before any network or file access.
func (o *options) validate() error {
	invalid := func(format string, args ...any) error {
		return ghserr.New(ghserr.ErrCodeInvalidInput, format, args...)
	}

	if o.username != "" && !o.password.IsSet() && !o.token.IsSet() {
		return invalid("password or token should be specified")
	}
	if o.password.IsSet() && o.username == "" {
		return invalid("username should be specified")
	}
	if o.password.IsSet() && o.token.IsSet() {
		return invalid("password and token could not be used together")
	}
	for _, s := range []*Secret{&o.password, &o.token} {
		if s.State == SecretValue && s.Value == "" {
			return invalid("empty credential; omit the value to enter it by hand")
		}
	}

	if gio.IsStream(o.input) && o.inputFormat == "" {
		return invalid("input format should be specified")
	}
	if gio.IsStream(o.output) && o.outputFormat == "" {
		return invalid("output format should be specified")
	}

	if o.input != "" {
		o.inputFormat = gio.ResolveFormat(o.inputFormat, o.input)
		if !slices.Contains(gio.InputFormats, o.inputFormat) {
			return ghserr.New(ghserr.ErrCodeInvalidFormat,
				"input format %q is not supported (use %s)", o.inputFormat, strings.Join(gio.InputFormats, " or "))
		}
	}

	o.outputFormat = gio.ResolveFormat(o.outputFormat, o.output)
	switch {
	case o.outputFormat == "":
		return ghserr.New(ghserr.ErrCodeInvalidFormat, "cannot guess output format from %q, use --output-format", o.output)
	case o.outputFormat == gio.FormatJSON && o.inputFormat == gio.FormatDOT:
		return ghserr.New(ghserr.ErrCodeInvalidFormat, "DOT input cannot be converted to JSON")
	case o.outputFormat != gio.FormatJSON && o.outputFormat != gio.FormatDOT && !render.IsSupported(o.outputFormat):
		return ghserr.New(ghserr.ErrCodeInvalidFormat, "output format %q is not supported", o.outputFormat)
	}

	if o.input == "" && len(o.orgs) == 0 && len(o.users) == 0 {
		return invalid("no input data and no users/organizations provided")
	}

	if gio.IsStream(o.output) && !slices.Contains(textFormats, o.outputFormat) && isTerminal(os.Stdout) {
		return invalid("refusing to write %s data to a terminal, redirect stdout or use --output", o.outputFormat)
	}
	return nil
}

// fetchTargets reports whether data comes from GitHub rather than a file.
func (o *options) fetchTargets() bool { return o.input == "" }

func (o *options) String() string {
	return fmt.Sprintf("input=%q (%s) output=%q (%s) orgs=%v users=%v full=%t avatars=%t",
		o.input, o.inputFormat, o.output, o.outputFormat, o.orgs, o.users, o.full, !o.noAvatars)
}
