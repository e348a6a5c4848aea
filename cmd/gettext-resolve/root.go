package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	gettext "github.com/goliatone/go-gettext"
)

type options struct {
	catalogs string
	bundles  []string
	langs    []string
	domain   string
	timezone string
	format   string
	args     []string
	verbose  bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{
		catalogs: os.Getenv("GETTEXT_CATALOGS"),
		domain:   os.Getenv("GETTEXT_DOMAIN"),
		timezone: os.Getenv("GETTEXT_TZ"),
	}
	if lang := os.Getenv("GETTEXT_LANG"); lang != "" {
		opts.langs = strings.Split(lang, ":")
	}

	cmd := &cobra.Command{
		Use:   "gettext-resolve [file]",
		Short: "Resolve a data-only localizable message into a string",
		Long: "Reads a message tree in JSON, YAML or TOML from file (or stdin when the\n" +
			"file is omitted or \"-\") and prints the resolved string.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return run(opts, path, stdin, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.catalogs, "catalogs", opts.catalogs, "gettext catalog root (<root>/<lang>/LC_MESSAGES/<domain>.po)")
	flags.StringSliceVar(&opts.bundles, "bundle", nil, "go-i18n message files (toml, yaml, json) used instead of catalogs")
	flags.StringSliceVarP(&opts.langs, "lang", "l", opts.langs, "languages in preference order")
	flags.StringVar(&opts.domain, "domain", opts.domain, "default text domain")
	flags.StringVar(&opts.timezone, "tz", opts.timezone, "IANA timezone for datetimes")
	flags.StringVarP(&opts.format, "format", "f", "", "input format: json, yaml or toml (default from extension, else json)")
	flags.StringArrayVarP(&opts.args, "arg", "a", nil, "base argument key=value (repeatable)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log oracle lookups to stderr")

	return cmd
}

func run(opts *options, path string, stdin io.Reader, stdout, stderr io.Writer) error {
	data, err := readInput(path, stdin)
	if err != nil {
		return err
	}

	value, err := parse(inputFormat(opts.format, path), data)
	if err != nil {
		return err
	}

	base, err := parseArgs(opts.args)
	if err != nil {
		return err
	}

	cfgOpts := []gettext.Option{
		gettext.WithLanguages(opts.langs...),
		gettext.WithDomain(opts.domain),
		gettext.WithTimezone(opts.timezone),
	}

	if opts.verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		cfgOpts = append(cfgOpts, gettext.WithLogger(logger))
	}

	switch {
	case len(opts.bundles) > 0:
		oracle, err := bundleOracle(opts)
		if err != nil {
			return err
		}
		cfgOpts = append(cfgOpts, gettext.WithOracle(oracle))
	case opts.catalogs != "":
		cfgOpts = append(cfgOpts, gettext.WithLoader(gettext.NewDirLoader(opts.catalogs)))
	}

	cfg, err := gettext.NewConfig(cfgOpts...)
	if err != nil {
		return err
	}

	resolver, err := cfg.BuildResolver()
	if err != nil {
		return err
	}

	out, err := resolver.Resolve(value, base)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, out)
	return err
}

func bundleOracle(opts *options) (gettext.Oracle, error) {
	if len(opts.langs) == 0 {
		return nil, fmt.Errorf("--bundle requires at least one --lang")
	}
	bundle, err := gettext.NewBundle(opts.langs[0], os.DirFS("/"), absPaths(opts.bundles)...)
	if err != nil {
		return nil, err
	}
	return gettext.NewBundleOracle(bundle, opts.langs, gettext.WithBundleTextDomain(opts.domain)), nil
}

// absPaths turns paths into fs.FS names rooted at "/".
func absPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		out = append(out, strings.TrimPrefix(filepath.ToSlash(abs), "/"))
	}
	return out
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func inputFormat(explicit, path string) string {
	if explicit != "" {
		return strings.ToLower(explicit)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return "json"
	}
}

func parse(format string, data []byte) (gettext.Value, error) {
	switch format {
	case "json":
		return gettext.ParseJSON(data)
	case "yaml", "yml":
		return gettext.ParseYAML(data)
	case "toml":
		return gettext.ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func parseArgs(raw []string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --arg %q, want key=value", kv)
		}
		out[key] = value
	}
	return out, nil
}
