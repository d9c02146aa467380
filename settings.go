package nslog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Settings is the declarative configuration shared by environment variables
// and settings files. Empty strings and nil toggles keep the defaults.
type Settings struct {
	Level           string   `toml:"level" yaml:"level"`
	Levels          []string `toml:"levels" yaml:"levels"`
	Format          string   `toml:"format" yaml:"format"`
	NamespacePrefix *bool    `toml:"namespace_prefix" yaml:"namespace_prefix"`
	NamespaceColors *bool    `toml:"namespace_colors" yaml:"namespace_colors"`
	AppendTags      *bool    `toml:"append_tags" yaml:"append_tags"`
	AppendExtra     *bool    `toml:"append_extra" yaml:"append_extra"`
	Renderer        string   `toml:"renderer" yaml:"renderer"`
	NoColor         bool     `toml:"no_color" yaml:"no_color"`
	ForceColor      bool     `toml:"force_color" yaml:"force_color"`
	Output          string   `toml:"output" yaml:"output"`
	Ignore          []string `toml:"ignore" yaml:"ignore"`
}

type settingsFormat int

const (
	settingsTOML settingsFormat = iota
	settingsYAML
)

func detectSettingsFormat(path string) settingsFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return settingsYAML
	default:
		return settingsTOML
	}
}

// LoadSettings reads a TOML or YAML settings file. Files ending in .yaml or
// .yml are YAML, everything else is TOML.
func LoadSettings(path string) (Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("open settings %q: %w", path, err)
	}
	return ParseSettings(content, detectSettingsFormat(path) == settingsYAML)
}

// ParseSettings decodes settings content, as YAML when yamlFormat is set and
// as TOML otherwise.
func ParseSettings(content []byte, yamlFormat bool) (Settings, error) {
	var s Settings
	if yamlFormat {
		if err := yaml.Unmarshal(content, &s); err != nil {
			return Settings{}, fmt.Errorf("parse yaml settings: %w", err)
		}
		return s, nil
	}
	if _, err := toml.Decode(string(content), &s); err != nil {
		return Settings{}, fmt.Errorf("parse toml settings: %w", err)
	}
	return s, nil
}

// consoleOptions derives the console sink options; base receives levels
// without an explicit output.
func (s Settings) consoleOptions(base io.Writer) (ConsoleOptions, error) {
	opts := ConsoleOptions{Output: base, NoColor: s.NoColor, ForceColor: s.ForceColor}
	if mode, ok := ParseRenderer(s.Renderer); ok {
		opts.Renderer = mode
	}
	if strings.TrimSpace(s.Output) == "" {
		return opts, nil
	}
	w, err := writerFromOutput(s.Output, base)
	if err != nil {
		return opts, err
	}
	opts.Output = w
	return opts, nil
}

func (s Settings) configOptions() []ConfigOption {
	var opts []ConfigOption
	if format, ok := ParseFormat(s.Format); ok {
		opts = append(opts, WithFormat(format))
	}
	if s.NamespacePrefix != nil {
		opts = append(opts, WithNamespacePrefix(*s.NamespacePrefix))
	}
	if s.NamespaceColors != nil {
		opts = append(opts, WithNamespacePrefixColors(*s.NamespaceColors))
	}
	if s.AppendTags != nil {
		opts = append(opts, WithTagsForTextPrint(*s.AppendTags))
	}
	if s.AppendExtra != nil {
		opts = append(opts, WithExtraForTextPrint(*s.AppendExtra))
	}
	return opts
}

// ConfigureFromSettings configures r with the console sink described by s,
// then applies the level gates and ignore list of s. opts run after the
// options derived from s. An output that cannot be opened falls back to the
// default writers and is reported through the root logger.
func (r *Runtime) ConfigureFromSettings(s Settings, opts ...ConfigOption) error {
	return r.configureFromSettings(s, nil, opts)
}

func (r *Runtime) configureFromSettings(s Settings, base io.Writer, extra []ConfigOption) error {
	// Outputs are opened by the factory so a rejected Configure touches
	// nothing on disk.
	var outputErr error
	factory := func() Sink {
		console, err := s.consoleOptions(base)
		outputErr = err
		return NewConsoleSink(console)
	}
	cfgOpts := append(s.configOptions(), extra...)
	if err := r.Configure(factory, cfgOpts...); err != nil {
		return err
	}
	if level, ok := ParseLevel(s.Level); ok && level.Valid() {
		r.SetLogLevel(level)
	}
	if len(s.Levels) > 0 {
		r.SetLogLevels(ParseLevels(strings.Join(s.Levels, ","))...)
	}
	if len(s.Ignore) > 0 {
		r.SetIgnore(strings.Join(s.Ignore, ","))
	}
	if outputErr != nil {
		r.root.Fork(SubContext{
			Namespace: "nslog",
			Extra:     Extra{"output": strings.TrimSpace(s.Output)},
		}).Error("logger output open failed:", outputErr)
	}
	return nil
}

// ConfigureFromSettings configures the Default runtime from s.
func ConfigureFromSettings(s Settings, opts ...ConfigOption) error {
	return Default().ConfigureFromSettings(s, opts...)
}

func writerFromOutput(value string, base io.Writer) (io.Writer, error) {
	trimmed := strings.TrimSpace(value)
	lowered := strings.ToLower(trimmed)
	switch lowered {
	case "", "default":
		return base, nil
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	for _, tee := range []struct {
		prefix string
		w      io.Writer
	}{{"stdout+", os.Stdout}, {"stderr+", os.Stderr}} {
		if !strings.HasPrefix(lowered, tee.prefix) {
			continue
		}
		path := strings.TrimSpace(trimmed[len(tee.prefix):])
		if path == "" {
			return tee.w, nil
		}
		file, err := openOutputFile(path)
		if err != nil {
			return base, err
		}
		return io.MultiWriter(tee.w, file), nil
	}
	file, err := openOutputFile(trimmed)
	if err != nil {
		return base, err
	}
	return file, nil
}

func openOutputFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log output %q: %w", path, err)
	}
	return file, nil
}
