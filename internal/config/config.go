package config

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	DefaultOutputFile = "notifications.yaml"
)

// DefaultLanguages lists the language directories in processing order.
var DefaultLanguages = []string{"en", "ko"}

// Config holds the pipeline configuration
type Config struct {
	BaseDir    string   // Directory holding the language directories and the output file
	Languages  []string // Language directory names, processed in order
	OutputFile string   // Output filename, relative to BaseDir
}

// New builds a Config from explicit values. Empty languages or output file fall
// back to the defaults.
func New(baseDir string, languages []string, outputFile string) (*Config, error) {
	if baseDir == "" {
		return nil, errors.New("config: base directory is required")
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	if outputFile == "" {
		outputFile = DefaultOutputFile
	}

	langs := make([]string, len(languages))
	copy(langs, languages)

	return &Config{
		BaseDir:    absBase,
		Languages:  langs,
		OutputFile: outputFile,
	}, nil
}

// Default returns the configuration rooted at the directory of the running
// executable.
func Default() (*Config, error) {
	baseDir, err := ExecutableDir()
	if err != nil {
		return nil, err
	}
	return New(baseDir, DefaultLanguages, DefaultOutputFile)
}

// ExecutableDir returns the directory containing the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// LanguageDirs returns the absolute paths of the language directories in
// processing order
func (c *Config) LanguageDirs() []string {
	dirs := make([]string, len(c.Languages))
	for i, lang := range c.Languages {
		dirs[i] = filepath.Join(c.BaseDir, lang)
	}
	return dirs
}

// OutputPath returns the absolute path of the output document
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.OutputFile) {
		return c.OutputFile
	}
	return filepath.Join(c.BaseDir, c.OutputFile)
}
