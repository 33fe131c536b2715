package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/MarcinKonowalczyk/environ-get/internal/generator"
)

func newGenerateCommand() *cobra.Command {
	var config GenerateConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate environment variable documentation from Go source",
		RunE: func(_ *cobra.Command, _ []string) error {
			return Generate(&config)
		},
	}

	cmd.Flags().StringVar(&config.SourcePath, "source", ".", "Go source file or directory to scan")
	cmd.Flags().StringVar(&config.OutputPath, "output", "-", "Path to output file or '-' for stdout")
	cmd.Flags().StringVar(&config.Accessor, "accessor", "Get", "Accessor function name recognized at call-sites")
	cmd.Flags().BoolVar(&config.Refs, "refs", true, "Emit a reference anchor before each entry")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .envdoc.yml config file")

	return cmd
}

// GenerateConfig holds configuration for documentation generation.
type GenerateConfig struct {
	SourcePath string `validate:"required"`
	OutputPath string `validate:"required"`
	Accessor   string `validate:"required"`
	Refs       bool
	ConfigPath string
}

// Generate runs the documentation generator with the provided configuration.
// Non-fatal generator warnings are logged; fatal conditions abort with no
// output written.
func Generate(config *GenerateConfig) error {
	if err := loadConfigFile(config); err != nil {
		return err
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	doc, warnings, err := generate(config)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn(w.String(), zap.String("key", w.Key))
	}

	return writeOutput(doc, config)
}

// generate scans the configured source and renders the document. A directory
// source is walked; each file is scanned independently and the results are
// merged, so cross-file duplicate keys fail the same way in-file ones do.
func generate(config *GenerateConfig) (string, []generator.Warning, error) {
	fi, err := os.Stat(config.SourcePath)
	if err != nil {
		return "", nil, err
	}

	files := []string{config.SourcePath}
	display := filepath.Base(config.SourcePath)
	if fi.IsDir() {
		if files, err = collectGoFiles(config.SourcePath); err != nil {
			return "", nil, err
		}
		display = config.SourcePath
	}

	scanner := generator.NewScanner(config.Accessor)
	maps := make([]map[string]*generator.EnvCall, 0, len(files))
	for _, path := range files {
		src, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return "", nil, fmt.Errorf("read source: %w", err)
		}
		calls, err := scanner.Scan(path, src)
		if err != nil {
			return "", nil, err
		}
		maps = append(maps, calls)
	}

	merged, err := generator.Merge(maps...)
	if err != nil {
		return "", nil, err
	}

	var warnings []generator.Warning
	opts := generator.Options{Accessor: config.Accessor, Refs: config.Refs, Filename: display}
	doc := generator.Render(generator.Organize(merged), opts, func(w generator.Warning) {
		warnings = append(warnings, w)
	})
	return doc, warnings, nil
}

// collectGoFiles returns the Go files under dir, sorted by path. Vendor,
// testdata and hidden or underscore-prefixed directories are skipped, as are
// test files.
func collectGoFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			name := de.Name()
			if path != dir && (name == "vendor" || name == "testdata" ||
				strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(de.Name(), ".go") && !strings.HasSuffix(de.Name(), "_test.go") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func loadConfigFile(config *GenerateConfig) error {
	if config.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(config.ConfigPath))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Envdoc struct {
			Source   string `yaml:"source"`
			Output   string `yaml:"output"`
			Accessor string `yaml:"accessor"`
		} `yaml:"envdoc"`
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Apply config values if flags weren't set.
	if config.SourcePath == "." && cfg.Envdoc.Source != "" {
		config.SourcePath = cfg.Envdoc.Source
	}
	if config.OutputPath == "-" && cfg.Envdoc.Output != "" {
		config.OutputPath = cfg.Envdoc.Output
	}
	if config.Accessor == "Get" && cfg.Envdoc.Accessor != "" {
		config.Accessor = cfg.Envdoc.Accessor
	}

	return nil
}

func writeOutput(doc string, config *GenerateConfig) error {
	if config.OutputPath == "-" {
		_, err := fmt.Fprintln(os.Stdout, doc)
		return err
	}

	outDir := filepath.Dir(config.OutputPath)
	if fi, err := os.Stat(outDir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory %s does not exist — please create it first", outDir)
		}
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("output path %s is not a directory", outDir)
	}

	f, err := os.Create(config.OutputPath) // #nosec G304
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = fmt.Fprintln(f, doc)
	return err
}
