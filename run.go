package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/agentflare-ai/go-cargo-readme/internal/manifest"
	"github.com/agentflare-ai/go-cargo-readme/internal/readme"
)

// defaultTemplate is looked up in the project root unless a template is given.
const defaultTemplate = "README.tpl"

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	config *config
	logger *log.Logger
}

// generation describes one README build and the files it depended on.
type generation struct {
	sourcePath   string
	templatePath string
	outputPath   string
}

// watched lists the files whose changes invalidate the generated README.
func (g generation) watched(root string) []string {
	paths := []string{filepath.Join(root, manifest.FileName), filepath.Join(root, configFileName)}
	for _, p := range []string{g.sourcePath, g.templatePath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func newCLIApp(stdout, stderr io.Writer) *cliApp {
	return &cliApp{
		stdout: stdout,
		stderr: stderr,
		config: newConfig(),
		logger: log.NewWithOptions(stderr, log.Options{
			Prefix: "cargo-readme",
			Level:  log.WarnLevel,
		}),
	}
}

func run(argv []string, stdout io.Writer) error {
	return runContext(context.Background(), argv, stdout, os.Stderr)
}

func runContext(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(normalizeCargoArgs(argv))
	return cmd.ExecuteContext(ctx)
}

// normalizeCargoArgs drops the subcommand name cargo passes along when the
// binary is invoked as `cargo readme`.
func normalizeCargoArgs(args []string) []string {
	if len(args) > 0 && args[0] == "readme" {
		return args[1:]
	}
	return args
}

func (app *cliApp) execute(ctx context.Context) error {
	root, err := manifest.FindRoot(app.config.GetString(keyProjectDir))
	if err != nil {
		return err
	}
	if err := app.config.loadFile(root); err != nil {
		return err
	}
	opts := app.config.options()
	if opts.verbose {
		app.logger.SetLevel(log.DebugLevel)
	}
	app.logger.Debug("project root", "root", root, "config", app.config.ConfigFileUsed())
	if opts.template != "" && opts.noTemplate {
		app.logger.Warn("ignoring template", "template", opts.template, "reason", "no-template is set")
	}
	if opts.preview && opts.output != "" && opts.output != "-" {
		app.logger.Warn("ignoring preview", "output", opts.output, "reason", "preview only renders to stdout")
	}

	if !opts.watch {
		_, err := app.generate(root, opts)
		return err
	}
	return app.watch(ctx, root, func() []string {
		gen, err := app.generate(root, opts)
		if err != nil {
			app.logger.Error("generate README", "err", err)
		}
		return gen.watched(root)
	})
}

// generate builds the README once and writes it to the configured output.
func (app *cliApp) generate(root string, opts options) (generation, error) {
	var gen generation
	meta, err := manifest.Load(root)
	if err != nil {
		return gen, err
	}
	app.logger.Debug("package metadata", "name", meta.Name, "license", meta.License)

	gen.sourcePath, err = resolveSource(root, opts.input, meta)
	if err != nil {
		return gen, err
	}
	source, err := os.Open(gen.sourcePath)
	if err != nil {
		return gen, fmt.Errorf("could not open file %q: %w", gen.sourcePath, err)
	}
	defer source.Close()
	app.logger.Debug("reading documentation", "input", gen.sourcePath)

	var tmpl *readme.Template
	tmpl, gen.templatePath, err = loadTemplate(root, opts)
	if err != nil {
		return gen, err
	}
	if tmpl != nil {
		app.logger.Debug("using template", "template", gen.templatePath)
	}

	doc, err := readme.Generate(source, tmpl, meta, readme.Options{
		AddTitle:       !opts.noTitle,
		AddLicense:     opts.appendLicense,
		IndentHeadings: !opts.noIndentHeadings,
	})
	if err != nil {
		return gen, err
	}

	if opts.output != "" && opts.output != "-" {
		gen.outputPath = resolvePath(root, opts.output)
	}
	if gen.outputPath == "" && opts.preview {
		rendered, err := renderPreview(doc, opts.width)
		if err != nil {
			return gen, err
		}
		_, err = io.WriteString(app.stdout, rendered)
		return gen, err
	}
	if err := writeOutput(gen.outputPath, app.stdout, []byte(doc+"\n")); err != nil {
		if gen.outputPath == "" {
			return gen, err
		}
		return gen, fmt.Errorf("could not write to file %q: %w", gen.outputPath, err)
	}
	if gen.outputPath != "" {
		app.logger.Info("wrote README", "output", gen.outputPath)
	}
	return gen, nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func resolveSource(root, input string, meta readme.Metadata) (string, error) {
	if input != "" {
		return resolvePath(root, input), nil
	}
	return manifest.Entrypoint(root, meta)
}

// loadTemplate returns a nil template when templates are disabled or the
// default template does not exist. An explicit template must exist.
func loadTemplate(root string, opts options) (*readme.Template, string, error) {
	if opts.noTemplate {
		return nil, "", nil
	}
	explicit := opts.template != ""
	path := filepath.Join(root, defaultTemplate)
	if explicit {
		path = resolvePath(root, opts.template)
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, path, nil
		}
		return nil, path, fmt.Errorf("could not open template file %q: %w", path, err)
	}
	defer f.Close()
	tmpl, err := readme.ReadTemplate(f)
	if err != nil {
		return nil, path, err
	}
	return tmpl, path, nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
