package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
cargo-readme renders a Rust crate's crate-level documentation (the //! comments in
src/lib.rs or src/main.rs) as a README, so the README and the crate docs never drift apart.

  • Doc tests become ` + "```rust" + ` blocks and hidden lines ("# ...") are dropped
  • Headings gain one level so "# crate-name" can lead the document
  • A README.tpl template can wrap the output using {{crate}}, {{license}} and {{readme}}
  • Settings can also come from CARGO_README_* variables or .cargo-readme.toml

Run it as "cargo readme" once installed on your PATH, or call cargo-readme directly.
`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := newCLIApp(stdout, stderr)
	cmd := &cobra.Command{
		Use:           "cargo-readme [flags]",
		Short:         "Generate README.md from doc comments",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringP(keyInput, "i", "", "file to read from (default src/lib.rs, src/main.rs, or the manifest's lib/bin path)")
	flags.StringP(keyOutput, "o", "", "file to write to (default stdout)")
	flags.StringP(keyTemplate, "t", "", "template used to render the output (default "+defaultTemplate+" when present)")
	flags.Bool(keyNoTitle, false, "do not prepend the '# crate-name' title; a template containing {{crate}} takes precedence")
	flags.Bool(keyAppendLicense, false, "append a license line; a template containing {{license}} takes precedence")
	flags.Bool(keyNoTemplate, false, "ignore the template file, including the default "+defaultTemplate)
	flags.Bool(keyNoIndentHeadings, false, "do not add an extra level to headings ('#' stays '#')")
	flags.StringP(keyProjectDir, "C", ".", "directory to start searching for Cargo.toml")
	flags.Bool(keyPreview, false, "render the README for the terminal instead of printing Markdown")
	flags.Int(keyWidth, defaultPreviewWidth, "word wrap width used by --preview")
	flags.Bool(keyWatch, false, "regenerate whenever the source, template or manifest changes")
	flags.BoolP(keyVerbose, "v", false, "log progress to stderr")
	cmd.MarkFlagsMutuallyExclusive(keyTemplate, keyNoTemplate)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := app.config.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		return app.execute(ctx)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

// completionGenerators maps each supported shell to its cobra generator.
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion <bash|zsh|fish|powershell>",
		Short: "Print a shell completion script",
		Long: strings.TrimSpace(`
Print a completion script for cargo-readme's flags.

Completion is registered for the cargo-readme binary; cargo's own completion
handles "cargo readme". Load it once per session or install it, e.g.:

  source <(cargo-readme completion bash)
  cargo-readme completion zsh > "${fpath[1]}/_cargo-readme"
  cargo-readme completion fish > ~/.config/fish/completions/cargo-readme.fish
`),
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		gen, ok := completionGenerators[args[0]]
		if !ok {
			return fmt.Errorf("unsupported shell %q", args[0])
		}
		return gen(root, cmd.OutOrStdout())
	}
	return cmd
}

// defaultDocsDir is where gen-docs writes when no directory is given.
const defaultDocsDir = "docs/cli"

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Write the cargo-readme flag reference as Markdown",
		Long: strings.TrimSpace(`
Write one Markdown page per command, listing the flags documented by
"cargo-readme --help". The directory defaults to ` + defaultDocsDir + ` and is created
if needed. Pages are plain Markdown so they can sit next to a README
generated by cargo-readme itself.
`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := defaultDocsDir
		if len(args) == 1 && args[0] != "" {
			target = args[0]
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("create docs directory: %w", err)
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
