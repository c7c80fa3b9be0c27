package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	flagJSON       bool
	flagConfig     string
	flagDataDir    string
	flagStorage    string
	flagCatalogURL string
	flagLang       string
)

var rootCmd = &cobra.Command{
	Use:   "voicecart",
	Short: "Manage a shopping list with spoken commands",
	Long: "Voice-driven shopping list assistant. Transcripts such as \"add 2 milk\",\n" +
		"\"remove bread\" or \"find headphones under 100 dollars\" are parsed into list\n" +
		"changes and catalog searches.\n\n" +
		"Agent-friendly mode: minor syntax issues are auto-corrected when intent is clear " +
		"(for example: -json, json, --jsno).",
	Example: `  voicecart say "add 3 organic bananas"
  voicecart say "remove bread"
  voicecart search "find laptops under 1500 dollars" --sort price
  voicecart listen --mode search
  voicecart suggest --accept 1
  voicecart catalog serve --addr :8080`,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")
	pf.StringVar(&flagConfig, "config", "", "Config file (default ~/.voicecart/config.yaml)")
	pf.StringVar(&flagDataDir, "data-dir", "", "Directory holding the list, history and search log")
	pf.StringVar(&flagStorage, "storage", "", "Storage backend: json or sqlite")
	pf.StringVar(&flagCatalogURL, "catalog-url", "", "Remote catalog service URL (default: built-in catalog)")
	pf.StringVarP(&flagLang, "lang", "l", "", "Recognition language, e.g. en-US or fr-FR")
}

// Execute runs the root command.
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdout, os.Stderr))
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	resetCLIState()

	normalizedArgs, notes := normalizeCLIArgs(args)
	for _, note := range notes {
		fmt.Fprintf(stderr, "note: %s\n", note)
	}

	if len(normalizedArgs) == 0 {
		if err := printQuickStart(stdout, !isTTY(stdout)); err != nil {
			cliErr := classifyCLIError(err)
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
			return cliErr.ExitCode
		}
		return ExitSuccess
	}

	if shouldAutoJSON(normalizedArgs, isTTY(stdout)) {
		normalizedArgs = append(normalizedArgs, "--json")
	}

	setCommandIO(rootCmd, stdout, stderr)
	rootCmd.SetArgs(normalizedArgs)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if hasJSONPreference(normalizedArgs) {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				fmt.Fprintln(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func setCommandIO(cmd *cobra.Command, stdout, stderr io.Writer) {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdout, stderr)
	}
}

func resetCLIState() {
	flagJSON = false
	flagConfig = ""
	flagDataDir = ""
	flagStorage = ""
	flagCatalogURL = ""
	flagLang = ""
	flagMode = "command"
	flagPlain = false
	flagMinPrice = -1
	flagMaxPrice = -1
	flagSort = ""
	flagCategory = ""
	flagLimit = 0
	flagAccept = 0
	flagAddr = ":8080"
	flagFallback = false
	flagSeed = 0
	resetFlags(rootCmd)
}

// resetFlags restores defaults and clears Changed on every flag, including
// cobra's help flags, so repeated runCLI calls start clean.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}
