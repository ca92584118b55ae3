// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rollinbe/CodeScribe-CLI/internal/config"
	"github.com/rollinbe/CodeScribe-CLI/internal/utils"
)

const (
	outputFlagName       = "output"
	maxSizeFlagName      = "max-size"
	includeExtFlagName   = "include-ext"
	excludeExtFlagName   = "exclude-ext"
	excludeSpecFlagName  = "ignore-spec"
	minimalFlagName      = "minimal"
	gitIgnoreFlagName    = "git-ignore"
	textOnlyFlagName     = "txt"
	exportTextFlagName   = "export-txt"
	noLogoFlagName       = "no-logo"
	tokensFlagName       = "tokens"
	modelFlagName        = "model"
	clipboardFlagName    = "copy"
	versionFlagName      = "version"
	initGlobalFlagName   = "global"
	initForceFlagName    = "force"
	versionTemplate      = "codescribe version: %s\n"
	rootUse              = "codescribe"
	rootShortDescription = "codescribe command line interface"
	rootLongDescription  = `codescribe exports the structure and content of a project as one document.
It scans a directory tree, filters files by extension and exclusion rules, and
assembles a Markdown or plain-text report with a directory tree view, a
clickable table of contents, and every selected file's content.`
	versionFlagDescription = "display application version"

	scanUse              = "scan <source>"
	scanAlias            = "s"
	scanShortDescription = "scan a project and write the report (" + scanAlias + ")"
	scanLongDescription  = `Scan the source directory and write the aggregated report.
Use --minimal to drop conventionally non-essential files, --git-ignore to apply
the project's .gitignore patterns, and --max-size to cap the bytes read per file.`
	scanUsageExample = `  # Export a project as Markdown with default settings
  codescribe scan ./my-project

  # Minimal text-only export capped at 50 KB per file
  codescribe scan --minimal --txt --max-size 50 ./my-project`

	extensionsUse              = "extensions"
	extensionsAlias            = "ext"
	extensionsShortDescription = "print the default included extensions (" + extensionsAlias + ")"

	initUse              = "init"
	initShortDescription = "write the default configuration file"
	initLongDescription  = `Write the default codescribe configuration.
By default the file is created in the working directory; use --global to write
it into the user configuration directory instead.`

	outputFlagDescription      = "output file name (defaults by format)"
	maxSizeFlagDescription     = "maximum size in KB read per file"
	includeExtFlagDescription  = "additional extensions to include"
	excludeExtFlagDescription  = "extensions to exclude"
	excludeSpecFlagDescription = "exclude .spec.ts test specification files"
	minimalFlagDescription     = "exclude conventionally non-essential files"
	gitIgnoreFlagDescription   = "exclude files matching the project .gitignore"
	textOnlyFlagDescription    = "write a plain-text report instead of Markdown"
	exportTextFlagDescription  = "write a plain-text report in addition to Markdown"
	noLogoFlagDescription      = "suppress the ASCII banner in the report"
	tokensFlagDescription      = "count report tokens with a model encoding"
	modelFlagDescription       = "tokenizer model used for token counting"
	clipboardFlagDescription   = "copy the report to the system clipboard"
	initGlobalFlagDescription  = "write the configuration into the user configuration directory"
	initForceFlagDescription   = "overwrite an existing configuration file"

	defaultTokenizerModelName    = "gpt-4o"
	configurationWrittenFormat   = "Configuration written to %s\n"
	workingDirectoryErrorFormat  = "unable to determine working directory: %w"
	configurationLoadErrorFormat = "loading configuration: %w"
)

// Execute runs the codescribe application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(
		createScanCommand(),
		createExtensionsCommand(),
		createInitCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// scanFlagValues stores the raw flag values of the scan command.
type scanFlagValues struct {
	outputPath        string
	maxFileSizeKB     int
	includeExtensions []string
	excludeExtensions []string
	excludeSpecFiles  bool
	minimalMode       bool
	useGitignore      bool
	textOnly          bool
	exportText        bool
	noLogo            bool
	tokensEnabled     bool
	tokenizerModel    string
	copyToClipboard   bool
}

// createScanCommand returns the scan subcommand.
func createScanCommand() *cobra.Command {
	var flagValues scanFlagValues

	scanCommand := &cobra.Command{
		Use:     scanUse,
		Aliases: []string{scanAlias},
		Short:   scanShortDescription,
		Long:    scanLongDescription,
		Example: scanUsageExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			settings, settingsError := resolveScanSettings(command, arguments[0], flagValues)
			if settingsError != nil {
				return settingsError
			}
			return executeScan(settings)
		},
	}

	scanCommand.Flags().StringVar(&flagValues.outputPath, outputFlagName, "", outputFlagDescription)
	scanCommand.Flags().IntVar(&flagValues.maxFileSizeKB, maxSizeFlagName, 0, maxSizeFlagDescription)
	scanCommand.Flags().StringArrayVar(&flagValues.includeExtensions, includeExtFlagName, nil, includeExtFlagDescription)
	scanCommand.Flags().StringArrayVar(&flagValues.excludeExtensions, excludeExtFlagName, nil, excludeExtFlagDescription)
	scanCommand.Flags().BoolVar(&flagValues.excludeSpecFiles, excludeSpecFlagName, false, excludeSpecFlagDescription)
	scanCommand.Flags().BoolVar(&flagValues.minimalMode, minimalFlagName, false, minimalFlagDescription)
	scanCommand.Flags().BoolVar(&flagValues.useGitignore, gitIgnoreFlagName, false, gitIgnoreFlagDescription)
	scanCommand.Flags().BoolVar(&flagValues.textOnly, textOnlyFlagName, false, textOnlyFlagDescription)
	scanCommand.Flags().BoolVar(&flagValues.exportText, exportTextFlagName, false, exportTextFlagDescription)
	scanCommand.Flags().BoolVar(&flagValues.noLogo, noLogoFlagName, false, noLogoFlagDescription)
	scanCommand.Flags().BoolVar(&flagValues.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	scanCommand.Flags().StringVar(&flagValues.tokenizerModel, modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	scanCommand.Flags().BoolVar(&flagValues.copyToClipboard, clipboardFlagName, false, clipboardFlagDescription)
	return scanCommand
}

// createExtensionsCommand returns the extensions subcommand.
func createExtensionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     extensionsUse,
		Aliases: []string{extensionsAlias},
		Short:   extensionsShortDescription,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			fmt.Println(strings.Join(config.SortedDefaultExtensions(), " "))
			return nil
		},
	}
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var writeGlobal bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			destinationPath, initializationError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initializationError != nil {
				return initializationError
			}
			fmt.Printf(configurationWrittenFormat, destinationPath)
			return nil
		},
	}

	initCommand.Flags().BoolVar(&writeGlobal, initGlobalFlagName, false, initGlobalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, initForceFlagName, false, initForceFlagDescription)
	return initCommand
}

// resolveScanSettings merges configuration file defaults with explicit flags.
// A flag the user set always wins over a configuration file value.
func resolveScanSettings(command *cobra.Command, sourcePath string, flagValues scanFlagValues) (scanSettings, error) {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return scanSettings{}, fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
	})
	if configurationError != nil {
		return scanSettings{}, fmt.Errorf(configurationLoadErrorFormat, configurationError)
	}
	scanConfiguration := applicationConfiguration.Scan

	settings := scanSettings{
		sourcePath:        sourcePath,
		outputPath:        scanConfiguration.Output,
		maxFileSizeKB:     0,
		includeExtensions: scanConfiguration.IncludeExtensions,
		excludeExtensions: scanConfiguration.ExcludeExtensions,
		excludeSpecFiles:  boolOrFalse(scanConfiguration.ExcludeSpecFiles),
		minimalMode:       boolOrFalse(scanConfiguration.Minimal),
		useGitignore:      boolOrFalse(scanConfiguration.UseGitignore),
		textOnly:          boolOrFalse(scanConfiguration.TextOnly),
		exportText:        boolOrFalse(scanConfiguration.ExportText),
		withBanner:        boolOrTrue(scanConfiguration.Banner),
		tokensEnabled:     boolOrFalse(scanConfiguration.Tokens.Enabled),
		tokenizerModel:    defaultTokenizerModelName,
		copyToClipboard:   boolOrFalse(scanConfiguration.Clipboard),
	}
	if scanConfiguration.MaxFileSizeKB != nil {
		settings.maxFileSizeKB = *scanConfiguration.MaxFileSizeKB
	}
	if scanConfiguration.Tokens.Model != "" {
		settings.tokenizerModel = scanConfiguration.Tokens.Model
	}

	commandFlags := command.Flags()
	if commandFlags.Changed(outputFlagName) {
		settings.outputPath = flagValues.outputPath
	}
	if commandFlags.Changed(maxSizeFlagName) {
		settings.maxFileSizeKB = flagValues.maxFileSizeKB
	}
	if commandFlags.Changed(includeExtFlagName) {
		settings.includeExtensions = flagValues.includeExtensions
	}
	if commandFlags.Changed(excludeExtFlagName) {
		settings.excludeExtensions = flagValues.excludeExtensions
	}
	if commandFlags.Changed(excludeSpecFlagName) {
		settings.excludeSpecFiles = flagValues.excludeSpecFiles
	}
	if commandFlags.Changed(minimalFlagName) {
		settings.minimalMode = flagValues.minimalMode
	}
	if commandFlags.Changed(gitIgnoreFlagName) {
		settings.useGitignore = flagValues.useGitignore
	}
	if commandFlags.Changed(textOnlyFlagName) {
		settings.textOnly = flagValues.textOnly
	}
	if commandFlags.Changed(exportTextFlagName) {
		settings.exportText = flagValues.exportText
	}
	if commandFlags.Changed(noLogoFlagName) {
		settings.withBanner = !flagValues.noLogo
	}
	if commandFlags.Changed(tokensFlagName) {
		settings.tokensEnabled = flagValues.tokensEnabled
	}
	if commandFlags.Changed(modelFlagName) {
		settings.tokenizerModel = flagValues.tokenizerModel
	}
	if commandFlags.Changed(clipboardFlagName) {
		settings.copyToClipboard = flagValues.copyToClipboard
	}

	return settings, nil
}

func boolOrFalse(value *bool) bool {
	return value != nil && *value
}

func boolOrTrue(value *bool) bool {
	return value == nil || *value
}
