package cli

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/terminal"
	"github.com/deomiarn/securevault/internal/utils/flags"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// set of global CLI flags
const (
	flagOutputTarget      = "output-target"
	flagOutputTargetShort = "o"
	flagOutputTargetUsage = "Write CLI output to the specified filepath"

	flagOutputFormat      = "output-format"
	flagOutputFormatShort = "f"
	flagOutputFormatUsage = "Set the CLI output format, available options: [text, json, yaml]"

	flagDisableColors      = "disable-colors"
	flagDisableColorsUsage = "Disable all CLI output styling (e.g. colors, font styles, etc.)"

	flagAutoConfirm      = "yes"
	flagAutoConfirmShort = "y"
	flagAutoConfirmUsage = "Automatically proceed through CLI commands by agreeing to any required user prompts"

	flagDebug      = "debug"
	flagDebugUsage = "Trace the CLI's HTTP requests and session refreshes to stderr"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile   *Profile
	ui        terminal.UI
	uiConfig  terminal.UIConfig
	inReader  *os.File
	outWriter *os.File
	errWriter *os.File
	errLogger *log.Logger
	logger    *zap.SugaredLogger
	debug     bool
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() *CommandFactory {
	errLogger := log.New(os.Stderr, "UTC ERROR ", log.Ltime|log.Lmsgprefix)

	profile, profileErr := NewDefaultProfile()
	if profileErr != nil {
		errLogger.Fatal(profileErr)
	}

	return &CommandFactory{
		profile:   profile,
		errLogger: errLogger,
	}
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command != nil {
		if command, ok := command.Command.(CommandFlags); ok {
			fs := cmd.Flags()
			fs.SortFlags = false // ensures command flags are added unsorted
			command.Flags(fs)
		}

		cmd.PersistentPreRun = func(c *cobra.Command, a []string) {
			factory.ensureUI()
			c.SetIn(factory.inReader)
			c.SetOut(factory.outWriter)
			c.SetErr(factory.errWriter)

			if err := factory.profile.resolveFlags(); err != nil {
				factory.ui.Print(terminal.NewErrorLog(err))
				os.Exit(1)
			}
		}

		if command, ok := command.Command.(CommandInputs); ok {
			cmd.PreRunE = func(c *cobra.Command, a []string) error {
				if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
					return fmt.Errorf("%s setup failed: %w", display, err)
				}
				return nil
			}
		}

		cmd.RunE = func(c *cobra.Command, a []string) error {
			factory.logger.Debugw("running command", "command", display, "profile", factory.profile.Name)

			if err := command.Command.Handler(factory.profile, factory.ui, factory.clients()); err != nil {
				var loginErr vault.ErrLoginRequired
				if errors.As(err, &loginErr) {
					err = ErrLoginRequired{Cause: err}
				}
				return fmt.Errorf("%s failed: %w", display, errDisableUsage{err})
			}
			return nil
		}
	}

	return &cmd
}

func (factory *CommandFactory) clients() Clients {
	return Clients{
		Vault: vault.NewAuthClient(
			factory.profile.BaseURL(),
			factory.profile,
			vault.WithLogger(factory.logger),
			vault.WithRefreshTimeout(factory.profile.RefreshTimeout()),
			vault.WithLoginRequiredHandler(func() {
				factory.ui.Print(terminal.NewWarningLog("Your session has expired, the stored credentials were cleared"))
			}),
		),
	}
}

// Close closes the command factory
func (factory *CommandFactory) Close() {
	if factory.logger != nil {
		_ = factory.logger.Sync()
	}

	if factory.uiConfig.OutputTarget != "" && factory.outWriter != nil {
		factory.outWriter.Close()
	}
}

// Run executes the command
func (factory *CommandFactory) Run(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		handleUsage(cmd, err)

		if factory.ui == nil {
			factory.errLogger.Fatal(err)
		}

		logs := []terminal.Log{terminal.NewErrorLog(err)}
		if suggestions := suggestedCommands(err); len(suggestions) > 0 {
			logs = append(logs, terminal.NewFollowupLog(terminal.MsgSuggestedCommands, suggestions...))
		}

		factory.ui.Print(logs...)
		factory.Close()
		os.Exit(1)
	}
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, flagProfile, DefaultProfile, flagProfileUsage)

	// ui flags
	fs.StringVarP(&factory.uiConfig.OutputTarget, flagOutputTarget, flagOutputTargetShort, "", flagOutputTargetUsage)
	fs.VarP(&factory.uiConfig.OutputFormat, flagOutputFormat, flagOutputFormatShort, flagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, flagDisableColors, false, flagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, flagAutoConfirm, flagAutoConfirmShort, false, flagAutoConfirmUsage)
	fs.BoolVar(&factory.debug, flagDebug, false, flagDebugUsage)

	// hidden flags
	fs.StringVar(&factory.profile.baseURL, flagBaseURL, "", flagBaseURLUsage)
	flags.MarkHidden(fs, flagBaseURL)

	fs.DurationVar(&factory.profile.refreshTimeout, flagRefreshTimeout, 0, flagRefreshTimeoutUsage)
	flags.MarkHidden(fs, flagRefreshTimeout)
}

// Setup initializes the command factory
func (factory *CommandFactory) Setup() {
	if err := factory.profile.Load(); err != nil {
		factory.errLogger.Fatal(err)
	}

	if filepath := factory.uiConfig.OutputTarget; filepath != "" {
		f, err := os.OpenFile(filepath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0660)
		if err != nil {
			factory.errLogger.Fatal(fmt.Errorf("failed to open target file: %w", err))
		}
		factory.outWriter = f
	}

	factory.logger = newLogger(factory.debug, os.Stderr)
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		if factory.uiConfig.OutputTarget != "" {
			factory.errWriter = factory.outWriter
		} else {
			factory.errWriter = os.Stderr
		}
	}

	if factory.logger == nil {
		factory.logger = newLogger(factory.debug, factory.errWriter)
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}

// newLogger builds the HTTP trace logger: a console encoder at debug level
// when enabled, and a no-op logger otherwise
func newLogger(debug bool, w zapcore.WriteSyncer) *zap.SugaredLogger {
	if !debug {
		return zap.NewNop().Sugar()
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(w),
		zap.DebugLevel,
	)
	return zap.New(core).Sugar()
}

func handleUsage(cmd *cobra.Command, err error) {
	var disableUsage DisableUsage
	if errors.As(err, &disableUsage) {
		return
	}
	fmt.Println(cmd.UsageString())
}
