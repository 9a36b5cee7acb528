package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashmap-kz/treefy/internal/config"
	"github.com/hashmap-kz/treefy/pkg/treefy"
)

const ttyPath = "/dev/tty"

type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

type TreefyOptions struct {
	IOStreams

	// User input
	configPath     string
	mode           string
	join           string
	autoExpand     bool
	expandAllToken string
	quitToken      string
	logFile        string
	logLevel       string
	dump           bool

	// After completion
	cfg       *config.Config
	seqs      [][]string
	fromStdin bool
	closers   []io.Closer
}

func NewTreefyOptions(streams IOStreams) *TreefyOptions {
	return &TreefyOptions{
		IOStreams: streams,
	}
}

func NewCmdTreefy() *cobra.Command {
	return NewCmdTreefyWithStreams(IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	})
}

func NewCmdTreefyWithStreams(streams IOStreams) *cobra.Command {
	o := NewTreefyOptions(streams)
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "treefy [FILE...]",
		Short: "Explore a list of paths as a foldable tree.",
		Example: `
find . -type f | treefy
git ls-files | treefy --mode tui
treefy --dump --join recursive paths.txt
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer o.Close()
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			return o.Run()
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&o.mode, "mode", defaults.Mode, "Interaction mode: prompt or tui")
	flags.StringVar(&o.join, "join", defaults.Join, "Shared path joining: none, shallow or recursive")
	flags.BoolVar(&o.autoExpand, "auto-expand", defaults.AutoExpand, "Open single-child chains on start")
	flags.StringVar(&o.expandAllToken, "expand-all-token", defaults.ExpandAllToken, "Selection that expands the whole tree")
	flags.StringVar(&o.quitToken, "quit-token", defaults.QuitToken, "Selection that ends the session")
	flags.StringVar(&o.logFile, "log-file", defaults.LogFile, "Write debug log to this file")
	flags.StringVar(&o.logLevel, "log-level", defaults.LogLevel, "Log level: debug, info, warn or error")
	flags.BoolVar(&o.dump, "dump", false, "Print the prepared tree and exit")
	return cmd
}

func (o *TreefyOptions) Complete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	o.cfg = cfg

	if err := o.initLogger(); err != nil {
		return err
	}

	o.seqs, err = o.readSequences(args)
	if err != nil {
		return err
	}
	slog.Info("paths loaded", slog.Int("count", len(o.seqs)), slog.Bool("stdin", o.fromStdin))
	return nil
}

// applyFlags lets explicitly set flags win over file and environment.
func (o *TreefyOptions) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("mode") {
		cfg.Mode = o.mode
	}
	if changed("join") {
		cfg.Join = o.join
	}
	if changed("auto-expand") {
		cfg.AutoExpand = o.autoExpand
	}
	if changed("expand-all-token") {
		cfg.ExpandAllToken = o.expandAllToken
	}
	if changed("quit-token") {
		cfg.QuitToken = o.quitToken
	}
	if changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
}

func (o *TreefyOptions) initLogger() error {
	level, err := treefy.ParseLevel(o.cfg.LogLevel)
	if err != nil {
		return err
	}
	var w io.Writer = io.Discard
	if o.cfg.LogFile != "" {
		file, err := os.OpenFile(o.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		o.closers = append(o.closers, file)
		w = file
	}
	slog.SetDefault(treefy.InitLogger(w, level))
	return nil
}

func (o *TreefyOptions) readSequences(args []string) ([][]string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		o.fromStdin = true
		return treefy.ReadSequences(o.In)
	}
	var seqs [][]string
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("cannot open input: %w", err)
		}
		s, err := treefy.ReadSequences(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		seqs = append(seqs, s...)
	}
	return seqs, nil
}

func (o *TreefyOptions) Run() error {
	joinMode, err := treefy.ParseJoinMode(o.cfg.Join)
	if err != nil {
		return err
	}
	root := treefy.Prepare(o.seqs, treefy.BuildOptions{
		Join:       joinMode,
		AutoExpand: o.cfg.AutoExpand,
	})

	if o.dump {
		return treefy.Dump(o.Out, root)
	}

	if o.cfg.Mode == config.ModeTUI {
		return treefy.NewUI(root, treefy.UIOptions{
			ExpandAllKey: []rune(o.cfg.ExpandAllToken)[0],
			QuitKey:      []rune(o.cfg.QuitToken)[0],
		}).Run()
	}

	in, err := o.selectionInput()
	if err != nil {
		return err
	}
	return treefy.NewPrompt(root, in, o.Out, treefy.PromptOptions{
		ExpandAllToken: o.cfg.ExpandAllToken,
		QuitToken:      o.cfg.QuitToken,
	}).Run()
}

// selectionInput returns where selections come from. Stdin already carried
// the paths in that case, so the terminal is opened instead.
func (o *TreefyOptions) selectionInput() (io.Reader, error) {
	if !o.fromStdin {
		return o.In, nil
	}
	tty, err := os.Open(ttyPath)
	if err != nil {
		return nil, fmt.Errorf("paths were read from stdin and %s is unavailable for selections: %w", ttyPath, err)
	}
	o.closers = append(o.closers, tty)
	return tty, nil
}

func (o *TreefyOptions) Close() error {
	var errs []error
	for _, c := range o.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	o.closers = nil
	return errors.Join(errs...)
}
