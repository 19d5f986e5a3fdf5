// Command linkedlist runs the list operations from the command line.
//
// Usage:
//
//	linkedlist demo
//	linkedlist sort 3 1 2
//	linkedlist quicksort --config config.yaml
package main

import (
	"context"
	"os"

	"github.com/Invicton-Labs/go-linkedlist/config"
	"github.com/Invicton-Labs/go-linkedlist/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Error(err)
		_ = log.Default().Sync()
		os.Exit(1)
	}
}

// app carries what the persistent pre-run loads to the sub-commands.
type app struct {
	configPath string
	logLevel   string
	dev        bool

	cfg *config.Config
	// values are the list arguments of a command that parses its own flags.
	values []string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "linkedlist",
		Short:         "Build a linked list and rearrange it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (.yaml, .yml or .json)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.dev, "dev", false, "human-readable development logging")

	root.AddCommand(
		a.demoCmd(),
		a.sortCmd(),
		a.shuffleCmd(),
		a.reverseCmd(),
		a.quickSortCmd(),
		a.removeCmd(),
		a.repeatCmd(),
	)
	return root
}

// setup loads the configuration, applies flag overrides and installs the
// default logger on the command's context. Commands with flag parsing
// disabled have their flags parsed here.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.DisableFlagParsing {
		values, err := parseOwnFlags(cmd, args)
		if err != nil {
			return err
		}
		a.values = values
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("dev") {
		cfg.Log.Development = a.dev
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	input, err := cfg.ToLogInput("linkedlist")
	if err != nil {
		return err
	}
	if err := log.InitDefault(input); err != nil {
		return err
	}
	if err := log.SweetenDefaultLogger(map[string]any{"run_id": uuid.New().String()}); err != nil {
		return err
	}

	a.cfg = cfg
	cmd.SetContext(log.LogContext(cmd.Context(), log.Default().With("command", cmd.Name())))
	return nil
}
