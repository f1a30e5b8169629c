package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

type options struct {
	server  string
	output  string
	timeout time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jarvisctl:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "jarvisctl",
		Short:         "Talk to a running JARVIS assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case outputText, outputJSON, outputYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", opts.output)
			}
		},
	}

	server := os.Getenv("JARVIS_SERVER")
	if server == "" {
		server = defaultServer
	}

	root.PersistentFlags().StringVar(&opts.server, "server", server, "assistant base URL")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format: text, json or yaml")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 60*time.Second, "request timeout")

	root.AddCommand(
		newSayCmd(opts),
		newConfirmCmd(opts),
		newCancelCmd(opts),
		newPendingCmd(opts),
		newStatsCmd(opts),
	)
	return root
}
