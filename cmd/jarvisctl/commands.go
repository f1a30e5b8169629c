package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
)

func newSayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "say <text...>",
		Aliases: []string{"ask"},
		Short:   "Send a command to the assistant",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := joinArgs(args)
			if text == "" {
				return errors.New("text is required")
			}
			r, err := newClient(opts).say(cmd.Context(), text)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, r, func(w io.Writer) { printCommand(w, r) })
		},
	}
}

func newConfirmCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm",
		Short: "Run the command waiting for confirmation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newClient(opts).confirm(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, r, func(w io.Writer) { printCommand(w, r) })
		},
	}
}

func newCancelCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Discard the command waiting for confirmation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newClient(opts).cancel(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, r, func(w io.Writer) { printCommand(w, r) })
		},
	}
}

func newPendingCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "Show the command waiting for confirmation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newClient(opts).pending(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, p, func(w io.Writer) { printPending(w, p) })
		},
	}
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show knowledge store statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newClient(opts).stats(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, s, func(w io.Writer) { printStats(w, s) })
		},
	}
}
