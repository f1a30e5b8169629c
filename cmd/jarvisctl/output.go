package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// render writes v in the chosen format. text falls back to the text func.
func render(w io.Writer, format string, v any, text func(io.Writer)) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}

func printCommand(w io.Writer, r commandResp) {
	fmt.Fprintln(w, r.Message)
	if r.RequiresConfirmation {
		fmt.Fprintf(w, "\nPending %s", r.PendingID)
		if r.Confidence != nil {
			fmt.Fprintf(w, " (confidence %.2f)", *r.Confidence)
		}
		fmt.Fprintln(w, ". Run `jarvisctl confirm` or `jarvisctl cancel`.")
	}
}

func printPending(w io.Writer, p pendingResp) {
	fmt.Fprintf(w, "ID:          %s\n", p.ID)
	fmt.Fprintf(w, "Command:     %s\n", p.OriginalCommand)
	fmt.Fprintf(w, "Confidence:  %.2f\n", p.Confidence)
	fmt.Fprintf(w, "Generated:   %t\n", p.IsGenerated)
	if p.Explanation != "" {
		fmt.Fprintf(w, "Explanation: %s\n", p.Explanation)
	}
	fmt.Fprintf(w, "Created:     %s\n", p.CreatedAt)
	fmt.Fprintln(w, "Actions:")
	for _, a := range p.Actions {
		fmt.Fprintf(w, "  %s\n", a)
	}
}

func printStats(w io.Writer, s statsResp) {
	fmt.Fprintf(w, "%-16s %d\n", "Commands:", s.TotalCommands)
	fmt.Fprintf(w, "%-16s %d\n", "History:", s.TotalHistory)
	fmt.Fprintf(w, "%-16s %d\n", "Intent patterns:", s.IntentPatterns)
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
