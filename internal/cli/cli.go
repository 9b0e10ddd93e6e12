// Package cli implements zspecimen's command-line subcommands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zarlcorp/zspecimen/internal/card"
	"github.com/zarlcorp/zspecimen/internal/specimen"
	"github.com/zarlcorp/zspecimen/internal/tui"
)

// Options are the parsed generate flags.
type Options struct {
	Filter   specimen.Filter
	JSON     bool
	Manifest bool
}

// ParseOptions reads --type, --region, --json and --manifest from args.
// Flag values may be given as --flag value or --flag=value.
func ParseOptions(args []string) (Options, error) {
	var o Options
	o.JSON = hasFlag(args, "--json")
	o.Manifest = hasFlag(args, "--manifest")

	if v, ok := flagValue(args, "--type"); ok {
		t, err := specimen.ParseInstitutionType(v)
		if err != nil {
			return o, err
		}
		o.Filter.Type = t
	}

	if v, ok := flagValue(args, "--region"); ok {
		r, found := specimen.CanonicalRegion(v)
		if !found {
			return o, fmt.Errorf("unknown region %q", v)
		}
		o.Filter.Region = r
	}

	return o, nil
}

// CmdGenerate synthesizes one record and writes it to w as a card or JSON.
// With Manifest set, the record is also exported through e.
func CmdGenerate(ctx context.Context, w io.Writer, s tui.Synthesizer, e tui.Exporter, o Options) error {
	rec, err := s.SynthesizeIdentity(ctx, o.Filter)
	if err != nil {
		return err
	}

	if o.JSON {
		if err := printJSON(w, rec); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(w, card.Render(rec))
	}

	if o.Manifest {
		if e == nil {
			return errors.New("manifest export unavailable")
		}
		name, err := e.Export(rec)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "manifest: %s\n", name)
	}

	return nil
}

// CmdRegions prints the accepted region names.
func CmdRegions(w io.Writer) {
	for _, r := range specimen.Regions() {
		fmt.Fprintln(w, r)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

// flagValue returns the value following flag, or the part after '='.
func flagValue(args []string, flag string) (string, bool) {
	for i, a := range args {
		if strings.EqualFold(a, flag) && i+1 < len(args) {
			return args[i+1], true
		}
		if k, v, ok := strings.Cut(a, "="); ok && strings.EqualFold(k, flag) {
			return v, true
		}
	}
	return "", false
}
