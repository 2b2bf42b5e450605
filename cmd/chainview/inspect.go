package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Mr-Dark-debug/chainview/internal/analysis"
	"github.com/Mr-Dark-debug/chainview/internal/chain"
	"github.com/Mr-Dark-debug/chainview/internal/database"
	"github.com/Mr-Dark-debug/chainview/internal/loader"
	"github.com/Mr-Dark-debug/chainview/internal/logging"
	"github.com/Mr-Dark-debug/chainview/pkg/timeutil"
)

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Validate a chain file and print a per-expiration summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if schema, _ := cmd.Flags().GetBool("schema"); schema {
				ddl, err := database.Schema()
				if err != nil {
					return err
				}
				_, err = io.WriteString(out, ddl)
				return err
			}

			logger := logging.NewConsoleLogger(os.Stderr, a.cfg.Log.Level)
			path := a.dataPath(args)
			logger.Debug().Str("path", path).Str("format", string(loader.DetectFormat(path))).Msg("inspecting")

			c, err := loader.Load(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(out, c)
			}
			return writeSummary(out, c, time.Now())
		},
	}
	cmd.Flags().Bool("schema", false, "print the SQLite snapshot schema and exit")
	cmd.Flags().Bool("json", false, "output the summary as JSON")
	return cmd
}

// writeSummary prints the chain header line, one table row per
// expiration, and any volume hotspots.
func writeSummary(w io.Writer, c *chain.Chain, now time.Time) error {
	updated := timeutil.FormatUpdate(c.LastUpdate)
	if t, ok := timeutil.Parse(c.LastUpdate); ok {
		updated += " (" + timeutil.RelativeTime(t, now) + ")"
	}
	if _, err := fmt.Fprintf(w, "%s  last $%s  updated %s\n", c.Symbol, c.LastPrice.StringFixed(2), updated); err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Expiration", "DTE", "Strikes", "Low", "High", "Call Vol", "Put Vol", "P/C", "Call OI", "Put OI", "Max Pain")
	for _, s := range analysis.Summarize(c) {
		t.Row(summaryRow(s)...)
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}

	for _, h := range analysis.DetectChainHotspots(c) {
		if _, err := fmt.Fprintf(w, "hotspot  %s  strike %s  volume %d  z=%.2f (%s)\n",
			h.Date, h.Strike.StringFixed(2), h.Volume, h.ZScore, h.Severity); err != nil {
			return err
		}
	}
	return nil
}

// inspectReport is the --json form of the summary.
type inspectReport struct {
	Symbol      string                       `json:"symbol"`
	LastPrice   decimal.Decimal              `json:"last_price"`
	LastUpdate  string                       `json:"last_update"`
	Expirations []analysis.ExpirationSummary `json:"expirations"`
	Hotspots    []analysis.VolumeHotspot     `json:"hotspots"`
}

func writeJSON(w io.Writer, c *chain.Chain) error {
	report := inspectReport{
		Symbol:      c.Symbol,
		LastPrice:   c.LastPrice,
		LastUpdate:  c.LastUpdate,
		Expirations: analysis.Summarize(c),
		Hotspots:    analysis.DetectChainHotspots(c),
	}
	if report.Hotspots == nil {
		report.Hotspots = []analysis.VolumeHotspot{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func summaryRow(s analysis.ExpirationSummary) []string {
	dte := "-"
	if s.HasDTE {
		dte = strconv.Itoa(s.DaysToExpiry)
	}
	low, high, maxPain := "-", "-", "-"
	if s.Strikes > 0 {
		low, high, maxPain = s.LowStrike.StringFixed(2), s.HighStrike.StringFixed(2), s.MaxPain.StringFixed(2)
	}

	return []string{
		s.Date,
		dte,
		strconv.Itoa(s.Strikes),
		low,
		high,
		strconv.FormatInt(s.CallVolume, 10),
		strconv.FormatInt(s.PutVolume, 10),
		strconv.FormatFloat(s.PutCallRatio, 'f', 2, 64),
		strconv.FormatInt(s.CallOI, 10),
		strconv.FormatInt(s.PutOI, 10),
		maxPain,
	}
}
