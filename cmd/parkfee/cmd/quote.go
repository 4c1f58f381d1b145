package cmd

import (
	"encoding/json"
	"time"

	"facility-parking/internal/domain/parking"
	resdto "facility-parking/internal/handler/dto/response"
	"facility-parking/internal/pkg/config"
	"facility-parking/internal/pkg/errs"

	"github.com/spf13/cobra"
)

var (
	entryFlag     string
	exitFlag      string
	manual        bool
	dailyCount    int
	hourlyCount   int
	thirtyCount   int
	dailyCoverage time.Duration
	jsonOutput    bool
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print the fee for a stay",
	Long: `Price a stay between --entry and --exit (RFC3339).

Without --manual the cheapest pass combination is chosen automatically and any pass
counts are ignored. With --manual exactly the given passes are priced.`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVar(&entryFlag, "entry", "", "entry time (RFC3339)")
	quoteCmd.Flags().StringVar(&exitFlag, "exit", "", "exit time (RFC3339)")
	quoteCmd.Flags().BoolVar(&manual, "manual", false, "price the passes given by --daily/--hourly/--thirty")
	quoteCmd.Flags().IntVar(&dailyCount, "daily", 0, "daily passes (with --manual)")
	quoteCmd.Flags().IntVar(&hourlyCount, "hourly", 0, "hourly passes (with --manual)")
	quoteCmd.Flags().IntVar(&thirtyCount, "thirty", 0, "30-minute passes (with --manual; always refused)")
	quoteCmd.Flags().DurationVar(&dailyCoverage, "daily-coverage", 0, "daily pass coverage (default from TARIFF_DAILY_PASS_COVERAGE)")
	quoteCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the quote as JSON")

	_ = quoteCmd.MarkFlagRequired("entry")
	_ = quoteCmd.MarkFlagRequired("exit")
}

func runQuote(cmd *cobra.Command, _ []string) error {
	entry, err := time.Parse(time.RFC3339, entryFlag)
	if err != nil {
		return errs.Wrap(err, "invalid --entry")
	}
	exit, err := time.Parse(time.RFC3339, exitFlag)
	if err != nil {
		return errs.Wrap(err, "invalid --exit")
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	var result parking.PricingResult
	if manual {
		result = engine.QuoteWithPasses(entry, exit, parking.PassRequest{
			ThirtyMinute: thirtyCount,
			Hourly:       hourlyCount,
			Daily:        dailyCount,
		})
	} else {
		result = engine.Quote(entry, exit, nil)
	}

	if jsonOutput {
		out, err := json.MarshalIndent(resdto.FromPricingResult(result), "", "  ")
		if err != nil {
			return errs.Wrap(err, "failed to encode quote")
		}
		printf(cmd, "%s\n", out)
		return nil
	}

	for _, line := range result.Breakdown {
		printf(cmd, "%s\n", line)
	}
	for _, reason := range result.Receipt.Unapplied {
		printf(cmd, "  not applied: %s\n", reason)
	}
	return nil
}

func newEngine() (*parking.Engine, error) {
	coverage := dailyCoverage
	if coverage == 0 {
		tariff, err := config.LoadTariffConfig()
		if err != nil {
			return nil, err
		}
		coverage = tariff.DailyPassCoverage
	}
	if coverage <= 0 || coverage > 24*time.Hour {
		return nil, errs.New("daily pass coverage must be between 1m and 24h")
	}
	return parking.NewEngine(parking.DefaultCatalog().WithDailyCoverage(int(coverage.Minutes()))), nil
}
