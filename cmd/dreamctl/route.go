package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"dreamtraffic/internal/catalog"
	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/exchange"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Rank the SSPs the exchange would route a DSP's demand to",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dsp, _ := cmd.Flags().GetString("dsp")
		placement, _ := cmd.Flags().GetString("placement")
		bidCPM, _ := cmd.Flags().GetFloat64("bid-cpm")
		noJitter, _ := cmd.Flags().GetBool("no-jitter")
		if dsp == "" {
			return eris.New("--dsp is required")
		}

		rcfg := exchange.DefaultConfig()
		rcfg.Jitter = cfg.Router.Jitter
		if noJitter {
			rcfg.Jitter = 0
		}
		seed := cfg.Router.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		router := exchange.NewRouter(catalog.DefaultSSPs(), rcfg, rand.NewSource(seed))

		results := router.Route(domain.RouteRequest{DSP: dsp, Placement: placement, BidCPM: bidCPM})
		logger.Debug("routed",
			slog.String("dsp", dsp),
			slog.String("placement", placement),
			slog.Int("candidates", len(results)))
		if len(results) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "no eligible SSPs for %s (%s)\n", dsp, placement)
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SSP\tT-GROUP\tROUTE\tSCORE\tLATENCY\tWIN RATE\tFEE")
		for _, r := range results {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.3f\t%dms\t%.1f%%\t%.1f%%\n",
				r.SSP, r.TGroup, r.RouteType, r.Score, r.EstimatedLatencyMS, r.EstimatedWinRate*100, r.FeePct)
		}
		return tw.Flush()
	},
}

func init() {
	routeCmd.Flags().String("dsp", "", "DSP key, e.g. amazon")
	routeCmd.Flags().String("placement", string(domain.PlacementOLV), "placement type")
	routeCmd.Flags().Float64("bid-cpm", 0, "bid CPM checked against the T-Group floor")
	routeCmd.Flags().Bool("no-jitter", false, "score pairings by their baselines only")
	rootCmd.AddCommand(routeCmd)
}
