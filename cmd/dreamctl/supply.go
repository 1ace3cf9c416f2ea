package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dreamtraffic/internal/db"
	"dreamtraffic/internal/fees"
)

var supplyChainCmd = &cobra.Command{
	Use:   "supply-chain",
	Short: "Compare DSP fee stacks over the reference supply paths",
	RunE: func(cmd *cobra.Command, _ []string) error {
		baseCPM, _ := cmd.Flags().GetFloat64("base-cpm")
		detail, _ := cmd.Flags().GetBool("detail")
		if baseCPM <= 0 {
			baseCPM = cfg.Fees.BaseCPM
		}

		calc := fees.NewCalculator(cfg.Fees.CostPerVideo, cfg.Fees.ImpressionGoal)
		out := cmd.OutOrStdout()

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DSP\tPATHS\tAVG DSP FEE\tAVG SUPPLY COST\tAVG PUBLISHER NET\tAVG MEASUREMENT CPM")
		for _, c := range calc.CompareDSPs(db.SupplyPaths) {
			fmt.Fprintf(tw, "%s\t%d\t%.1f%%\t%.1f%%\t%.1f%%\t$%.3f\n",
				c.DSP, c.PathCount, c.AvgDSPFee, c.AvgTotalSupplyCost, c.AvgPublisherNet, c.AvgMeasurementCPM)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nCreative cost: $%.4f/CPM amortized over %d impressions\n",
			calc.CreativeCPM(), cfg.Fees.ImpressionGoal)

		if detail {
			for _, b := range calc.CalculateAll(db.SupplyPaths) {
				fmt.Fprintf(out, "\n%s\n", fees.FormatBreakdown(b, baseCPM))
			}
		}
		return nil
	},
}

func init() {
	supplyChainCmd.Flags().Float64("base-cpm", 0, "media CPM used for currency amounts (default FEES_BASE_CPM)")
	supplyChainCmd.Flags().Bool("detail", false, "print the breakdown of every path")
	rootCmd.AddCommand(supplyChainCmd)
}
