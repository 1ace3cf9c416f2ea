package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"dreamtraffic/internal/catalog"
	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/vast"
)

var vastCmd = &cobra.Command{
	Use:   "vast",
	Short: "Render a VAST 4.2 InLine or Wrapper tag",
	RunE: func(cmd *cobra.Command, _ []string) error {
		vendorList, _ := cmd.Flags().GetString("vendors")
		wrapper, _ := cmd.Flags().GetBool("wrapper")
		uri, _ := cmd.Flags().GetString("uri")
		videoURL, _ := cmd.Flags().GetString("video-url")
		seconds, _ := cmd.Flags().GetInt("duration")
		title, _ := cmd.Flags().GetString("title")

		vendors := catalog.DefaultVendors()
		keys := splitList(vendorList)
		if err := vendors.Validate(keys); err != nil {
			return err
		}
		gen := vast.NewGenerator(vendors, vast.Options{
			AdSystem:     cfg.VAST.AdSystem,
			TrackingBase: cfg.VAST.TrackingBase,
		})

		var (
			doc string
			err error
		)
		if wrapper {
			if uri == "" {
				return eris.New("--uri is required with --wrapper")
			}
			doc, err = gen.Wrapper(vast.WrapperRequest{TagURI: uri, VendorKeys: keys})
		} else {
			if videoURL == "" {
				return eris.New("--video-url is required")
			}
			doc, err = gen.Inline(vast.InlineRequest{
				VideoURL:   videoURL,
				Duration:   domain.Creative{Duration: seconds}.VastDuration(),
				Title:      title,
				VendorKeys: keys,
			})
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), doc)
		return nil
	},
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func init() {
	vastCmd.Flags().String("vendors", "ias,moat,doubleverify", "comma-separated measurement vendor keys")
	vastCmd.Flags().Bool("wrapper", false, "render a Wrapper instead of an InLine")
	vastCmd.Flags().String("uri", "", "VASTAdTagURI of the wrapped tag")
	vastCmd.Flags().String("video-url", "", "media file URL of the InLine creative")
	vastCmd.Flags().Int("duration", 15, "creative duration in seconds")
	vastCmd.Flags().String("title", "DreamTraffic Creative", "ad title")
	rootCmd.AddCommand(vastCmd)
}
