package commands

import (
	"fmt"

	"github.com/penwyp/go-countdown/internal/packaging"
	"github.com/spf13/cobra"
)

var (
	iconOutDir     string
	iconSizes      []int
	iconName       string
	iconShortName  string
	iconThemeColor string
)

var iconsCmd = &cobra.Command{
	Use:   "icons <source-icon>",
	Short: "Render app icons and a web manifest from a source image",
	Long: `Render an SVG logo, or resize a PNG, JPEG, GIF, BMP or WebP image, into square
pwa-<n>x<n>.png icons (192 and 512 pixels by default) and write a manifest.webmanifest
listing them. SVG sources are drawn directly at each size and fitted inside the square.
Non-square raster sources are cropped around their centre.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runIcons,
}

func init() {
	rootCmd.AddCommand(iconsCmd)

	iconsCmd.Flags().StringVarP(&iconOutDir, "out-dir", "o", "public",
		"Directory the icons and manifest are written to")
	iconsCmd.Flags().IntSliceVar(&iconSizes, "size", packaging.DefaultSizes,
		"Icon sizes in pixels")
	iconsCmd.Flags().StringVar(&iconName, "name", "",
		"Application name in the manifest")
	iconsCmd.Flags().StringVar(&iconShortName, "short-name", "",
		"Short application name in the manifest")
	iconsCmd.Flags().StringVar(&iconThemeColor, "theme-color", "",
		"Theme colour in the manifest")
}

func runIcons(cmd *cobra.Command, args []string) error {
	written, err := packaging.GenerateIcons(packaging.IconOptions{
		Source:     expandPath(args[0]),
		OutDir:     expandPath(iconOutDir),
		Sizes:      iconSizes,
		Name:       iconName,
		ShortName:  iconShortName,
		ThemeColor: iconThemeColor,
	})
	if err != nil {
		return fmt.Errorf("failed to generate icons: %w", err)
	}

	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
