package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardscribe/internal/config"
	"github.com/arcanaland/cardscribe/internal/imaging"
)

// imagesCmd represents the images command
var imagesCmd = &cobra.Command{
	Use:   "images [input_dir] [output_dir]",
	Short: "Resize card images for the client",
	Long: `Images scales every image in input_dir to the landscape or portrait card
resolution, depending on its orientation, and writes it to output_dir as JPEG
under the same file name. Images already present in output_dir are skipped,
so an interrupted run can simply be restarted.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		workers, _ := cmd.Flags().GetInt("workers")

		r := newResizer(cfg.Images)
		if cmd.Flags().Changed("workers") {
			r.Workers = workers
		}

		stats, err := r.Resize(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("%s %d resized, %d already present\n",
			colorize.GreenString("✓"), stats.Resized, stats.Skipped)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(imagesCmd)

	imagesCmd.Flags().IntP("workers", "w", 0, "number of images processed concurrently (default from config, 0 = one per CPU)")
}

func newResizer(c config.ImagesConfig) *imaging.Resizer {
	r := imaging.NewResizer()
	r.Workers = c.Workers
	r.Quality = c.Quality
	r.Landscape = imaging.Size{Width: c.Landscape.Width, Height: c.Landscape.Height}
	r.Portrait = imaging.Size{Width: c.Portrait.Width, Height: c.Portrait.Height}
	r.Logger = logger
	return r
}
