package cmd

import (
	"fmt"
	"os"

	"github.com/emrgen/habitat/internal/model"
	"github.com/emrgen/habitat/internal/page"
	"github.com/emrgen/habitat/internal/service"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var reelCmd = &cobra.Command{
	Use:   "reel",
	Short: "manage reels",
	Example: `  habitat reel create -s <slug> -t <title> -u <thumbnail>
  habitat reel list --page 2
  habitat reel feature -r <reel-id>`,
}

func init() {
	rootCmd.AddCommand(reelCmd)
	reelCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	reelCmd.AddCommand(createReelCmd())
	reelCmd.AddCommand(listReelsCmd())
	reelCmd.AddCommand(deleteReelCmd())
	reelCmd.AddCommand(featureReelCmd())
}

func createReelCmd() *cobra.Command {
	var input service.ReelInput

	var required = []string{"slug", "title"}

	command := &cobra.Command{
		Use:     "create",
		Short:   "create a reel",
		Example: "habitat reel create -s <slug> -t <title> -u <thumbnail> -d <duration>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			reel, err := newBackend().reels.Create(cmd.Context(), input)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("reel created with id: %s", reel.ID)
		},
	}

	command.Flags().StringVarP(&input.Slug, "slug", "s", "", "url slug (required)")
	command.Flags().StringVarP(&input.Title, "title", "t", "", "title (required)")
	command.Flags().StringVarP(&input.Thumbnail, "thumbnail", "u", "", "thumbnail url")
	command.Flags().StringVarP(&input.Category, "category", "c", "", "category")
	command.Flags().StringVarP(&input.Duration, "duration", "d", "", "duration label")

	command.Flags().SortFlags = false

	return command
}

func listReelsCmd() *cobra.Command {
	var pageNum int
	var pageSize int
	var category string

	command := &cobra.Command{
		Use:   "list",
		Short: "list reels",
		Run: func(cmd *cobra.Command, args []string) {
			reels, err := newBackend().reels.List(cmd.Context())
			if err != nil {
				logrus.Error(err)
				return
			}

			filters := []page.Predicate[*model.Reel]{
				page.ByCategory(category, func(r *model.Reel) string { return r.Category }),
			}

			res := page.Paginate(reels, filters, pageSize, pageNum, page.MaxPlainAdmin)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Slug", "Title", "Duration", "Featured"})
			for _, reel := range res.Items {
				table.Append([]string{reel.ID, reel.Slug, reel.Title, reel.Duration, yesNo(reel.Featured)})
			}
			table.Render()

			fmt.Println(pageFooter(res))
		},
	}

	command.Flags().IntVarP(&pageNum, "page", "p", 1, "page number")
	command.Flags().IntVarP(&pageSize, "size", "n", 8, "page size")
	command.Flags().StringVarP(&category, "category", "c", "", "filter by category")
	command.Flags().SortFlags = false

	return command
}

func deleteReelCmd() *cobra.Command {
	var reelID string

	var required = []string{"reel-id"}

	command := &cobra.Command{
		Use:   "delete",
		Short: "delete a reel",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			err := newBackend().reels.Delete(cmd.Context(), reelID)
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("reel deleted")
		},
	}

	command.Flags().StringVarP(&reelID, "reel-id", "r", "", "reel id (required)")

	return command
}

func featureReelCmd() *cobra.Command {
	var reelID string
	var off bool

	var required = []string{"reel-id"}

	command := &cobra.Command{
		Use:   "feature",
		Short: "toggle the featured flag",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			reel, err := newBackend().reels.SetFeatured(cmd.Context(), reelID, !off)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("reel %s featured: %v", reel.ID, reel.Featured)
		},
	}

	command.Flags().StringVarP(&reelID, "reel-id", "r", "", "reel id (required)")
	command.Flags().BoolVarP(&off, "off", "o", false, "clear the featured flag")
	command.Flags().SortFlags = false

	return command
}
