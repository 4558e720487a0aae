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

var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "manage home tours",
	Example: `  habitat tour create -s <slug> -t <title> -d <duration>
  habitat tour list --page 2
  habitat tour hero -T <tour-id>`,
}

func init() {
	rootCmd.AddCommand(tourCmd)
	tourCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	tourCmd.AddCommand(createTourCmd())
	tourCmd.AddCommand(listToursCmd())
	tourCmd.AddCommand(deleteTourCmd())
	tourCmd.AddCommand(featureTourCmd())
	tourCmd.AddCommand(heroTourCmd())
}

func createTourCmd() *cobra.Command {
	var input service.HomeTourInput

	var required = []string{"slug", "title"}

	command := &cobra.Command{
		Use:     "create",
		Short:   "create a home tour",
		Example: "habitat tour create -s <slug> -t <title> -d <duration>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			tour, err := newBackend().tours.Create(cmd.Context(), input)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("home tour created with id: %s", tour.ID)
		},
	}

	command.Flags().StringVarP(&input.Slug, "slug", "s", "", "url slug (required)")
	command.Flags().StringVarP(&input.Title, "title", "t", "", "title (required)")
	command.Flags().StringVarP(&input.Excerpt, "excerpt", "e", "", "excerpt")
	command.Flags().StringVarP(&input.Image, "image", "i", "", "cover image url")
	command.Flags().StringVarP(&input.Category, "category", "c", "", "category")
	command.Flags().StringVarP(&input.Duration, "duration", "d", "", "duration label")

	command.Flags().SortFlags = false

	return command
}

func listToursCmd() *cobra.Command {
	var pageNum int
	var pageSize int
	var category string

	command := &cobra.Command{
		Use:   "list",
		Short: "list home tours",
		Run: func(cmd *cobra.Command, args []string) {
			tours, err := newBackend().tours.List(cmd.Context())
			if err != nil {
				logrus.Error(err)
				return
			}

			filters := []page.Predicate[*model.HomeTourItem]{
				page.ByCategory(category, func(t *model.HomeTourItem) string { return t.Category }),
			}

			res := page.Paginate(tours, filters, pageSize, pageNum, page.MaxPlainAdmin)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Slug", "Title", "Duration", "Featured", "Hero"})
			for _, tour := range res.Items {
				table.Append([]string{tour.ID, tour.Slug, tour.Title, tour.Duration, yesNo(tour.Featured), yesNo(tour.IsHero)})
			}
			table.Render()

			fmt.Println(pageFooter(res))
		},
	}

	command.Flags().IntVarP(&pageNum, "page", "p", 1, "page number")
	command.Flags().IntVarP(&pageSize, "size", "n", 4, "page size")
	command.Flags().StringVarP(&category, "category", "c", "", "filter by category")
	command.Flags().SortFlags = false

	return command
}

func deleteTourCmd() *cobra.Command {
	var tourID string

	var required = []string{"tour-id"}

	command := &cobra.Command{
		Use:   "delete",
		Short: "delete a home tour",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			err := newBackend().tours.Delete(cmd.Context(), tourID)
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("home tour deleted")
		},
	}

	command.Flags().StringVarP(&tourID, "tour-id", "T", "", "tour id (required)")

	return command
}

func featureTourCmd() *cobra.Command {
	var tourID string
	var off bool

	var required = []string{"tour-id"}

	command := &cobra.Command{
		Use:   "feature",
		Short: "toggle the featured flag",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			tour, err := newBackend().tours.SetFeatured(cmd.Context(), tourID, !off)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("home tour %s featured: %v", tour.ID, tour.Featured)
		},
	}

	command.Flags().StringVarP(&tourID, "tour-id", "T", "", "tour id (required)")
	command.Flags().BoolVarP(&off, "off", "o", false, "clear the featured flag")
	command.Flags().SortFlags = false

	return command
}

func heroTourCmd() *cobra.Command {
	var tourID string

	var required = []string{"tour-id"}

	command := &cobra.Command{
		Use:     "hero",
		Short:   "make this tour the hero of the tours rail",
		Example: "habitat tour hero -T <tour-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			hero, err := newBackend().heroes.Designate(cmd.Context(), model.CollectionHomeTours, tourID)
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("tour hero: %s (%s)", hero.ItemTitle(), hero.ItemID())
		},
	}

	command.Flags().StringVarP(&tourID, "tour-id", "T", "", "tour id (required)")

	return command
}
