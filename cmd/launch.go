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

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "manage new launch items",
	Example: `  habitat launch create -s <slug> -t <title> -c <category>
  habitat launch list --page 2
  habitat launch hero -l <launch-id>`,
}

func init() {
	rootCmd.AddCommand(launchCmd)
	launchCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	launchCmd.AddCommand(createLaunchCmd())
	launchCmd.AddCommand(listLaunchesCmd())
	launchCmd.AddCommand(deleteLaunchCmd())
	launchCmd.AddCommand(featureLaunchCmd())
	launchCmd.AddCommand(heroLaunchCmd())
}

func createLaunchCmd() *cobra.Command {
	var input service.NewLaunchInput

	var required = []string{"slug", "title"}

	command := &cobra.Command{
		Use:     "create",
		Short:   "create a new launch item",
		Example: "habitat launch create -s <slug> -t <title> -c <category> -n <tenure>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			item, err := newBackend().launches.Create(cmd.Context(), input)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("launch item created with id: %s", item.ID)
		},
	}

	command.Flags().StringVarP(&input.Slug, "slug", "s", "", "url slug (required)")
	command.Flags().StringVarP(&input.Title, "title", "t", "", "title (required)")
	command.Flags().StringVarP(&input.Excerpt, "excerpt", "e", "", "excerpt")
	command.Flags().StringVarP(&input.Image, "image", "i", "", "cover image url")
	command.Flags().StringVarP(&input.Category, "category", "c", "", "category")
	command.Flags().StringVarP(&input.Tenure, "tenure", "n", "", "tenure label")

	command.Flags().SortFlags = false

	return command
}

func listLaunchesCmd() *cobra.Command {
	var pageNum int
	var pageSize int
	var category string

	command := &cobra.Command{
		Use:   "list",
		Short: "list new launch items",
		Run: func(cmd *cobra.Command, args []string) {
			items, err := newBackend().launches.List(cmd.Context())
			if err != nil {
				logrus.Error(err)
				return
			}

			filters := []page.Predicate[*model.NewLaunchItem]{
				page.ByCategory(category, func(i *model.NewLaunchItem) string { return i.Category }),
			}

			res := page.Paginate(items, filters, pageSize, pageNum, page.MaxPlainAdmin)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Slug", "Title", "Tenure", "Featured", "Spotlight"})
			for _, item := range res.Items {
				table.Append([]string{item.ID, item.Slug, item.Title, item.Tenure, yesNo(item.Featured), yesNo(item.IsHero)})
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

func deleteLaunchCmd() *cobra.Command {
	var launchID string

	var required = []string{"launch-id"}

	command := &cobra.Command{
		Use:   "delete",
		Short: "delete a new launch item",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			err := newBackend().launches.Delete(cmd.Context(), launchID)
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("launch item deleted")
		},
	}

	command.Flags().StringVarP(&launchID, "launch-id", "l", "", "launch id (required)")

	return command
}

func featureLaunchCmd() *cobra.Command {
	var launchID string
	var off bool

	var required = []string{"launch-id"}

	command := &cobra.Command{
		Use:   "feature",
		Short: "toggle the featured flag",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			item, err := newBackend().launches.SetFeatured(cmd.Context(), launchID, !off)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("launch item %s featured: %v", item.ID, item.Featured)
		},
	}

	command.Flags().StringVarP(&launchID, "launch-id", "l", "", "launch id (required)")
	command.Flags().BoolVarP(&off, "off", "o", false, "clear the featured flag")
	command.Flags().SortFlags = false

	return command
}

func heroLaunchCmd() *cobra.Command {
	var launchID string

	var required = []string{"launch-id"}

	command := &cobra.Command{
		Use:     "hero",
		Short:   "make this item the launch spotlight",
		Example: "habitat launch hero -l <launch-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			hero, err := newBackend().heroes.Designate(cmd.Context(), model.CollectionNewLaunches, launchID)
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("launch spotlight: %s (%s)", hero.ItemTitle(), hero.ItemID())
		},
	}

	command.Flags().StringVarP(&launchID, "launch-id", "l", "", "launch id (required)")

	return command
}
