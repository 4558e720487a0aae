package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/emrgen/habitat/internal/homepage"
	"github.com/emrgen/habitat/internal/model"
	"github.com/emrgen/habitat/internal/service"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "manage the homepage layout",
	Example: `  habitat home show
  habitat home section -k reels --hide
  habitat home limit -k articles -n 9
  habitat home hero -c articles`,
}

func init() {
	rootCmd.AddCommand(homeCmd)
	homeCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	homeCmd.AddCommand(showHomeCmd())
	homeCmd.AddCommand(setHomeCmd())
	homeCmd.AddCommand(sectionVisibilityCmd())
	homeCmd.AddCommand(setTitleCmd())
	homeCmd.AddCommand(setLimitCmd())
	homeCmd.AddCommand(setPodcastCmd())
	homeCmd.AddCommand(currentHeroCmd())

	homeCmd.AddCommand(nuggetCmd)
	nuggetCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	nuggetCmd.AddCommand(addNuggetCmd())
	nuggetCmd.AddCommand(removeNuggetCmd())
	nuggetCmd.AddCommand(moveNuggetCmd())
	nuggetCmd.AddCommand(patchNuggetCmd())

	homeCmd.AddCommand(methodologyCmd)
	methodologyCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	methodologyCmd.AddCommand(addMethodologyCmd())
	methodologyCmd.AddCommand(removeMethodologyCmd())
	methodologyCmd.AddCommand(moveMethodologyCmd())
	methodologyCmd.AddCommand(patchMethodologyCmd())
}

func renderConfig(cfg *homepage.Config) {
	keys := homepage.SectionKeys()
	sort.Strings(keys)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Section", "Visible", "Title", "Limit"})
	for _, key := range keys {
		title := cfg.Titles[key]
		limit := ""
		if n, ok := cfg.Limits[key]; ok {
			limit = fmt.Sprintf("%d", n)
		}
		table.Append([]string{key, yesNo(cfg.Sections[key]), title, limit})
	}
	table.Render()

	printField("Podcast", fmt.Sprintf("%s / %s", cfg.Podcast.Label, cfg.Podcast.Title))
	printField("Methodology", fmt.Sprintf("%d items", len(cfg.Methodology)))
	printField("Nuggets", fmt.Sprintf("%d items", len(cfg.Nuggets)))
}

func showHomeCmd() *cobra.Command {
	var asJSON bool

	command := &cobra.Command{
		Use:   "show",
		Short: "show the merged homepage config",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := newBackend().home.GetConfig(cmd.Context())
			if err != nil {
				logrus.Error(err)
				return
			}

			if asJSON {
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					logrus.Error(err)
					return
				}
				fmt.Println(string(data))
				return
			}

			renderConfig(cfg)
		},
	}

	command.Flags().BoolVarP(&asJSON, "json", "j", false, "print the full document as json")

	return command
}

func setHomeCmd() *cobra.Command {
	var doc string
	var file string

	command := &cobra.Command{
		Use:   "set",
		Short: "apply a config document",
		Long: `Apply a homepage config document.

The document may be partial; unknown keys are dropped and missing keys keep
their current defaults. Out of range limits are clamped.`,
		Example: `habitat home set -d '{"sections":{"hero":false}}'`,
		Run: func(cmd *cobra.Command, args []string) {
			raw := []byte(doc)
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					logrus.Error(err)
					return
				}
				raw = data
			}
			if len(raw) == 0 {
				color.Red("missing: --doc or --file\n")
				return
			}

			var m map[string]any
			if err := json.Unmarshal(raw, &m); err != nil {
				logrus.Errorf("invalid document: %v", err)
				return
			}

			cfg, err := newBackend().home.UpdateConfig(cmd.Context(), m)
			if err != nil {
				logrus.Error(err)
				return
			}

			renderConfig(cfg)
		},
	}

	command.Flags().StringVarP(&doc, "doc", "d", "", "config document as json")
	command.Flags().StringVarP(&file, "file", "f", "", "read the document from a file")
	command.Flags().SortFlags = false

	return command
}

func sectionVisibilityCmd() *cobra.Command {
	var key string
	var hide bool

	var required = []string{"key"}

	command := &cobra.Command{
		Use:     "section",
		Short:   "show or hide a section",
		Example: "habitat home section -k reels --hide",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			cfg, err := newBackend().home.SetSectionVisible(cmd.Context(), key, !hide)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("section %s visible: %v", key, cfg.Sections[key])
		},
	}

	command.Flags().StringVarP(&key, "key", "k", "", "section key (required)")
	command.Flags().BoolVarP(&hide, "hide", "H", false, "hide the section")
	command.Flags().SortFlags = false

	return command
}

func setTitleCmd() *cobra.Command {
	var key string
	var title string

	var required = []string{"key", "title"}

	command := &cobra.Command{
		Use:     "title",
		Short:   "set a section heading",
		Example: `habitat home title -k articles -t "Fresh Reads"`,
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			cfg, err := newBackend().home.SetTitle(cmd.Context(), key, title)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("section %s title: %s", key, cfg.Titles[key])
		},
	}

	command.Flags().StringVarP(&key, "key", "k", "", "section key (required)")
	command.Flags().StringVarP(&title, "title", "t", "", "heading text (required)")
	command.Flags().SortFlags = false

	return command
}

func setLimitCmd() *cobra.Command {
	var key string
	var limit int

	var required = []string{"key", "limit"}

	command := &cobra.Command{
		Use:     "limit",
		Short:   "set a section item limit",
		Example: "habitat home limit -k articles -n 9",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			cfg, err := newBackend().home.SetLimit(cmd.Context(), key, limit)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("section %s limit: %d", key, cfg.Limits[key])
		},
	}

	command.Flags().StringVarP(&key, "key", "k", "", "section key (required)")
	command.Flags().IntVarP(&limit, "limit", "n", 0, "item limit, 0 to 50 (required)")
	command.Flags().SortFlags = false

	return command
}

func setPodcastCmd() *cobra.Command {
	var block homepage.PodcastBlock

	var required = []string{"title", "slug"}

	command := &cobra.Command{
		Use:     "podcast",
		Short:   "replace the podcast teaser block",
		Example: `habitat home podcast -t "New Season" -s podcast-s2 -l "On Air"`,
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			cfg, err := newBackend().home.SetPodcast(cmd.Context(), block)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("podcast block: %s", cfg.Podcast.Title)
		},
	}

	command.Flags().StringVarP(&block.Title, "title", "t", "", "title (required)")
	command.Flags().StringVarP(&block.Slug, "slug", "s", "", "target slug (required)")
	command.Flags().StringVarP(&block.Label, "label", "l", "", "kicker label")
	command.Flags().StringVarP(&block.Description, "description", "d", "", "description")
	command.Flags().StringVarP(&block.Thumbnail, "thumbnail", "u", "", "thumbnail url")
	command.Flags().SortFlags = false

	return command
}

func currentHeroCmd() *cobra.Command {
	var collection string

	var required = []string{"collection"}

	command := &cobra.Command{
		Use:     "hero",
		Short:   "show the current hero of a collection",
		Example: "habitat home hero -c articles",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			hero, err := newBackend().heroes.CurrentHero(cmd.Context(), model.Collection(collection))
			if err != nil {
				logrus.Error(err)
				return
			}
			if hero == nil {
				logrus.Infof("no hero set for %s", collection)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Slug", "Title"})
			table.Append([]string{hero.ItemID(), hero.ItemSlug(), hero.ItemTitle()})
			table.Render()
		},
	}

	command.Flags().StringVarP(&collection, "collection", "c", "", "articles, home-tours or new-launches (required)")

	return command
}

var nuggetCmd = &cobra.Command{
	Use:   "nugget",
	Short: "edit the reader tips strip",
	Example: `  habitat home nugget add -t <title> -s <slug>
  habitat home nugget move -i 2 -d up
  habitat home nugget remove -i 2`,
}

func addNuggetCmd() *cobra.Command {
	var nugget homepage.Nugget

	var required = []string{"title", "slug"}

	command := &cobra.Command{
		Use:   "add",
		Short: "append a nugget",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			cfg, err := newBackend().home.AddNugget(cmd.Context(), nugget)
			if err != nil {
				logrus.Error(err)
				return
			}

			added := cfg.Nuggets[len(cfg.Nuggets)-1]
			logrus.Infof("nugget added with id: %s", added.ID)
		},
	}

	command.Flags().StringVarP(&nugget.Title, "title", "t", "", "title (required)")
	command.Flags().StringVarP(&nugget.Slug, "slug", "s", "", "target slug (required)")
	command.Flags().StringVarP(&nugget.Description, "description", "d", "", "description")
	command.Flags().StringVarP(&nugget.Avatar, "avatar", "u", "", "avatar url")
	command.Flags().SortFlags = false

	return command
}

func removeNuggetCmd() *cobra.Command {
	var index int

	var required = []string{"index"}

	command := &cobra.Command{
		Use:   "remove",
		Short: "remove a nugget",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			cfg, err := newBackend().home.RemoveNugget(cmd.Context(), index)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("nuggets remaining: %d", len(cfg.Nuggets))
		},
	}

	command.Flags().IntVarP(&index, "index", "i", 0, "nugget index (required)")

	return command
}

func moveNuggetCmd() *cobra.Command {
	var index int
	var direction string

	var required = []string{"index", "direction"}

	command := &cobra.Command{
		Use:     "move",
		Short:   "move a nugget one step",
		Example: "habitat home nugget move -i 2 -d up",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			dir, err := parseDirection(direction)
			if err != nil {
				logrus.Error(err)
				return
			}

			_, err = newBackend().home.MoveNugget(cmd.Context(), index, dir)
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("nugget moved")
		},
	}

	command.Flags().IntVarP(&index, "index", "i", 0, "nugget index (required)")
	command.Flags().StringVarP(&direction, "direction", "d", "", "up or down (required)")
	command.Flags().SortFlags = false

	return command
}

func patchNuggetCmd() *cobra.Command {
	var index int
	var title string
	var description string
	var avatar string
	var slug string

	var required = []string{"index"}

	command := &cobra.Command{
		Use:   "patch",
		Short: "update nugget fields, keeping its id and position",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			var patch service.NuggetPatch
			if cmd.Flag("title").Changed {
				patch.Title = &title
			}
			if cmd.Flag("description").Changed {
				patch.Description = &description
			}
			if cmd.Flag("avatar").Changed {
				patch.Avatar = &avatar
			}
			if cmd.Flag("slug").Changed {
				patch.Slug = &slug
			}

			cfg, err := newBackend().home.PatchNugget(cmd.Context(), index, patch)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("nugget updated: %s", cfg.Nuggets[index].ID)
		},
	}

	command.Flags().IntVarP(&index, "index", "i", 0, "nugget index (required)")
	command.Flags().StringVarP(&title, "title", "t", "", "new title")
	command.Flags().StringVarP(&description, "description", "d", "", "new description")
	command.Flags().StringVarP(&avatar, "avatar", "u", "", "new avatar url")
	command.Flags().StringVarP(&slug, "slug", "s", "", "new target slug")
	command.Flags().SortFlags = false

	return command
}

var methodologyCmd = &cobra.Command{
	Use:   "methodology",
	Short: "edit the methodology cards",
	Example: `  habitat home methodology add -t <title> -s <slug>
  habitat home methodology move -i 1 -d down
  habitat home methodology remove -i 1`,
}

func addMethodologyCmd() *cobra.Command {
	var item homepage.MethodologyItem

	var required = []string{"title", "slug"}

	command := &cobra.Command{
		Use:   "add",
		Short: "append a methodology card",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			cfg, err := newBackend().home.AddMethodology(cmd.Context(), item)
			if err != nil {
				logrus.Error(err)
				return
			}

			added := cfg.Methodology[len(cfg.Methodology)-1]
			logrus.Infof("methodology card added with id: %s", added.ID)
		},
	}

	command.Flags().StringVarP(&item.Title, "title", "t", "", "title (required)")
	command.Flags().StringVarP(&item.Slug, "slug", "s", "", "target slug (required)")
	command.Flags().StringVarP(&item.Description, "description", "d", "", "description")
	command.Flags().StringVarP(&item.Thumbnail, "thumbnail", "u", "", "thumbnail url")
	command.Flags().SortFlags = false

	return command
}

func removeMethodologyCmd() *cobra.Command {
	var index int

	var required = []string{"index"}

	command := &cobra.Command{
		Use:   "remove",
		Short: "remove a methodology card",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			cfg, err := newBackend().home.RemoveMethodology(cmd.Context(), index)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("methodology cards remaining: %d", len(cfg.Methodology))
		},
	}

	command.Flags().IntVarP(&index, "index", "i", 0, "card index (required)")

	return command
}

func moveMethodologyCmd() *cobra.Command {
	var index int
	var direction string

	var required = []string{"index", "direction"}

	command := &cobra.Command{
		Use:   "move",
		Short: "move a methodology card one step",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			dir, err := parseDirection(direction)
			if err != nil {
				logrus.Error(err)
				return
			}

			_, err = newBackend().home.MoveMethodology(cmd.Context(), index, dir)
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("methodology card moved")
		},
	}

	command.Flags().IntVarP(&index, "index", "i", 0, "card index (required)")
	command.Flags().StringVarP(&direction, "direction", "d", "", "up or down (required)")
	command.Flags().SortFlags = false

	return command
}

func patchMethodologyCmd() *cobra.Command {
	var index int
	var title string
	var description string
	var thumbnail string
	var slug string

	var required = []string{"index"}

	command := &cobra.Command{
		Use:   "patch",
		Short: "update methodology card fields, keeping its id and position",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			var patch service.MethodologyPatch
			if cmd.Flag("title").Changed {
				patch.Title = &title
			}
			if cmd.Flag("description").Changed {
				patch.Description = &description
			}
			if cmd.Flag("thumbnail").Changed {
				patch.Thumbnail = &thumbnail
			}
			if cmd.Flag("slug").Changed {
				patch.Slug = &slug
			}

			cfg, err := newBackend().home.PatchMethodology(cmd.Context(), index, patch)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("methodology card updated: %s", cfg.Methodology[index].ID)
		},
	}

	command.Flags().IntVarP(&index, "index", "i", 0, "card index (required)")
	command.Flags().StringVarP(&title, "title", "t", "", "new title")
	command.Flags().StringVarP(&description, "description", "d", "", "new description")
	command.Flags().StringVarP(&thumbnail, "thumbnail", "u", "", "new thumbnail url")
	command.Flags().StringVarP(&slug, "slug", "s", "", "new target slug")
	command.Flags().SortFlags = false

	return command
}
