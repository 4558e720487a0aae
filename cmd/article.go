package cmd

import (
	"fmt"
	"os"

	"github.com/emrgen/habitat/internal/model"
	"github.com/emrgen/habitat/internal/ordered"
	"github.com/emrgen/habitat/internal/page"
	"github.com/emrgen/habitat/internal/service"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "manage articles",
	Example: `  habitat article create -s <slug> -t <title> -c <category>
  habitat article list --page 2 --category design --search kitchen
  habitat article hero -a <article-id>`,
}

func init() {
	rootCmd.AddCommand(articleCmd)
	articleCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	articleCmd.AddCommand(createArticleCmd())
	articleCmd.AddCommand(getArticleCmd())
	articleCmd.AddCommand(listArticlesCmd())
	articleCmd.AddCommand(updateArticleCmd())
	articleCmd.AddCommand(deleteArticleCmd())
	articleCmd.AddCommand(featureArticleCmd())
	articleCmd.AddCommand(heroArticleCmd())

	articleCmd.AddCommand(sectionCmd)
	sectionCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	sectionCmd.AddCommand(addSectionCmd())
	sectionCmd.AddCommand(removeSectionCmd())
	sectionCmd.AddCommand(moveSectionCmd())
	sectionCmd.AddCommand(patchSectionCmd())

	articleCmd.AddCommand(paragraphCmd)
	paragraphCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	paragraphCmd.AddCommand(addParagraphCmd())
	paragraphCmd.AddCommand(removeParagraphCmd())
	paragraphCmd.AddCommand(replaceParagraphCmd())
	paragraphCmd.AddCommand(moveParagraphCmd())
}

func parseDirection(s string) (ordered.Direction, error) {
	switch s {
	case "up":
		return ordered.Up, nil
	case "down":
		return ordered.Down, nil
	default:
		return ordered.Up, fmt.Errorf("invalid direction %q, expected up or down", s)
	}
}

func createArticleCmd() *cobra.Command {
	var input service.ArticleInput

	var required = []string{"slug", "title"}

	command := &cobra.Command{
		Use:     "create",
		Short:   "create an article",
		Example: "habitat article create -s <slug> -t <title> -c <category>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			article, err := newBackend().articles.Create(cmd.Context(), input)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("article created with id: %s", article.ID)
		},
	}

	command.Flags().StringVarP(&input.Slug, "slug", "s", "", "url slug (required)")
	command.Flags().StringVarP(&input.Title, "title", "t", "", "title (required)")
	command.Flags().StringVarP(&input.Excerpt, "excerpt", "e", "", "excerpt")
	command.Flags().StringVarP(&input.Image, "image", "i", "", "cover image url")
	command.Flags().StringVarP(&input.Category, "category", "c", "", "category")
	command.Flags().StringVarP(&input.ReadTime, "read-time", "r", "", "read time label")

	command.Flags().SortFlags = false

	return command
}

func getArticleCmd() *cobra.Command {
	var articleID string
	var slug string

	command := &cobra.Command{
		Use:     "get",
		Short:   "get an article",
		Example: "habitat article get -a <article-id>",
		Run: func(cmd *cobra.Command, args []string) {
			client := newBackend()

			var article *model.Article
			var err error
			switch {
			case articleID != "":
				article, err = client.articles.Get(cmd.Context(), articleID)
			case slug != "":
				article, err = client.articles.GetBySlug(cmd.Context(), slug)
			default:
				color.Red("missing: --article-id or --slug\n")
				return
			}
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Slug", "Category", "Featured", "Hero"})
			table.Append([]string{article.ID, article.Slug, article.Category, yesNo(article.Featured), yesNo(article.IsHero)})
			table.Render()

			printField("Title", article.Title)
			printField("Excerpt", article.Excerpt)

			sections, err := client.articles.Sections(cmd.Context(), article.ID)
			if err != nil {
				logrus.Error(err)
				return
			}

			for i, section := range sections {
				printField(fmt.Sprintf("Section %d", i), section.Heading)
				for j, p := range section.Paragraphs {
					fmt.Printf("  %d. %s\n", j, p)
				}
			}
		},
	}

	command.Flags().StringVarP(&articleID, "article-id", "a", "", "article id")
	command.Flags().StringVarP(&slug, "slug", "s", "", "article slug")
	command.Flags().SortFlags = false

	return command
}

func listArticlesCmd() *cobra.Command {
	var pageNum int
	var pageSize int
	var category string
	var search string

	command := &cobra.Command{
		Use:     "list",
		Short:   "list articles",
		Example: "habitat article list --page 2 --category design --search kitchen",
		Run: func(cmd *cobra.Command, args []string) {
			articles, err := newBackend().articles.List(cmd.Context())
			if err != nil {
				logrus.Error(err)
				return
			}

			filters := []page.Predicate[*model.Article]{
				page.ByCategory(category, func(a *model.Article) string { return a.Category }),
				page.BySearch(search, func(a *model.Article) []string {
					return []string{a.Title, a.Excerpt}
				}),
			}

			res := page.Paginate(articles, filters, pageSize, pageNum, page.MaxPlainAdmin)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Slug", "Title", "Category", "Featured", "Hero"})
			for _, article := range res.Items {
				table.Append([]string{article.ID, article.Slug, article.Title, article.Category, yesNo(article.Featured), yesNo(article.IsHero)})
			}
			table.Render()

			fmt.Println(pageFooter(res))
		},
	}

	command.Flags().IntVarP(&pageNum, "page", "p", 1, "page number")
	command.Flags().IntVarP(&pageSize, "size", "n", 9, "page size")
	command.Flags().StringVarP(&category, "category", "c", "", "filter by category")
	command.Flags().StringVarP(&search, "search", "q", "", "filter by title or excerpt")
	command.Flags().SortFlags = false

	return command
}

func updateArticleCmd() *cobra.Command {
	var articleID string
	var input service.ArticleInput

	var required = []string{"article-id", "slug", "title"}

	command := &cobra.Command{
		Use:   "update",
		Short: "update an article",
		Long: `Update an article with the given id.

The mutable fields are replaced wholesale, so pass every field you want to
keep. Featured and hero state are untouched.`,
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			article, err := newBackend().articles.Update(cmd.Context(), articleID, input)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("article updated: %s", article.ID)
		},
	}

	command.Flags().StringVarP(&articleID, "article-id", "a", "", "article id (required)")
	command.Flags().StringVarP(&input.Slug, "slug", "s", "", "url slug (required)")
	command.Flags().StringVarP(&input.Title, "title", "t", "", "title (required)")
	command.Flags().StringVarP(&input.Excerpt, "excerpt", "e", "", "excerpt")
	command.Flags().StringVarP(&input.Image, "image", "i", "", "cover image url")
	command.Flags().StringVarP(&input.Category, "category", "c", "", "category")
	command.Flags().StringVarP(&input.ReadTime, "read-time", "r", "", "read time label")

	command.Flags().SortFlags = false

	return command
}

func deleteArticleCmd() *cobra.Command {
	var articleID string

	var required = []string{"article-id"}

	command := &cobra.Command{
		Use:   "delete",
		Short: "delete an article",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			err := newBackend().articles.Delete(cmd.Context(), articleID)
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("article deleted")
		},
	}

	command.Flags().StringVarP(&articleID, "article-id", "a", "", "article id (required)")

	return command
}

func featureArticleCmd() *cobra.Command {
	var articleID string
	var off bool

	var required = []string{"article-id"}

	command := &cobra.Command{
		Use:     "feature",
		Short:   "toggle the featured flag",
		Example: "habitat article feature -a <article-id> --off",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			article, err := newBackend().articles.SetFeatured(cmd.Context(), articleID, !off)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("article %s featured: %v", article.ID, article.Featured)
		},
	}

	command.Flags().StringVarP(&articleID, "article-id", "a", "", "article id (required)")
	command.Flags().BoolVarP(&off, "off", "o", false, "clear the featured flag")
	command.Flags().SortFlags = false

	return command
}

func heroArticleCmd() *cobra.Command {
	var articleID string

	var required = []string{"article-id"}

	command := &cobra.Command{
		Use:     "hero",
		Short:   "make this article the hero",
		Example: "habitat article hero -a <article-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			hero, err := newBackend().heroes.Designate(cmd.Context(), model.CollectionArticles, articleID)
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("hero article: %s (%s)", hero.ItemTitle(), hero.ItemID())
		},
	}

	command.Flags().StringVarP(&articleID, "article-id", "a", "", "article id (required)")

	return command
}

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "edit the section list of an article",
	Example: `  habitat article section add -a <article-id> -H <heading> -p <paragraph>
  habitat article section move -a <article-id> -i 2 -d up
  habitat article section remove -a <article-id> -i 2`,
}

func addSectionCmd() *cobra.Command {
	var articleID string
	var heading string
	var image string
	var paragraphs []string

	var required = []string{"article-id", "paragraph"}

	command := &cobra.Command{
		Use:     "add",
		Short:   "append a section",
		Example: "habitat article section add -a <article-id> -H <heading> -p <paragraph>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			sections, err := newBackend().articles.AddSection(cmd.Context(), articleID, model.Section{
				Heading:    heading,
				Image:      image,
				Paragraphs: paragraphs,
			})
			if err != nil {
				logrus.Error(err)
				return
			}

			renderSections(sections)
		},
	}

	command.Flags().StringVarP(&articleID, "article-id", "a", "", "article id (required)")
	command.Flags().StringVarP(&heading, "heading", "H", "", "section heading")
	command.Flags().StringVarP(&image, "image", "i", "", "section image url")
	command.Flags().StringArrayVarP(&paragraphs, "paragraph", "p", nil, "paragraph text, repeatable (required)")
	command.Flags().SortFlags = false

	return command
}

func removeSectionCmd() *cobra.Command {
	var articleID string
	var index int

	var required = []string{"article-id", "index"}

	command := &cobra.Command{
		Use:   "remove",
		Short: "remove a section",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			sections, err := newBackend().articles.RemoveSection(cmd.Context(), articleID, index)
			if err != nil {
				logrus.Error(err)
				return
			}

			renderSections(sections)
		},
	}

	command.Flags().StringVarP(&articleID, "article-id", "a", "", "article id (required)")
	command.Flags().IntVarP(&index, "index", "i", 0, "section index (required)")
	command.Flags().SortFlags = false

	return command
}

func moveSectionCmd() *cobra.Command {
	var articleID string
	var index int
	var direction string

	var required = []string{"article-id", "index", "direction"}

	command := &cobra.Command{
		Use:     "move",
		Short:   "move a section one step",
		Example: "habitat article section move -a <article-id> -i 2 -d up",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			dir, err := parseDirection(direction)
			if err != nil {
				logrus.Error(err)
				return
			}

			sections, err := newBackend().articles.MoveSection(cmd.Context(), articleID, index, dir)
			if err != nil {
				logrus.Error(err)
				return
			}

			renderSections(sections)
		},
	}

	command.Flags().StringVarP(&articleID, "article-id", "a", "", "article id (required)")
	command.Flags().IntVarP(&index, "index", "i", 0, "section index (required)")
	command.Flags().StringVarP(&direction, "direction", "d", "", "up or down (required)")
	command.Flags().SortFlags = false

	return command
}

func patchSectionCmd() *cobra.Command {
	var articleID string
	var index int
	var heading string
	var image string

	var required = []string{"article-id", "index"}

	command := &cobra.Command{
		Use:   "patch",
		Short: "update section heading or image",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			var patch service.SectionPatch
			if cmd.Flag("heading").Changed {
				patch.Heading = &heading
			}
			if cmd.Flag("image").Changed {
				patch.Image = &image
			}

			sections, err := newBackend().articles.PatchSection(cmd.Context(), articleID, index, patch)
			if err != nil {
				logrus.Error(err)
				return
			}

			renderSections(sections)
		},
	}

	command.Flags().StringVarP(&articleID, "article-id", "a", "", "article id (required)")
	command.Flags().IntVarP(&index, "index", "i", 0, "section index (required)")
	command.Flags().StringVarP(&heading, "heading", "H", "", "new heading")
	command.Flags().StringVarP(&image, "image", "m", "", "new image url")
	command.Flags().SortFlags = false

	return command
}

var paragraphCmd = &cobra.Command{
	Use:   "paragraph",
	Short: "edit paragraphs inside a section",
	Example: `  habitat article paragraph add -a <article-id> -i 0 -c <text>
  habitat article paragraph remove -a <article-id> -i 0 -j 1
  habitat article paragraph move -a <article-id> -i 0 -j 1 -d down`,
}

func addParagraphCmd() *cobra.Command {
	var articleID string
	var section int
	var text string

	var required = []string{"article-id", "section", "content"}

	command := &cobra.Command{
		Use:   "add",
		Short: "append a paragraph to a section",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			sections, err := newBackend().articles.AddParagraph(cmd.Context(), articleID, section, text)
			if err != nil {
				logrus.Error(err)
				return
			}

			renderSections(sections)
		},
	}

	command.Flags().StringVarP(&articleID, "article-id", "a", "", "article id (required)")
	command.Flags().IntVarP(&section, "section", "i", 0, "section index (required)")
	command.Flags().StringVarP(&text, "content", "c", "", "paragraph text (required)")
	command.Flags().SortFlags = false

	return command
}

func removeParagraphCmd() *cobra.Command {
	var articleID string
	var section int
	var index int

	var required = []string{"article-id", "section", "index"}

	command := &cobra.Command{
		Use:   "remove",
		Short: "remove a paragraph from a section",
		Long: `Remove a paragraph from a section.

A section always keeps at least one paragraph; removing the last one fails.`,
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			sections, err := newBackend().articles.RemoveParagraph(cmd.Context(), articleID, section, index)
			if err != nil {
				logrus.Error(err)
				return
			}

			renderSections(sections)
		},
	}

	command.Flags().StringVarP(&articleID, "article-id", "a", "", "article id (required)")
	command.Flags().IntVarP(&section, "section", "i", 0, "section index (required)")
	command.Flags().IntVarP(&index, "index", "j", 0, "paragraph index (required)")
	command.Flags().SortFlags = false

	return command
}

func replaceParagraphCmd() *cobra.Command {
	var articleID string
	var section int
	var index int
	var text string

	var required = []string{"article-id", "section", "index", "content"}

	command := &cobra.Command{
		Use:   "replace",
		Short: "replace the text of a paragraph",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			sections, err := newBackend().articles.ReplaceParagraph(cmd.Context(), articleID, section, index, text)
			if err != nil {
				logrus.Error(err)
				return
			}

			renderSections(sections)
		},
	}

	command.Flags().StringVarP(&articleID, "article-id", "a", "", "article id (required)")
	command.Flags().IntVarP(&section, "section", "i", 0, "section index (required)")
	command.Flags().IntVarP(&index, "index", "j", 0, "paragraph index (required)")
	command.Flags().StringVarP(&text, "content", "c", "", "new paragraph text (required)")
	command.Flags().SortFlags = false

	return command
}

func moveParagraphCmd() *cobra.Command {
	var articleID string
	var section int
	var index int
	var direction string

	var required = []string{"article-id", "section", "index", "direction"}

	command := &cobra.Command{
		Use:   "move",
		Short: "move a paragraph one step within its section",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			dir, err := parseDirection(direction)
			if err != nil {
				logrus.Error(err)
				return
			}

			sections, err := newBackend().articles.MoveParagraph(cmd.Context(), articleID, section, index, dir)
			if err != nil {
				logrus.Error(err)
				return
			}

			renderSections(sections)
		},
	}

	command.Flags().StringVarP(&articleID, "article-id", "a", "", "article id (required)")
	command.Flags().IntVarP(&section, "section", "i", 0, "section index (required)")
	command.Flags().IntVarP(&index, "index", "j", 0, "paragraph index (required)")
	command.Flags().StringVarP(&direction, "direction", "d", "", "up or down (required)")
	command.Flags().SortFlags = false

	return command
}

func renderSections(sections []model.Section) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Index", "Heading", "Paragraphs"})
	for i, section := range sections {
		table.Append([]string{fmt.Sprintf("%d", i), section.Heading, fmt.Sprintf("%d", len(section.Paragraphs))})
	}
	table.Render()
}
