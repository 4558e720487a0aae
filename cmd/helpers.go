package cmd

import (
	"fmt"
	"strings"

	"github.com/emrgen/habitat/internal/cache"
	"github.com/emrgen/habitat/internal/compress"
	"github.com/emrgen/habitat/internal/config"
	"github.com/emrgen/habitat/internal/page"
	"github.com/emrgen/habitat/internal/queue"
	"github.com/emrgen/habitat/internal/service"
	"github.com/emrgen/habitat/internal/store"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// backend wires the configured store, cache and queue into the services the
// commands call. Built fresh per command invocation.
type backend struct {
	cnf      *config.Config
	store    store.Store
	cache    *cache.Redis
	queue    queue.ContentQueue
	articles *service.ArticleService
	reels    *service.ReelService
	launches *service.NewLaunchService
	tours    *service.HomeTourService
	heroes   *service.HeroService
	home     *service.HomepageService
}

func newBackend() *backend {
	cnf := config.LoadConfig()
	gormStore := store.NewGormStore(config.GetDb(cnf))
	redisCache := cache.NewRedis(cnf.RedisAddr)
	contentQueue := queue.NewRedisQueue(redisCache.Client())

	codec, err := compress.ForName(cnf.Compression)
	if err != nil {
		logrus.Fatalf("unknown compression codec %q: %v", cnf.Compression, err)
	}

	return &backend{
		cnf:      cnf,
		store:    gormStore,
		cache:    redisCache,
		queue:    contentQueue,
		articles: service.NewArticleService(codec, gormStore, contentQueue),
		reels:    service.NewReelService(gormStore, contentQueue),
		launches: service.NewNewLaunchService(gormStore, contentQueue),
		tours:    service.NewHomeTourService(gormStore, contentQueue),
		heroes:   service.NewHeroService(gormStore, redisCache, contentQueue),
		home:     service.NewHomepageService(gormStore, redisCache, contentQueue),
	}
}

func printField(label, value string) {
	color.Set(color.FgCyan)
	fmt.Print(label)
	color.Unset()
	fmt.Printf(": %s\n", value)
}

// pageFooter renders the windowed page numbers, e.g. "1 ... 4 [5] 6 ... 42".
func pageFooter[T any](p page.Page[T]) string {
	parts := make([]string, 0, len(p.Numbers))
	for _, n := range p.Numbers {
		switch {
		case n == page.Ellipsis:
			parts = append(parts, "...")
		case n == p.Page:
			parts = append(parts, fmt.Sprintf("[%d]", n))
		default:
			parts = append(parts, fmt.Sprintf("%d", n))
		}
	}

	return fmt.Sprintf("page %d/%d (%d items)  %s", p.Page, p.TotalPages, p.Total, strings.Join(parts, " "))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// checkMissingFlags checks if the required flags are set and returns ok if they are set
func checkMissingFlags(cmd *cobra.Command, flags []string) bool {
	var missingFlags []string
	var providedFlags []string
	for _, required := range flags {
		if cmd.Flag(required).Changed == false {
			missingFlags = append(missingFlags, required)
		} else {
			value := cmd.Flag(required).Value.String()
			providedFlags = append(providedFlags, fmt.Sprintf("--%s=%s", required, value))
		}
	}

	if len(missingFlags) > 0 {
		var msg string
		for _, f := range missingFlags {
			msg += fmt.Sprintf("--%s ", f)
		}

		color.Red("missing: %s\n", msg)
		if len(providedFlags) > 0 {
			provided := strings.Join(providedFlags, " ")
			color.Green("provide: %s\n", provided)
		}

		cmd.Println("")

		cmd.Usage()

		return true
	}

	return false
}
