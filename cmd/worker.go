package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/emrgen/habitat/internal/jobs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(workerCmd())
}

// workerCmd runs the background maintenance loop: the cron that heals drifted
// homepage documents and the consumer that drops stale cache slots on content
// changes. Runs until interrupted.
func workerCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "worker",
		Short: "run background maintenance jobs",
		Run: func(cmd *cobra.Command, args []string) {
			client := newBackend()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			executor := jobs.NewTaskExecutor([]jobs.CronJob{
				jobs.NewConfigSnapshotTask(client.cnf.SnapshotCron, client.store),
			})
			executor.Run()
			defer executor.Stop()

			invalidator := jobs.NewCacheInvalidator(client.queue, client.cache)
			go func() {
				if err := invalidator.Run(ctx); err != nil && ctx.Err() == nil {
					logrus.Errorf("cache invalidator stopped: %v", err)
				}
			}()

			logrus.Infof("worker started, snapshot schedule %s", client.cnf.SnapshotCron)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop

			logrus.Infof("worker shutting down")
		},
	}

	return command
}
