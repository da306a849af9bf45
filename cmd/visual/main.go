package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gin-task-forms/internal/visual"
)

// 终端演示客户端：调用本地任务 API 与免费 API，并以表格/柱状图输出
func main() {
	_ = godotenv.Load()
	cfg, err := env.ParseAs[visual.Config]()
	if err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(&cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	// 演示结果只看输出，退出码始终为 0
}

func newRootCmd(cfg *visual.Config) *cobra.Command {
	demo := func(cmd *cobra.Command) *visual.Demo { return visual.New(*cfg, cmd.OutOrStdout()) }

	root := &cobra.Command{
		Use:           "visual",
		Short:         "Call the local tasks API and a free posts API, and draw the results",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, _ []string) {
			demo(cmd).Run(cmd.Context())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfg.LocalAPIBase, "api", cfg.LocalAPIBase, "local API base URL")
	pf.StringVar(&cfg.FreeAPIURL, "free-url", cfg.FreeAPIURL, "free posts endpoint")
	pf.IntVar(&cfg.FreeAPILimit, "limit", cfg.FreeAPILimit, "number of free posts to fetch")
	pf.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout")
	pf.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")

	root.AddCommand(
		&cobra.Command{
			Use:   "tasks",
			Short: "Create, list and delete a demo task on the local API",
			Run:   func(cmd *cobra.Command, _ []string) { demo(cmd).LocalCRUD(cmd.Context()) },
		},
		&cobra.Command{
			Use:   "posts",
			Short: "Fetch free posts and draw a per-user chart",
			Run:   func(cmd *cobra.Command, _ []string) { demo(cmd).FreePosts(cmd.Context()) },
		},
	)
	return root
}
