// libctl 图书馆运维命令行
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/pkg/logger"
)

// cli 各子命令共享的配置与日志
type cli struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
	syncLogger func()
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{syncLogger: func() {}}

	root := &cobra.Command{
		Use:           "libctl",
		Short:         "图书馆借阅系统运维工具",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			c.syncLogger()
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "配置文件路径,默认读取./config/config.yaml")

	root.AddCommand(
		newMigrateCmd(c),
		newSeedCmd(c),
		newReportCmd(c),
		newEventsCmd(c),
	)
	return root
}

func (c *cli) setup() error {
	var err error
	if c.configPath != "" {
		c.cfg, err = config.LoadFile(c.configPath)
	} else {
		c.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	l, err := logger.New(logger.Options{
		Level:        c.cfg.Log.Level,
		Format:       "console",
		Output:       "stderr",
		EnableCaller: c.cfg.Log.EnableCaller,
	})
	if err != nil {
		return err
	}
	restore := zap.ReplaceGlobals(l)
	c.logger = l
	c.syncLogger = func() {
		_ = l.Sync()
		restore()
	}
	return nil
}
