package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	appschema "github.com/xiebiao/library/internal/application/schema"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
)

// openDB 只连接不建表,由调用方决定是否迁移
func (c *cli) openDB() (*gorm.DB, func(), error) {
	db, err := rdb.Open(c.cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = rdb.Close(db) }, nil
}

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "按依赖顺序建表(可重复执行)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, closeDB, err := c.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			result, err := appschema.NewInitializeUseCase(rdb.NewMigrator(db)).Execute(cmd.Context())
			if err != nil {
				return err
			}
			for _, table := range result.Tables {
				fmt.Fprintln(cmd.OutOrStdout(), table)
			}
			return nil
		},
	}
}

func newSeedCmd(c *cli) *cobra.Command {
	var skipAssociations bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "写入初始馆藏并建立图书关联",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, closeDB, err := c.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			seedRepo := rdb.NewSeedRepository(db)
			txm := rdb.NewTxManager(db)

			populated, err := appschema.NewPopulateUseCase(seedRepo, txm).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "新增记录: %d\n", populated.Created)

			if skipAssociations {
				return nil
			}
			linked, err := appschema.NewAssociateUseCase(seedRepo, txm).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "新增关联: %d\n", linked.Linked)
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipAssociations, "skip-associations", false, "只写入记录,不建立作者/类型关联")
	return cmd
}
