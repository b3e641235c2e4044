package cli

import (
	"tactile-quiz/internal/config"
	"tactile-quiz/internal/database"
	"tactile-quiz/internal/logger"

	"github.com/spf13/cobra"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			if err := logger.Initialize(cfg.Logger); err != nil {
				return err
			}
			defer logger.Sync()

			db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.RunMigrations(db); err != nil {
				return err
			}
			logger.Get().Info("Migrations completed successfully")
			return nil
		},
	}
}
