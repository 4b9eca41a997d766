package cli

import (
	"github.com/riteshp0/DinoKicks/internal/appcontext"
	"github.com/riteshp0/DinoKicks/internal/config"
	"github.com/riteshp0/DinoKicks/internal/seed"
	"github.com/spf13/cobra"
)

// NewSeedCommand loads the dino catalog and quiz into an empty database.
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the catalog and quiz data (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appcontext.NewApplicationContext(config.GetConfig())
			if err != nil {
				return err
			}
			defer app.Shutdown(cmd.Context())

			seeder := seed.NewSeeder(app.ProductRepo, app.QuizRepo, app.Logger)
			return seeder.Run(cmd.Context())
		},
	}
}
