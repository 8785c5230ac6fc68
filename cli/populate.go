package cli

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/armory-api/media"
	"github.com/junaidrashid-git/armory-api/notify"
	"github.com/junaidrashid-git/armory-api/populate"
	"github.com/junaidrashid-git/armory-api/services"
	"github.com/spf13/cobra"
)

func populateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "populate",
		Short: "Seed the default users and categories",
		Long: `Create the superadmin and admin users and the default categories.

Records that already exist are left alone, so running it twice changes nothing.
New users get the password from APP_SEED_PASSWORD.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, st, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
			if cfg.SeedPassword == "" {
				return errors.New("APP_SEED_PASSWORD is required to populate")
			}

			n := notify.New(notify.Options{QueueSize: cfg.NotifyQueueSize})
			defer n.Close(context.Background())

			svc := services.New(st, n, media.NewOS(cfg.ImageDir))
			_, err = populate.Run(ctx, svc, cfg.SeedPassword)
			return err
		},
	}
}
