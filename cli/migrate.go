package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables, collections and unique indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			log.Info().Str("driver", cfg.StoreDriver).Msg("store migrated")
			return nil
		},
	}
}
