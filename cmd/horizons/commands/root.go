package commands

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"horizons/internal/clients"
	"horizons/internal/config"
	"horizons/internal/naif"
	"horizons/internal/service"
)

var (
	horizonsURL string
	timeout     time.Duration

	cfg          *config.Config
	ephemerisSvc service.EphemerisService
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "horizons",
		Short:        "Query JPL Horizons for state vectors",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg = config.Load()

			designators, err := naif.Default()
			if err != nil {
				return err
			}

			clientCfg := cfg.HorizonsClientConfig()
			if horizonsURL != "" {
				clientCfg.BaseURL = horizonsURL
			}
			if timeout > 0 {
				clientCfg.Timeout = timeout
			}

			ephemerisSvc = service.NewEphemerisService(designators, clients.NewHorizonsClient(clientCfg), cfg.QueryDefaults())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&horizonsURL, "url", "", "Horizons API URL (default $HORIZONS_URL or "+clients.DefaultHorizonsURL+")")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout (default $HORIZONS_TIMEOUT or 60s)")

	root.AddCommand(ephemerisCmd(), naifCmd())
	return root
}
