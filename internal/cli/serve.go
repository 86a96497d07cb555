package cli

import (
	"github.com/spf13/cobra"

	"github.com/partbench/partbench/internal/server"
	"github.com/partbench/partbench/pkg/store"
)

// newServeCmd creates the serve command.
func newServeCmd(configPath *string) *cobra.Command {
	var (
		addr      string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the craft HTTP API",
		Long: `Run the craft HTTP API.

Crafts are stored in memory by default; configure a redis address (via
--redis or the [server.redis] config section) for storage that survives
restarts and can be shared between instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if redisAddr != "" {
				cfg.Server.Redis.Addr = redisAddr
			}

			var st store.Store
			if cfg.Server.Redis.Addr != "" {
				rs, err := store.NewRedis(cmd.Context(), store.RedisConfig{
					Addr:     cfg.Server.Redis.Addr,
					Password: cfg.Server.Redis.Password,
					DB:       cfg.Server.Redis.DB,
				})
				if err != nil {
					return err
				}
				defer rs.Close()
				st = rs
				logger.Info("using redis craft store", "addr", cfg.Server.Redis.Addr)
			} else {
				st = store.NewMemory()
				logger.Info("using in-memory craft store")
			}

			return server.New(st, logger).ListenAndServe(cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the craft store")
	return cmd
}
