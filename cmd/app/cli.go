package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vbls/standconsole/internal/config"
	"github.com/vbls/standconsole/internal/pkg/jwthelper"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "standconsole",
	Short:         "Admin API for lifeguard stands and afternoon presets",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Start(configPath)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Migrate(configPath)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the baseline stands and afternoon presets",
	Long: `Upserts the baseline stands, then writes every afternoon preset
with all stands selected. Locked stands are stored as disabled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Seed(cmd.Context(), configPath)
	},
}

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print an admin bearer token signed with the configured key",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to initialize config -> %w", err)
		}

		token, err := jwthelper.GenerateToken([]byte(conf.API.JWTSigningKey), tokenSubject, jwthelper.RoleAdmin, tokenTTL)
		if err != nil {
			return fmt.Errorf("failed to sign token -> %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the YAML config file")

	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "Subject claim of the token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime, 0 for no expiry")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
}

// Execute runs the CLI. Without a subcommand it serves the API.
func Execute() error {
	rootCmd.RunE = serveCmd.RunE
	return rootCmd.Execute()
}
