package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/anlek/mathweave/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathweave",
	Short: "Curriculum-constrained math problem service",
	Long:  "Mathweave generates Primary 5 math word problems and streams AI tutoring feedback on submitted answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func Execute() error {
	// A .env file is a convenience for local runs; absence is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHWEAVE_DB env var)")
	rootCmd.Flags().String("addr", ":8080", "Listen address for the HTTP server")
	rootCmd.Flags().Bool("dev", false, "Use human-readable development logging")

	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHWEAVE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
