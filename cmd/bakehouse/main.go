// Command bakehouse runs the storefront API server and its maintenance
// commands (migrations, seeding, route listing).
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ovenlight/bakehouse/config"
	_ "github.com/ovenlight/bakehouse/database/migrations"
	"github.com/ovenlight/bakehouse/database/seeders"
	"github.com/ovenlight/bakehouse/internal/server"
	"github.com/ovenlight/bakehouse/pkg/database"
	"github.com/ovenlight/bakehouse/pkg/migration"
)

func main() {
	root := &cobra.Command{
		Use:   "bakehouse",
		Short: "Bakehouse storefront API",
	}

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		rollbackCmd(),
		statusCmd(),
		seedCmd(),
		routeListCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run()
		},
	}
}

func withDB(run func(r *migration.Runner) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		if err := database.Connect(); err != nil {
			return err
		}
		return run(migration.New(database.DB))
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run pending database migrations",
		RunE:  withDB(func(r *migration.Runner) error { return r.Run() }),
	}
}

func rollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Roll back the last migration batch",
		RunE:  withDB(func(r *migration.Runner) error { return r.Rollback() }),
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "Show migration status",
		RunE:  withDB(func(r *migration.Runner) error { return r.Status() }),
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with starter data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			if err := database.Connect(); err != nil {
				return err
			}
			return seeders.Run(database.DB)
		},
	}
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "List registered routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			if err := database.Connect(); err != nil {
				return err
			}

			r := server.Build(database.DB)

			infos := r.Routes()
			sort.Slice(infos, func(i, j int) bool {
				if infos[i].Path != infos[j].Path {
					return infos[i].Path < infos[j].Path
				}
				return infos[i].Method < infos[j].Method
			})

			fmt.Printf("%-8s %-45s %s\n", "METHOD", "PATH", "NAME")
			for _, info := range infos {
				fmt.Printf("%-8s %-45s %s\n", info.Method, info.Path, info.Name)
			}
			return nil
		},
	}
}
