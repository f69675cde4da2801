// Command medicare runs the pharmacy API server and its maintenance
// commands (migrations, seeding, route listing).
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/medicare/app/routes"
	"github.com/shashiranjanraj/medicare/config"
	_ "github.com/shashiranjanraj/medicare/database/migrations"
	"github.com/shashiranjanraj/medicare/database/seeders"
	"github.com/shashiranjanraj/medicare/internal/server"
	"github.com/shashiranjanraj/medicare/pkg/database"
	"github.com/shashiranjanraj/medicare/pkg/migration"
	"github.com/shashiranjanraj/medicare/pkg/router"
)

func main() {
	root := &cobra.Command{
		Use:   "medicare",
		Short: "Online pharmacy catalog and ordering API",
	}

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		migrateRollbackCmd(),
		migrateStatusCmd(),
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
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run()
		},
	}
}

// withDB loads config, connects the database, and hands off to fn.
func withDB(fn func(*migration.Runner) error) error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := database.Connect(); err != nil {
		return err
	}
	return fn(migration.New(database.DB))
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run all pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(r *migration.Runner) error { return r.Run() })
		},
	}
}

func migrateRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Roll back the last migration batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(r *migration.Runner) error { return r.Rollback() })
		},
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(r *migration.Runner) error { return r.Status() })
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with development data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(r *migration.Runner) error {
				if err := r.Run(); err != nil {
					return err
				}
				return seeders.Run(database.DB)
			})
		},
	}
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "List all registered API routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := router.New()
			routes.Register(r)

			infos := r.Routes()
			sort.Slice(infos, func(i, j int) bool {
				if infos[i].Path == infos[j].Path {
					return infos[i].Method < infos[j].Method
				}
				return infos[i].Path < infos[j].Path
			})

			fmt.Printf("%-7s %-35s %s\n", "Method", "Path", "Name")
			for _, info := range infos {
				fmt.Printf("%-7s %-35s %s\n", info.Method, info.Path, info.Name)
			}
			return nil
		},
	}
}
