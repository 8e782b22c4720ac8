package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/markd/markd/internal/config"
	"github.com/markd/markd/internal/post"
	"github.com/markd/markd/internal/post/repository"
	"github.com/markd/markd/internal/server"
	"github.com/markd/markd/internal/store"
	"github.com/markd/markd/internal/store/migrations"
	"github.com/markd/markd/pkg/logger"
	"github.com/markd/markd/pkg/metrics"
)

const banner = `
                       _       _
 _ __ ___   __ _ _ __ | | ____| |
| '_ ' _ \ / _' | '__|| |/ / _' |
| | | | | || (_| | |  |   < (_| |
|_| |_| |_| \__,_|_|  |_|\_\__,_|
`

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore reads the config and opens the database. The caller must close
// the returned handle.
func openStore() (*config.Config, *sqlx.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}
	return cfg, db, nil
}

var rootCmd = &cobra.Command{
	Use:   "markd",
	Short: "Minimal content pipeline: ingest text posts and serve them as HTML",
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the post store schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating data directory: %w", err)
			}
		}

		db, err := store.Open(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()

		if err := migrations.Up(db.DB); err != nil {
			return err
		}
		fmt.Println("Initialization successful!")
		return nil
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <title> <file>",
	Short: "Store one post, reading its body from a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, path := args[0], args[1]

		body, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		_, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := repository.NewSQLiteRepo(db)
		p := post.Post{
			Title:     title,
			CreatedAt: time.Now().Truncate(time.Second),
			Body:      string(body),
		}
		if err := repo.Insert(cmd.Context(), uuid.New().String(), p); err != nil {
			return err
		}

		fmt.Println("Inserted successfully!")
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		metrics.RegisterCollectors(prometheus.DefaultRegisterer)

		r, err := server.New(cfg, db)
		if err != nil {
			return fmt.Errorf("assembling server: %w", err)
		}

		addr := cfg.Server.Host + ":" + cfg.Server.Port
		fmt.Printf("%s\n", banner)
		logger.Infof("Listening on %s", addr)
		if err := r.Run(addr); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(serveCmd)
}
