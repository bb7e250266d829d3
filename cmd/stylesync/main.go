// Command stylesync is the local StyleSync client. It keeps all wardrobe
// state on this machine and talks to a stylesync-server for classification,
// outfit generation and weather.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/stylesync-app/stylesync/internal/apiclient"
	"github.com/stylesync-app/stylesync/internal/store"
)

var (
	serverURL string
	dataDir   string
)

var rootCmd = &cobra.Command{
	Use:   "stylesync",
	Short: "Your wardrobe, organized and styled",
	Long: `StyleSync keeps your wardrobe on this machine and uses a stylesync-server
to classify clothing photos, generate outfit ideas and fetch weather.

Start with:
  stylesync profile set --gender male --location Mumbai
  stylesync wardrobe add photo.jpg
  stylesync today`,
	SilenceUsage: true,
}

func main() {
	// .env is for local dev only, missing file is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:3001", "stylesync-server base URL")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.config/stylesync)")

	rootCmd.AddCommand(wardrobeCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(outfitsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(weatherCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(wearCmd)
	rootCmd.AddCommand(occasionCmd)
}

// newStore opens the local persistence store. STYLESYNC_DATABASE_URL selects
// the Postgres backend for setups that share one wardrobe across machines;
// everything else uses per-key JSON files.
func newStore(ctx context.Context) (*store.Store, error) {
	if databaseURL := os.Getenv("STYLESYNC_DATABASE_URL"); databaseURL != "" {
		backend, err := store.NewPostgresBackend(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return store.New(backend, nil), nil
	}

	if dataDir != "" {
		return store.New(store.NewFileBackend(dataDir), nil), nil
	}

	backend, err := store.DefaultFileBackend()
	if err != nil {
		return nil, fmt.Errorf("opening data directory: %w", err)
	}
	return store.New(backend, nil), nil
}

func newClient() *apiclient.Client {
	return apiclient.New(serverURL)
}
