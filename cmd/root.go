package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/config"
	"github.com/example/hotel-reservations/internal/storage"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hotelctl",
		Short: "Manage hotels, customers and room reservations over a document store",
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newCustomerCmd())
	root.AddCommand(newHotelCmd())
	root.AddCommand(newReservationCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore builds the configured document store. The returned closer is a
// no-op for the file backend.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, func(), error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		ps, err := storage.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := ps.Migrate(ctx); err != nil {
			ps.Close()
			return nil, nil, err
		}
		return ps, ps.Close, nil
	default:
		return storage.NewFileStore(cfg.CollectionPaths()), func() {}, nil
	}
}
