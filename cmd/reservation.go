package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/config"
	"github.com/example/hotel-reservations/internal/domain/customer"
	"github.com/example/hotel-reservations/internal/domain/hotel"
	"github.com/example/hotel-reservations/internal/domain/reservation"
	"github.com/example/hotel-reservations/internal/storage"
)

func newReservationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservation",
		Short: "Create, cancel and inspect reservations",
	}
	cmd.AddCommand(newReservationCreateCmd())
	cmd.AddCommand(newReservationCancelCmd())
	cmd.AddCommand(newReservationGetCmd())
	cmd.AddCommand(newReservationListCmd())
	return cmd
}

func newReservations(store storage.Store) *reservation.Repository {
	return reservation.NewRepository(store, customer.NewRepository(store), hotel.NewRepository(store))
}

func newReservationCreateCmd() *cobra.Command {
	var customerID, hotelID string

	c := &cobra.Command{
		Use:   "create",
		Short: "Book one room at a hotel for a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			ctx := context.Background()
			store, closeStore, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			res, err := newReservations(store).Create(ctx, customerID, hotelID)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "created reservation %s (customer=%s hotel=%s)\n", res.ID, res.CustomerID, res.HotelID)
			return nil
		},
	}

	c.Flags().StringVar(&customerID, "customer-id", "", "customer id")
	c.Flags().StringVar(&hotelID, "hotel-id", "", "hotel id")
	_ = c.MarkFlagRequired("customer-id")
	_ = c.MarkFlagRequired("hotel-id")
	return c
}

func newReservationCancelCmd() *cobra.Command {
	var id string

	c := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a reservation and free its room",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			ctx := context.Background()
			store, closeStore, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := newReservations(store).Cancel(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "cancelled reservation %s\n", id)
			return nil
		},
	}

	c.Flags().StringVar(&id, "id", "", "reservation id")
	_ = c.MarkFlagRequired("id")
	return c
}

func newReservationGetCmd() *cobra.Command {
	var id string

	c := &cobra.Command{
		Use:   "get",
		Short: "Show a single reservation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			ctx := context.Background()
			store, closeStore, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			res, err := newReservations(store).Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "id=%s customer=%s hotel=%s status=%s\n", res.ID, res.CustomerID, res.HotelID, res.Status)
			return nil
		},
	}

	c.Flags().StringVar(&id, "id", "", "reservation id")
	_ = c.MarkFlagRequired("id")
	return c
}

func newReservationListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			ctx := context.Background()
			store, closeStore, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			reservations, err := newReservations(store).GetAll(ctx)
			if err != nil {
				return err
			}
			for _, res := range reservations {
				fmt.Fprintf(os.Stdout, "id=%s customer=%s hotel=%s status=%s\n", res.ID, res.CustomerID, res.HotelID, res.Status)
			}
			return nil
		},
	}
}
