package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/config"
	"github.com/example/hotel-reservations/internal/domain/hotel"
)

func newHotelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotel",
		Short: "Manage hotels and their room inventory",
	}
	cmd.AddCommand(newHotelAddCmd())
	cmd.AddCommand(newHotelListCmd())
	cmd.AddCommand(newHotelModifyCmd())
	cmd.AddCommand(newHotelDeleteCmd())
	return cmd
}

func newHotelAddCmd() *cobra.Command {
	var (
		id, name, location string
		totalRooms         int
	)

	c := &cobra.Command{
		Use:   "add",
		Short: "Create a hotel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if totalRooms < 0 {
				return fmt.Errorf("--total-rooms must be >= 0")
			}
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

			h, err := hotel.NewRepository(store).Create(ctx, id, name, location, totalRooms)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "created hotel %q (%s, %d rooms)\n", h.ID, h.Name, h.TotalRooms)
			return nil
		},
	}

	c.Flags().StringVar(&id, "id", "", "hotel id")
	c.Flags().StringVar(&name, "name", "", "hotel name")
	c.Flags().StringVar(&location, "location", "", "hotel location")
	c.Flags().IntVar(&totalRooms, "total-rooms", 0, "number of rooms")
	_ = c.MarkFlagRequired("id")
	_ = c.MarkFlagRequired("name")
	_ = c.MarkFlagRequired("total-rooms")
	return c
}

func newHotelListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List hotels",
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

			hotels, err := hotel.NewRepository(store).GetAll(ctx)
			if err != nil {
				return err
			}
			for _, h := range hotels {
				fmt.Fprintf(os.Stdout, "id=%s name=%q location=%q rooms=%d/%d available\n",
					h.ID, h.Name, h.Location, h.AvailableRooms, h.TotalRooms)
			}
			return nil
		},
	}
}

func newHotelModifyCmd() *cobra.Command {
	var (
		id, name, location string
		totalRooms         int
	)

	c := &cobra.Command{
		Use:   "modify",
		Short: "Update fields of an existing hotel",
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

			var rooms *int
			if cmd.Flags().Changed("total-rooms") {
				if totalRooms < 0 {
					return fmt.Errorf("--total-rooms must be >= 0")
				}
				rooms = &totalRooms
			}
			h, err := hotel.NewRepository(store).Modify(ctx, id,
				changedString(cmd, "name", &name),
				changedString(cmd, "location", &location),
				rooms,
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "updated hotel %q (%s, %d/%d rooms available)\n",
				h.ID, h.Name, h.AvailableRooms, h.TotalRooms)
			return nil
		},
	}

	c.Flags().StringVar(&id, "id", "", "hotel id")
	c.Flags().StringVar(&name, "name", "", "new hotel name")
	c.Flags().StringVar(&location, "location", "", "new hotel location")
	c.Flags().IntVar(&totalRooms, "total-rooms", 0, "new number of rooms")
	_ = c.MarkFlagRequired("id")
	return c
}

func newHotelDeleteCmd() *cobra.Command {
	var id string

	c := &cobra.Command{
		Use:   "delete",
		Short: "Delete a hotel",
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

			if err := hotel.NewRepository(store).Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "deleted hotel %q\n", id)
			return nil
		},
	}

	c.Flags().StringVar(&id, "id", "", "hotel id")
	_ = c.MarkFlagRequired("id")
	return c
}
