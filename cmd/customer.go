package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/config"
	"github.com/example/hotel-reservations/internal/domain/customer"
)

func newCustomerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage customers",
	}
	cmd.AddCommand(newCustomerAddCmd())
	cmd.AddCommand(newCustomerListCmd())
	cmd.AddCommand(newCustomerModifyCmd())
	cmd.AddCommand(newCustomerDeleteCmd())
	return cmd
}

func newCustomerAddCmd() *cobra.Command {
	var id, name, email, phone string

	c := &cobra.Command{
		Use:   "add",
		Short: "Create a customer",
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

			cu, err := customer.NewRepository(store).Create(ctx, id, name, email, phone)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "created customer %q (%s)\n", cu.ID, cu.Name)
			return nil
		},
	}

	c.Flags().StringVar(&id, "id", "", "customer id")
	c.Flags().StringVar(&name, "name", "", "full name")
	c.Flags().StringVar(&email, "email", "", "email address")
	c.Flags().StringVar(&phone, "phone", "", "phone number")
	_ = c.MarkFlagRequired("id")
	_ = c.MarkFlagRequired("name")
	return c
}

func newCustomerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List customers",
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

			customers, err := customer.NewRepository(store).GetAll(ctx)
			if err != nil {
				return err
			}
			for _, cu := range customers {
				fmt.Fprintf(os.Stdout, "id=%s name=%q email=%s phone=%s\n", cu.ID, cu.Name, cu.Email, cu.Phone)
			}
			return nil
		},
	}
}

func newCustomerModifyCmd() *cobra.Command {
	var id, name, email, phone string

	c := &cobra.Command{
		Use:   "modify",
		Short: "Update fields of an existing customer",
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

			cu, err := customer.NewRepository(store).Modify(ctx, id,
				changedString(cmd, "name", &name),
				changedString(cmd, "email", &email),
				changedString(cmd, "phone", &phone),
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "updated customer %q (%s)\n", cu.ID, cu.Name)
			return nil
		},
	}

	c.Flags().StringVar(&id, "id", "", "customer id")
	c.Flags().StringVar(&name, "name", "", "new full name")
	c.Flags().StringVar(&email, "email", "", "new email address")
	c.Flags().StringVar(&phone, "phone", "", "new phone number")
	_ = c.MarkFlagRequired("id")
	return c
}

func newCustomerDeleteCmd() *cobra.Command {
	var id string

	c := &cobra.Command{
		Use:   "delete",
		Short: "Delete a customer",
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

			if err := customer.NewRepository(store).Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "deleted customer %q\n", id)
			return nil
		},
	}

	c.Flags().StringVar(&id, "id", "", "customer id")
	_ = c.MarkFlagRequired("id")
	return c
}

// changedString returns v only when the flag was set on the command line, so
// unset flags leave the stored field unchanged.
func changedString(cmd *cobra.Command, flag string, v *string) *string {
	if cmd.Flags().Changed(flag) {
		return v
	}
	return nil
}
