package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"agendagol-cli/api"
)

func fieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Browse and manage fields",
	}

	cmd.AddCommand(fieldsListCmd())
	cmd.AddCommand(fieldsShowCmd())
	cmd.AddCommand(fieldsCreateCmd())
	cmd.AddCommand(fieldsUpdateCmd())
	cmd.AddCommand(fieldsDeleteCmd())
	return cmd
}

func fieldsListCmd() *cobra.Command {
	var all bool
	var skip int
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := api.FieldListOptions{Skip: skip, Limit: limit}
			if !all {
				active := true
				opts.IsActive = &active
			}

			list, err := client.Fields(context.Background(), opts)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(list)
			}

			if len(list.Fields) == 0 {
				fmt.Println("No fields found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLOCATION\tCAPACITY\tPRICE/HOUR\tHOURS\tACTIVE")
			for _, field := range list.Fields {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s-%s\t%t\n",
					field.ID, field.Name, field.Location, field.Capacity,
					formatCOP(field.PricePerHour), field.OpeningTime, field.ClosingTime, field.IsActive)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive fields")
	cmd.Flags().IntVar(&skip, "skip", 0, "Pagination offset")
	cmd.Flags().IntVar(&limit, "limit", 50, "Page size")
	return cmd
}

func fieldsShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show field detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid field id %q", args[0])
			}

			field, err := client.Field(context.Background(), id)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(field)
			}

			fmt.Printf("%s (#%d)\n", field.Name, field.ID)
			fmt.Printf("Location:   %s\n", field.Location)
			fmt.Printf("Capacity:   %d players\n", field.Capacity)
			fmt.Printf("Price/hour: %s\n", formatCOP(field.PricePerHour))
			fmt.Printf("Open:       %s-%s\n", field.OpeningTime, field.ClosingTime)
			fmt.Printf("Active:     %t\n", field.IsActive)
			if field.Description != "" {
				fmt.Printf("About:      %s\n", field.Description)
			}
			return nil
		},
	}
	return cmd
}

func fieldsCreateCmd() *cobra.Command {
	var payload api.FieldCreateRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a field (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			if payload.Name == "" || payload.Location == "" {
				return fmt.Errorf("--name and --location are required")
			}
			if payload.PricePerHour <= 0 {
				return fmt.Errorf("--price must be positive")
			}

			field, err := client.CreateField(context.Background(), payload)
			if err != nil {
				return err
			}

			fmt.Printf("Created field %s (#%d).\n", field.Name, field.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&payload.Name, "name", "", "Field name")
	cmd.Flags().StringVar(&payload.Location, "location", "", "Field location")
	cmd.Flags().IntVar(&payload.Capacity, "capacity", 10, "Player capacity")
	cmd.Flags().Float64Var(&payload.PricePerHour, "price", 0, "Price per hour")
	cmd.Flags().StringVar(&payload.Description, "description", "", "Description")
	cmd.Flags().StringVar(&payload.OpeningTime, "opens", "08:00", "Opening time (HH:MM)")
	cmd.Flags().StringVar(&payload.ClosingTime, "closes", "22:00", "Closing time (HH:MM)")
	return cmd
}

func fieldsUpdateCmd() *cobra.Command {
	var name string
	var location string
	var price float64
	var capacity int
	var active string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a field (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid field id %q", args[0])
			}

			payload := api.FieldUpdateRequest{}
			if cmd.Flags().Changed("name") {
				payload.Name = &name
			}
			if cmd.Flags().Changed("location") {
				payload.Location = &location
			}
			if cmd.Flags().Changed("price") {
				payload.PricePerHour = &price
			}
			if cmd.Flags().Changed("capacity") {
				payload.Capacity = &capacity
			}
			if cmd.Flags().Changed("active") {
				value, err := strconv.ParseBool(active)
				if err != nil {
					return fmt.Errorf("--active must be true or false")
				}
				payload.IsActive = &value
			}

			field, err := client.UpdateField(context.Background(), id, payload)
			if err != nil {
				return err
			}

			fmt.Printf("Updated field %s (#%d).\n", field.Name, field.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Field name")
	cmd.Flags().StringVar(&location, "location", "", "Field location")
	cmd.Flags().Float64Var(&price, "price", 0, "Price per hour")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Player capacity")
	cmd.Flags().StringVar(&active, "active", "", "Active flag (true/false)")
	return cmd
}

func fieldsDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a field (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid field id %q", args[0])
			}

			if !yes && !confirm(fmt.Sprintf("Delete field #%d? This cannot be undone", id)) {
				fmt.Println("Aborted.")
				return nil
			}

			if err := client.DeleteField(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted field #%d.\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
