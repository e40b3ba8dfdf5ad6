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

func rolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Role and permission administration",
	}

	cmd.AddCommand(rolesListCmd())
	cmd.AddCommand(rolesShowCmd())
	cmd.AddCommand(rolesCreateCmd())
	cmd.AddCommand(rolesUpdateCmd())
	cmd.AddCommand(rolesDeleteCmd())
	cmd.AddCommand(rolesPermissionsCmd())
	cmd.AddCommand(rolesGrantCmd())
	cmd.AddCommand(rolesAssignCmd())
	return cmd
}

func rolesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			roles, err := client.Roles(context.Background())
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(roles)
			}
			if len(roles) == 0 {
				fmt.Println("No roles defined.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
			for _, role := range roles {
				fmt.Fprintf(w, "%d\t%s\t%s\n", role.ID, role.Name, role.Description)
			}
			return w.Flush()
		},
	}
}

func rolesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid role id %q", args[0])
			}
			role, err := client.Role(context.Background(), id)
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(role)
			}
			fmt.Printf("Role #%d: %s\n", role.ID, role.Name)
			if role.Description != "" {
				fmt.Printf("  %s\n", role.Description)
			}
			return nil
		},
	}
}

func rolesCreateCmd() *cobra.Command {
	var name string
	var description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a role",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			role, err := client.CreateRole(context.Background(), api.RoleCreateRequest{
				Name:        name,
				Description: description,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created role %s (#%d).\n", role.Name, role.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Role name")
	cmd.Flags().StringVar(&description, "description", "", "Role description")
	return cmd
}

func rolesUpdateCmd() *cobra.Command {
	var name string
	var description string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid role id %q", args[0])
			}
			var payload api.RoleUpdateRequest
			if cmd.Flags().Changed("name") {
				payload.Name = &name
			}
			if cmd.Flags().Changed("description") {
				payload.Description = &description
			}
			if payload.Name == nil && payload.Description == nil {
				return fmt.Errorf("nothing to update, pass --name or --description")
			}
			role, err := client.UpdateRole(context.Background(), id, payload)
			if err != nil {
				return err
			}
			fmt.Printf("Updated role %s (#%d).\n", role.Name, role.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New role name")
	cmd.Flags().StringVar(&description, "description", "", "New role description")
	return cmd
}

func rolesDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid role id %q", args[0])
			}
			if !yes && !confirm(fmt.Sprintf("Delete role #%d? This cannot be undone", id)) {
				fmt.Println("Aborted.")
				return nil
			}
			if err := client.DeleteRole(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted role #%d.\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}

func rolesPermissionsCmd() *cobra.Command {
	var resource string

	cmd := &cobra.Command{
		Use:   "permissions",
		Short: "List permissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			permissions, err := client.Permissions(context.Background(), resource)
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(permissions)
			}
			if len(permissions) == 0 {
				fmt.Println("No permissions found.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tRESOURCE\tACTION")
			for _, permission := range permissions {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", permission.ID, permission.Name, permission.Resource, permission.Action)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&resource, "resource", "", "Filter by resource")
	return cmd
}

func rolesGrantCmd() *cobra.Command {
	var roleID int
	var permissionID int

	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Grant a permission to a role",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			if roleID <= 0 || permissionID <= 0 {
				return fmt.Errorf("--role and --permission are required")
			}
			if err := client.AddRolePermission(context.Background(), roleID, permissionID); err != nil {
				return err
			}
			fmt.Printf("Granted permission #%d to role #%d.\n", permissionID, roleID)
			return nil
		},
	}

	cmd.Flags().IntVar(&roleID, "role", 0, "Role id")
	cmd.Flags().IntVar(&permissionID, "permission", 0, "Permission id")
	return cmd
}

func rolesAssignCmd() *cobra.Command {
	var userID int
	var roleID int

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign a role to a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			if userID <= 0 || roleID <= 0 {
				return fmt.Errorf("--user and --role are required")
			}
			if err := client.AssignRole(context.Background(), userID, roleID); err != nil {
				return err
			}
			fmt.Printf("Assigned role #%d to user #%d.\n", roleID, userID)
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user", 0, "User id")
	cmd.Flags().IntVar(&roleID, "role", 0, "Role id")
	return cmd
}
