package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rustour/internal/domain/models"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the signed-in profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess.LoadCurrentUser(cmd.Context())
			snap := sess.Snapshot()
			if snap.User == nil {
				fmt.Printf("session: %s, no profile loaded\n", snap.State)
				return nil
			}
			u := snap.User
			fmt.Printf("#%d %s <%s> role=%s\n", u.ID, u.FullName(), u.Email, u.Role)
			return nil
		},
	}
	cmd.AddCommand(profileUpdateCmd())
	return cmd
}

func profileUpdateCmd() *cobra.Command {
	var firstName, lastName, email string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update name and email; unset flags keep current values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := sess.Snapshot()
			draft := models.User{}
			if snap.User != nil {
				draft = *snap.User
			}
			if cmd.Flags().Changed("first") {
				draft.FirstName = firstName
			}
			if cmd.Flags().Changed("last") {
				draft.LastName = lastName
			}
			if cmd.Flags().Changed("email") {
				draft.Email = email
			}

			if err := sess.UpdateProfile(cmd.Context(), draft); err != nil {
				return err
			}
			fmt.Println("Profile updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first", "", "first name")
	cmd.Flags().StringVar(&lastName, "last", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	return cmd
}
