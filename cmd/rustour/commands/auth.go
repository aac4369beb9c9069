package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login [email]",
		Short: "Sign in and persist the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sess.SignIn(cmd.Context(), args[0], password); err != nil {
				return err
			}
			snap := sess.Snapshot()
			if snap.User != nil {
				fmt.Printf("Signed in as %s\n", snap.User.FullName())
			} else {
				fmt.Println("Signed in")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func registerCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "register [full name] [email]",
		Short: "Create an account and sign in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sess.Register(cmd.Context(), args[0], args[1], password); err != nil {
				return err
			}
			fmt.Println("Account created, signed in")
			printNotices()
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the session and the persisted token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess.SignOut()
			fmt.Println("Signed out")
			return nil
		},
	}
}
