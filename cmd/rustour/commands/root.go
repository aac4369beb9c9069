package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rustour/internal/api"
	"rustour/internal/config"
	"rustour/internal/notify"
	"rustour/internal/services"
	"rustour/internal/session"
	"rustour/internal/tokenstore"
)

var (
	apiBase string
	home    string

	env      config.Env
	client   *api.Client
	relay    *notify.Relay
	sess     *session.Manager
	catalog  *services.TourCatalog
	bookings *services.BookingService
)

func Execute() error {
	root := &cobra.Command{
		Use:           "rustour",
		Short:         "Travel booking client for the RusTour API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			env = config.LoadEnv()
			if apiBase != "" {
				env.APIBase = apiBase
			}
			if home != "" {
				env.Home = home
			}

			client = api.New(env.APIBase, env.HTTPTimeout)
			relay = notify.NewRelay(notify.NewAlerter(env))
			sess = session.NewManager(client, tokenstore.NewFileStore(env.Home), relay)
			catalog = services.NewTourCatalog(client)
			bookings = services.NewBookingService(client, relay)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := sess.Snapshot()
			fmt.Printf("session: %s\n", snap.State)
			if snap.User != nil {
				fmt.Printf("user: %s <%s>\n", snap.User.FullName(), snap.User.Email)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&apiBase, "api", "", "API base URL (default http://localhost:5281/api)")
	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.rustour)")

	root.AddCommand(
		loginCmd(), registerCmd(), logoutCmd(),
		profileCmd(),
		toursCmd(), searchCmd(),
		bookCmd(), bookingsCmd(), eticketCmd(),
		notificationsCmd(),
	)
	return root.Execute()
}
