package commands

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"rustour/internal/services"
	"rustour/internal/utils"
)

func bookCmd() *cobra.Command {
	var (
		dateStr  string
		adults   int
		children int
		roomID   int
	)

	cmd := &cobra.Command{
		Use:   "book [tour-id]",
		Short: "Book a tour for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tourID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid tour id %q", args[0])
			}

			date, err := parseBookDate(dateStr)
			if err != nil {
				return err
			}

			if err := catalog.Load(cmd.Context()); err != nil {
				return err
			}
			var found bool
			for _, t := range catalog.Tours() {
				if t.ID != tourID {
					continue
				}
				found = true
				fmt.Printf("Total: %s\n", utils.FormatMoney(bookings.Quote(t, adults, children)))
				if err := bookings.Create(cmd.Context(), t, date, adults, children, roomID); err != nil {
					return err
				}
				break
			}
			if !found {
				return fmt.Errorf("tour %d not found in catalog", tourID)
			}

			fmt.Println("Booking confirmed")
			printNotices()
			return nil
		},
	}
	cmd.Flags().StringVar(&dateStr, "date", "", "tour date (YYYY-MM-DD or RFC3339)")
	cmd.Flags().IntVar(&adults, "adults", 1, "number of adults")
	cmd.Flags().IntVar(&children, "children", 0, "number of children")
	cmd.Flags().IntVar(&roomID, "room", 0, "room type id")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func bookingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List my bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bookings.LoadMy(cmd.Context())
			list := bookings.Bookings()
			if len(list) == 0 {
				fmt.Println("no bookings")
				return nil
			}
			for _, b := range list {
				fmt.Printf("#%d %s (%s) on %s\n",
					b.ID, b.Tour.Title, b.Tour.Country, utils.FormatHumanDate(b.BookingDate.Time))
			}
			return nil
		},
	}
}

func eticketCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "eticket [booking-id]",
		Short: "Write a booking e-ticket PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookingID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
			}

			bookings.LoadMy(cmd.Context())

			holder := ""
			if snap := sess.Snapshot(); snap.User != nil {
				holder = snap.User.FullName()
			}

			docs := services.DocsService{}
			for _, b := range bookings.Bookings() {
				if b.ID != bookingID {
					continue
				}
				pdf, filename, err := docs.GenerateETicket(b, holder)
				if err != nil {
					return err
				}
				if out == "" {
					out = filename
				}
				if err := os.WriteFile(out, pdf, 0o644); err != nil {
					return err
				}
				fmt.Printf("Wrote %s\n", out)
				return nil
			}
			return fmt.Errorf("booking %d not found", bookingID)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default the generated name)")
	return cmd
}

func parseBookDate(s string) (time.Time, error) {
	if t, err := utils.ParseAPIDate(s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}
