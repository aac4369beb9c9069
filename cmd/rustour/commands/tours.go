package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rustour/internal/domain/models"
	"rustour/internal/utils"
)

func toursCmd() *cobra.Command {
	var city string

	cmd := &cobra.Command{
		Use:   "tours",
		Short: "List the tour catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := catalog.Load(cmd.Context()); err != nil {
				return err
			}

			tours := catalog.FilterByCity(city)
			fmt.Printf("cities: %s\n", strings.Join(catalog.CityTabs(), ", "))
			printTours(tours)
			return nil
		},
	}
	cmd.Flags().StringVar(&city, "city", "", "filter by derived city tab")
	return cmd
}

func searchCmd() *cobra.Command {
	var criteria models.SearchCriteria

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search tours on the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if criteria.Adults < 1 {
				criteria.Adults = 1
			}
			results, err := catalog.Search(cmd.Context(), criteria)
			if err != nil {
				return err
			}
			printTours(results)
			return nil
		},
	}
	cmd.Flags().StringVar(&criteria.City, "city", "", "destination city")
	cmd.Flags().StringVar(&criteria.FromDate, "from", "", "earliest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&criteria.ToDate, "to", "", "latest date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&criteria.Adults, "adults", 1, "number of adults")
	cmd.Flags().IntVar(&criteria.Rooms, "rooms", 0, "number of rooms")
	return cmd
}

func printTours(tours []models.Tour) {
	if len(tours) == 0 {
		fmt.Println("no tours")
		return
	}
	for _, t := range tours {
		fmt.Printf("#%d %s (%s) %.1f/5 (%d) %d days, adult %s / child %s\n",
			t.ID, t.Title, t.Country, t.RatingValue, t.RatingCount,
			t.DurationDays, utils.FormatMoney(t.PricePerAdult), utils.FormatMoney(t.PricePerChild))
	}
}
