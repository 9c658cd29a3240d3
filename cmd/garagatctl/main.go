// Command garagatctl prints the date windows and slot lists the booking API
// would offer, for checking a garage's hours without a running server, and
// updates a garage's stored hours.
package main

import (
	"fmt"
	"os"
	"time"

	"garagat/models"
	"garagat/services/scheduling"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type scheduleFlags struct {
	tz       string
	now      string
	open     int
	close    int
	interval int
	lead     int
}

func (f *scheduleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.tz, "tz", "Local", "IANA time zone dates are read in")
	cmd.Flags().StringVar(&f.now, "now", "", "Current time as RFC3339 (default: the real clock)")
	cmd.Flags().IntVar(&f.open, "open", scheduling.DefaultHours.StartHour, "Opening hour (0-23)")
	cmd.Flags().IntVar(&f.close, "close", scheduling.DefaultHours.EndHour, "Closing hour (0-23)")
	cmd.Flags().IntVar(&f.interval, "interval", int(scheduling.DefaultInterval/time.Minute), "Slot interval in minutes")
	cmd.Flags().IntVar(&f.lead, "lead", int(scheduling.DefaultLeadTime/time.Minute), "Same-day lead time in minutes")
}

func (f *scheduleFlags) location() (*time.Location, error) {
	loc, err := time.LoadLocation(f.tz)
	if err != nil {
		return nil, fmt.Errorf("invalid --tz %q: %w", f.tz, err)
	}
	return loc, nil
}

func (f *scheduleFlags) clock(loc *time.Location) (time.Time, error) {
	if f.now == "" {
		return time.Now().In(loc), nil
	}
	t, err := time.Parse(time.RFC3339, f.now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: %w", f.now, err)
	}
	return t.In(loc), nil
}

func (f *scheduleFlags) policy() (scheduling.Policy, error) {
	return scheduling.NewPolicy(
		models.OperatingHours{StartHour: f.open, EndHour: f.close},
		time.Duration(f.interval)*time.Minute,
		time.Duration(f.lead)*time.Minute,
	)
}

func newSlotsCmd() *cobra.Command {
	var (
		flags scheduleFlags
		date  string
	)
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List the bookable start times for a date",
		Example: `  garagatctl slots --date 2024-06-08 --now 2024-06-08T20:15:00+04:00 --tz Asia/Dubai
  garagatctl slots --date 2024-06-09 --open 9 --close 18 --interval 60`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := flags.location()
			if err != nil {
				return err
			}
			now, err := flags.clock(loc)
			if err != nil {
				return err
			}
			policy, err := flags.policy()
			if err != nil {
				return err
			}
			day := scheduling.NormalizeDay(now)
			if date != "" {
				if day, err = time.ParseInLocation(dateLayout, date, loc); err != nil {
					return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", date)
				}
			}

			slots := scheduling.TimeSlots(policy.Slots(day, now))
			out := cmd.OutOrStdout()
			if len(slots) == 0 {
				fmt.Fprintln(out, "No available times for this date")
				return nil
			}
			for _, s := range slots {
				fmt.Fprintln(out, s.Label)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default: today)")
	return cmd
}

func newWindowCmd() *cobra.Command {
	var (
		flags scheduleFlags
		pages int
	)
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the 7-day date window, optionally paged forward or back",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := flags.location()
			if err != nil {
				return err
			}
			now, err := flags.clock(loc)
			if err != nil {
				return err
			}
			w := scheduling.NewDateWindow(now)
			dir := scheduling.Forward
			if pages < 0 {
				dir, pages = scheduling.Backward, -pages
			}
			for i := 0; i < pages; i++ {
				w = scheduling.Shift(w, dir)
			}
			out := cmd.OutOrStdout()
			for _, d := range w.Dates() {
				fmt.Fprintln(out, d.Format("Mon Jan 2"))
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&pages, "pages", 0, "Weeks to page; negative pages backward")
	return cmd
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "garagatctl",
		Short:         "Inspect booking date windows and time slots, and manage garage hours",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSlotsCmd(), newWindowCmd(), newHoursCmd(openProviderRepo))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
