package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/showdeck/internal/cli/formatter"
	"github.com/alexanderramin/showdeck/internal/schedule"
	"github.com/alexanderramin/showdeck/internal/timeutil"
	"github.com/spf13/cobra"
)

func newAgendaCmd(app *App) *cobra.Command {
	var dateStr string
	var hourly bool

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Print the meeting agenda for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.Organizer.State()

			day := state.FirstMeetingStart(time.Now())
			if dateStr != "" {
				parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateStr)
				}
				day = parsed
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(timeutil.FormatDate(day)))

			if hourly {
				fmt.Fprintln(out, formatter.FormatHourly(schedule.HourSlots(state.Meetings, day)))
				return nil
			}

			meetings := schedule.MeetingsOn(state.Meetings, day)
			fmt.Fprintln(out, formatter.FormatAgenda(meetings))
			if len(meetings) > 0 {
				fmt.Fprintln(out, formatter.FormatDetails(meetings))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "day to show (YYYY-MM-DD); defaults to the first meeting's day")
	cmd.Flags().BoolVar(&hourly, "hourly", false, "show the hourly grid instead of the agenda list")
	return cmd
}
