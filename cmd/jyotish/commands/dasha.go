package commands

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/engine/dasha"
	"go.trai.ch/jyotish/internal/ui/style"
	"go.trai.ch/zerr"
)

// dashaView is the JSON shape of the dasha command.
type dashaView struct {
	Timeline    []domain.DashaPeriod `json:"timeline"`
	Active      domain.ActiveDasha   `json:"active"`
	Antardashas []domain.DashaPeriod `json:"antardashas"`
}

func (c *CLI) newDashaCmd() *cobra.Command {
	var (
		birth birthFlags
		at    string
	)

	cmd := &cobra.Command{
		Use:   "dasha",
		Short: "Show the Vimshottari dasha timeline of a person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := birth.request()
			if err != nil {
				return err
			}
			profile, err := c.app.GetFixedBirthData(cmd.Context(), req)
			if err != nil {
				return err
			}

			active := profile.CurrentDasha
			if at != "" {
				when, err := time.Parse(dateLayout, at)
				if err != nil {
					return zerr.With(errInvalidFlag, "flag", "at")
				}
				active, err = dasha.Active(profile.Timeline, when)
				if err != nil {
					return err
				}
			}

			view := dashaView{
				Timeline:    profile.Timeline,
				Active:      active,
				Antardashas: dasha.Antardashas(active.Mahadasha),
			}
			if jsonMode(cmd) {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			renderDasha(newRenderer(cmd.OutOrStdout()), view)
			return nil
		},
	}

	birth.register(cmd, "person")
	birth.registerSettings(cmd)
	cmd.Flags().StringVar(&at, "at", "", "Report the periods running on this date (YYYY-MM-DD) instead of today")
	return cmd
}

func renderDasha(r *renderer, v dashaView) {
	r.heading("Vimshottari dasha at %s", v.Active.At.Format(dateLayout))
	rows := make([][]string, 0, len(v.Timeline))
	for _, p := range v.Timeline {
		rows = append(rows, []string{marker(r, p.Lord == v.Active.Mahadasha.Lord && p.Start.Equal(v.Active.Mahadasha.Start)), p.Lord.Title(), dateLabel(p)})
	}
	r.table([]string{"", "Mahadasha", "Period"}, rows)
	r.blank()

	r.heading("%s antardashas", v.Active.Mahadasha.Lord.Title())
	rows = rows[:0]
	for _, p := range v.Antardashas {
		rows = append(rows, []string{marker(r, p.Start.Equal(v.Active.Antardasha.Start)), p.Lord.Title(), dateLabel(p)})
	}
	r.table([]string{"", "Antardasha", "Period"}, rows)
	r.field("Progress", strconv.FormatFloat(v.Active.Antardasha.Progress*100, 'f', 1, 64)+"%")
}

func marker(r *renderer, active bool) string {
	if active {
		return r.paint(style.Good, style.Dot)
	}
	return style.Circle
}
