package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/jyotish/internal/core/domain"
)

func (c *CLI) newChartCmd() *cobra.Command {
	var birth birthFlags

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Compute the birth chart of a person",
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
			if jsonMode(cmd) {
				return writeJSON(cmd.OutOrStdout(), profile)
			}
			renderChart(newRenderer(cmd.OutOrStdout()), profile)
			return nil
		},
	}

	birth.register(cmd, "person")
	birth.registerSettings(cmd)
	return cmd
}

func renderChart(r *renderer, p *domain.FixedBirthData) {
	r.heading("Birth chart %s", p.Instant.Format(time.RFC3339))
	r.field("Moon", fmt.Sprintf("%s, %s", rashiLabel(p.Rashi), nakshatraLabel(p.Nakshatra, p.Pada)))
	r.field("Ascendant", fmt.Sprintf("%s %s", rashiLabel(p.Chart.Ascendant.Rashi), formatDMS(p.Chart.Ascendant.DegreeInSign)))
	r.field("Ayanamsha", fmt.Sprintf("%s (%s)", formatDegrees(p.Ayanamsha), p.Settings.Reference))
	r.field("Houses", string(p.Chart.HouseSystem))
	r.blank()

	rows := make([][]string, 0, len(domain.Planets))
	for _, planet := range domain.Planets {
		pl, ok := p.Chart.Planets[planet]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			planet.Title(),
			formatDegrees(pl.Longitude),
			pl.Rashi.Name,
			formatDMS(pl.DegreeInSign),
			pl.Nakshatra.Name,
			strconv.Itoa(pl.Pada.Number),
			strconv.Itoa(pl.House),
		})
	}
	r.table([]string{"Planet", "Longitude", "Rashi", "In sign", "Nakshatra", "Pada", "House"}, rows)
	r.blank()

	cur := p.CurrentDasha
	r.field("Dasha", fmt.Sprintf("%s / %s", cur.Mahadasha.Lord.Title(), cur.Antardasha.Lord.Title()))
	r.field("Until", cur.Antardasha.End.Format(dateLayout))
	r.warnings(p.Warnings)
}
