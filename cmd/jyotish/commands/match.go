package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newMatchCmd() *cobra.Command {
	groom := birthFlags{prefix: "groom"}
	bride := birthFlags{prefix: "bride"}

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score the Ashta Koota compatibility of two births",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := groom.request()
			if err != nil {
				return err
			}
			b, err := bride.request()
			if err != nil {
				return err
			}
			match, err := c.app.MatchBirths(cmd.Context(), g, b)
			if err != nil {
				return err
			}
			if jsonMode(cmd) {
				return writeJSON(cmd.OutOrStdout(), match)
			}

			r := newRenderer(cmd.OutOrStdout())
			r.field("Groom", fmt.Sprintf("%s, %s", rashiLabel(match.Groom.Rashi), nakshatraLabel(match.Groom.Nakshatra, match.Groom.Pada)))
			r.field("Bride", fmt.Sprintf("%s, %s", rashiLabel(match.Bride.Rashi), nakshatraLabel(match.Bride.Nakshatra, match.Bride.Pada)))
			r.blank()
			renderCompatibility(r, match.Result)
			return nil
		},
	}

	groom.register(cmd, "groom")
	bride.register(cmd, "bride")

	cmd.AddCommand(c.newScoreCmd())
	return cmd
}

func (c *CLI) newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score GROOM BRIDE",
		Short: "Score two known Moon placements given as rashi:nakshatra:pada[:longitude]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			groom, err := parseMatchProfile(args[0])
			if err != nil {
				return err
			}
			bride, err := parseMatchProfile(args[1])
			if err != nil {
				return err
			}
			res, err := c.app.CalculateCompatibility(cmd.Context(), groom, bride)
			if err != nil {
				return err
			}
			if jsonMode(cmd) {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			renderCompatibility(newRenderer(cmd.OutOrStdout()), res)
			return nil
		},
	}
}

// parseMatchProfile reads "rashi:nakshatra:pada" with an optional sidereal Moon longitude.
func parseMatchProfile(s string) (domain.MatchProfile, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return domain.MatchProfile{}, zerr.With(errInvalidFlag, "profile", s)
	}

	nums := make([]int, 3)
	for i := range nums {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return domain.MatchProfile{}, zerr.With(errInvalidFlag, "profile", s)
		}
		nums[i] = n
	}

	p := domain.MatchProfile{Rashi: nums[0], Nakshatra: nums[1], Pada: nums[2]}
	if len(parts) == 4 {
		l, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return domain.MatchProfile{}, zerr.With(errInvalidFlag, "profile", s)
		}
		p.MoonLongitude = l
	}
	return p, nil
}

func renderCompatibility(r *renderer, res *domain.CompatibilityResult) {
	rows := make([][]string, 0, len(res.Scores))
	for _, s := range res.Scores {
		rows = append(rows, []string{
			string(s.Koota),
			strconv.FormatFloat(s.Score, 'f', -1, 64) + " / " + strconv.FormatFloat(s.Max, 'f', -1, 64),
			s.Detail,
		})
	}
	r.table([]string{"Koota", "Score", "Detail"}, rows)

	verdict := style.Good
	icon := style.Check
	if res.Total < 18 {
		verdict, icon = style.Bad, style.Cross
	}
	r.line("%s %s", r.paint(verdict, icon), r.paint(style.Heading,
		fmt.Sprintf("%s / %s  %s", strconv.FormatFloat(res.Total, 'f', -1, 64),
			strconv.FormatFloat(domain.MaxTotalScore, 'f', -1, 64), levelLabel(res.Level))))

	if len(res.Doshas) > 0 {
		names := make([]string, 0, len(res.Doshas))
		for _, d := range res.Doshas {
			names = append(names, string(d))
		}
		r.field("Doshas", strings.Join(names, ", "))
	}
	r.line("%s", res.Recommendation)
}
