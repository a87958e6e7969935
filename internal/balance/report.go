package balance

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/guildsim/internal/errors"
	"github.com/samdwyer/guildsim/internal/game"
)

// Format selects the report encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.InvalidArgumentf("unknown report format %q", name)
	}
}

// Entry is one ranked row of a report.
type Entry struct {
	Rank            int         `json:"rank" yaml:"rank"`
	Composition     []string    `json:"composition" yaml:"composition"`
	MaxFloorReached int         `json:"max_floor_reached" yaml:"max_floor_reached"`
	TotalVictories  int         `json:"total_victories" yaml:"total_victories"`
	FinalScaling    float64     `json:"final_scaling" yaml:"final_scaling"`
	Status          game.Status `json:"status" yaml:"status"`
	Fallbacks       int         `json:"fallbacks" yaml:"fallbacks"`
}

// Report is the serializable form of a Ranking.
type Report struct {
	Seed     int64   `json:"seed" yaml:"seed"`
	FloorCap int     `json:"floor_cap" yaml:"floor_cap"`
	Ranking  []Entry `json:"ranking" yaml:"ranking"`
}

// Report converts the ranking into report rows.
func (r *Ranking) Report() Report {
	rep := Report{
		Seed:     r.Seed,
		FloorCap: r.FloorCap,
		Ranking:  make([]Entry, len(r.Results)),
	}
	for i, res := range r.Results {
		rep.Ranking[i] = Entry{
			Rank:            i + 1,
			Composition:     res.Composition,
			MaxFloorReached: res.MaxFloorReached,
			TotalVictories:  res.TotalVictories,
			FinalScaling:    res.FinalScaling,
			Status:          res.Status,
			Fallbacks:       res.Fallbacks,
		}
	}
	return rep
}

// WriteReport writes the ranking to w in the given format.
func WriteReport(w io.Writer, r *Ranking, format Format) error {
	rep := r.Report()
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		return writeTable(w, rep)
	default:
		return errors.InvalidArgumentf("unknown report format %q", format)
	}
}

func writeTable(w io.Writer, rep Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "RANK\tCOMPOSITION\tMAX FLOOR\tVICTORIES\tFINAL SCALING\tSTATUS\tFALLBACKS\n")
	for _, e := range rep.Ranking {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%.2fx\t%s\t%d\n",
			e.Rank,
			game.Composition(e.Composition),
			e.MaxFloorReached,
			e.TotalVictories,
			e.FinalScaling,
			e.Status,
			e.Fallbacks,
		)
	}
	return tw.Flush()
}
