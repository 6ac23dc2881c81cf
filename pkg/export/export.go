// Package export renders ranked optimization results for downstream tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/priyamshah/greenroute/core/optimizer"
)

// WriteJSON writes the ranked results to w in JSON format.
func WriteJSON(w io.Writer, results []optimizer.RankedResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// WriteCSV writes one row per evaluated candidate in ranking-table form.
func WriteCSV(w io.Writer, results []optimizer.RankedResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"result_id", "origin", "destination", "priority",
		"vehicle_id", "route_km", "estimated",
		"time_hours", "total_cost", "co2_kg", "rating",
		"composite_score", "selection",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, res := range results {
		for i, c := range res.Candidates {
			rec := []string{
				res.ID,
				res.Order.Origin,
				res.Order.Destination,
				res.Order.Priority.String(),
				c.Vehicle.ID,
				formatFloat(c.Route.DistanceKm),
				strconv.FormatBool(c.Estimated()),
				formatFloat(c.TimeHours),
				formatFloat(c.Cost.Total),
				formatFloat(c.Emissions.CO2Kg),
				string(c.Emissions.Rating),
				formatFloat(c.Scores.Composite),
				selectionLabel(res, i),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// selectionLabel names the axes on which candidate i won, if any.
func selectionLabel(res optimizer.RankedResult, i int) string {
	label := ""
	add := func(s string) {
		if label != "" {
			label += "+"
		}
		label += s
	}
	if i == res.Balanced {
		add("balanced")
	}
	if i == res.Fastest {
		add("fastest")
	}
	if i == res.Cheapest {
		add("cheapest")
	}
	if i == res.Greenest {
		add("greenest")
	}
	return label
}
