package optimizer

import (
	"fmt"
	"math"
	"strings"
)

// TradeoffStatement quantifies how a specialized winner differs from the
// balanced choice. Deltas are signed, winner minus balanced, in native units.
type TradeoffStatement struct {
	// Axis is "fastest", "cheapest" or "greenest".
	Axis       string
	DeltaHours float64
	DeltaCost  float64
	DeltaCO2Kg float64
	// Estimated is true when the winner rides a synthesized route, so the
	// UI can disclose reduced confidence.
	Estimated bool
	Message   string
}

// Narrate compares the balanced choice against each specialized winner and
// emits one quantified statement per axis that actually differs. Winners
// that coincide with the balanced choice produce no statement; "saves 0 and
// costs 0" is noise, not insight.
func Narrate(r *RankedResult) []TradeoffStatement {
	balanced := r.BalancedCandidate()

	axes := []struct {
		name string
		idx  int
	}{
		{"fastest", r.Fastest},
		{"cheapest", r.Cheapest},
		{"greenest", r.Greenest},
	}

	var statements []TradeoffStatement
	for _, axis := range axes {
		if axis.idx == r.Balanced {
			continue
		}
		winner := &r.Candidates[axis.idx]
		st := TradeoffStatement{
			Axis:       axis.name,
			DeltaHours: winner.TimeHours - balanced.TimeHours,
			DeltaCost:  winner.Cost.Total - balanced.Cost.Total,
			DeltaCO2Kg: winner.Emissions.CO2Kg - balanced.Emissions.CO2Kg,
			Estimated:  winner.Estimated(),
		}
		st.Message = renderStatement(st)
		statements = append(statements, st)
	}
	return statements
}

func renderStatement(st TradeoffStatement) string {
	var parts []string
	parts = append(parts, deltaPhrase(st.DeltaHours, "saves %.1f h", "takes %.1f h longer"))
	parts = append(parts, deltaPhrase(st.DeltaCost, "costs ₹%.0f less", "costs ₹%.0f more"))
	parts = append(parts, deltaPhrase(st.DeltaCO2Kg, "cuts %.1f kg CO₂", "emits %.1f kg more CO₂"))

	msg := fmt.Sprintf("%s option %s than the balanced choice",
		st.Axis, strings.Join(parts, ", "))
	if st.Estimated {
		msg += " (distance estimated)"
	}
	return msg
}

// deltaPhrase renders a signed delta: negative deltas are improvements over
// the balanced choice, positive deltas are penalties.
func deltaPhrase(delta float64, betterFmt, worseFmt string) string {
	if delta <= 0 {
		return fmt.Sprintf(betterFmt, math.Abs(delta))
	}
	return fmt.Sprintf(worseFmt, delta)
}
