package compare

import (
	"math"
	"strconv"

	"github.com/wildstyl3r/rootfind/internal/utils"
)

var TraceColumns = []string{"step", "method", "k", "a", "b", "f(a)", "f(b)", "x", "f(x)", "f'(x)"}

// TraceRows flattens every recorded step; rows are keyed "method#k".
func (r Report) TraceRows() utils.CSV {
	var rows utils.CSV
	for _, o := range r.Outcomes {
		for _, s := range o.Steps {
			k := strconv.Itoa(s.Iteration)
			rows = append(rows, []string{
				string(s.Method) + "#" + k,
				string(s.Method),
				k,
				fmtFloat(s.Lower),
				fmtFloat(s.Upper),
				fmtFloat(s.FLower),
				fmtFloat(s.FUpper),
				fmtFloat(s.X),
				fmtFloat(s.FX),
				fmtFloat(s.DFX),
			})
		}
	}
	return rows
}

// WriteTrace stores the trace as dir/trace_<ID>.csv and returns the path.
func (r Report) WriteTrace(dir string) (string, error) {
	return utils.WriteAsCSV(r.TraceRows(), dir, "", "trace_"+r.ID, TraceColumns)
}

func fmtFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', 16, 64)
}
