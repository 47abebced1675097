package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Row is one instance's record: {Instance, Time heuristic (s), Time
// BnB/BnC (s), Clique size, Clique vertices}.
type Row struct {
	Instance       string
	HeuristicTime  float64
	SearchTime     float64
	CliqueSize     int
	CliqueVertices []int
}

var header = []string{
	"instance",
	"time_heuristic_s",
	"time_search_s",
	"clique_size",
	"clique_vertices",
}

// WriteCSV writes rows as a CSV table with a fixed header, one record per
// row, in the order given.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: writing header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.record()); err != nil {
			return fmt.Errorf("report: writing row %q: %w", r.Instance, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flushing: %w", err)
	}
	return nil
}

func (r Row) record() []string {
	sorted := append([]int(nil), r.CliqueVertices...)
	sort.Ints(sorted)
	vertices := make([]string, len(sorted))
	for i, v := range sorted {
		vertices[i] = strconv.Itoa(v)
	}
	return []string{
		r.Instance,
		strconv.FormatFloat(r.HeuristicTime, 'f', 4, 64),
		strconv.FormatFloat(r.SearchTime, 'f', 4, 64),
		strconv.Itoa(r.CliqueSize),
		strings.Join(vertices, " "),
	}
}
