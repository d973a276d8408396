// Package export renders clustering output as CSV for use in
// spreadsheets and downstream SEO tooling.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
)

// clusterHeader is the column order for cluster exports. One row is
// written per cluster member so the file stays flat and filterable.
var clusterHeader = []string{
	"cluster_id",
	"cluster_name",
	"keyword",
	"search_volume",
	"cpc",
	"competition",
	"keyword_difficulty",
	"intent",
	"source",
}

// WriteClusters writes clusters to w as CSV, one row per member.
// Fields containing commas, quotes or newlines are quoted per RFC 4180.
func WriteClusters(w io.Writer, clusters []domain.Cluster) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(clusterHeader); err != nil {
		return err
	}

	for _, c := range clusters {
		for _, k := range c.Members {
			row := []string{
				strconv.Itoa(c.ID),
				c.Name,
				k.Keyword,
				strconv.Itoa(k.SearchVolume),
				strconv.FormatFloat(k.CPC, 'f', 2, 64),
				formatCompetition(k.Competition),
				strconv.Itoa(k.Difficulty),
				k.Intent.String(),
				string(k.Source),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatCompetition renders the [0, 1] competition index as a whole
// percentage, e.g. 0.85 -> "85%".
func formatCompetition(c float64) string {
	return strconv.Itoa(int(c*100+0.5)) + "%"
}
