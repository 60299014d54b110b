package stats

import (
	"context"

	"github.com/verte-zerg/typit/internal/model"
	"github.com/verte-zerg/typit/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Records []model.ScoreRecord
	Summary Summary
	Trend   []float64
}

// BuildReport loads persisted history and prepares it for rendering.
func BuildReport(ctx context.Context, st *store.Store, filter model.HistoryFilter) (Report, error) {
	records, err := st.ListScores(ctx, filter)
	if err != nil {
		return Report{}, err
	}
	if filter.Last > 0 && len(records) > filter.Last {
		records = records[len(records)-filter.Last:]
	}
	return Report{
		Records: records,
		Summary: Summarize(records),
		Trend:   WPMSeries(records),
	}, nil
}
