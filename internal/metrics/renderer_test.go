package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/incident_board/internal/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Gauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRenderer(reg)

	r.RenderTicker(make([]projection.TickerEntry, 3))
	r.RenderFeed(make([]projection.FeedCard, 5))
	r.RenderModeration([]projection.ModerationCard{
		{Verified: 2, Flagged: 1},
		{Verified: 1},
	})
	r.RenderMarkers([]projection.Marker{{Approximate: true}, {}, {}})
	r.RenderSummary(projection.Summary{Total: 5, VerifiedCount: 2})

	assert.Equal(t, 3.0, testutil.ToFloat64(r.ticker))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.feed))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.incidents))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.verified))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.moderation.WithLabelValues("verified")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.moderation.WithLabelValues("flagged")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.markers.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.markers.WithLabelValues("true")))
}

func TestRenderer_RenderCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRenderer(reg)

	r.RenderFeed(nil)
	r.RenderFeed(nil)
	r.RenderMarkers(nil)

	expected := `
# HELP incident_board_renders_total Number of projections handed to render collaborators.
# TYPE incident_board_renders_total counter
incident_board_renders_total{projection="feed"} 2
incident_board_renders_total{projection="markers"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "incident_board_renders_total")
	require.NoError(t, err)
}
