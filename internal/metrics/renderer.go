package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shenikar/incident_board/internal/projection"
)

// Renderer выставляет состояние доски в виде метрик Prometheus.
// Получает те же представления, что и остальные потребители, после каждой перерисовки.
type Renderer struct {
	incidents   prometheus.Gauge
	verified    prometheus.Gauge
	ticker      prometheus.Gauge
	feed        prometheus.Gauge
	markers     *prometheus.GaugeVec
	moderation  *prometheus.GaugeVec
	renderCount *prometheus.CounterVec
}

// NewRenderer регистрирует метрики в reg
func NewRenderer(reg prometheus.Registerer) *Renderer {
	r := &Renderer{
		incidents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "incident_board",
			Name:      "incidents",
			Help:      "Number of incidents currently on the board.",
		}),
		verified: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "incident_board",
			Name:      "verified_incidents",
			Help:      "Number of incidents verified at least once.",
		}),
		ticker: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "incident_board",
			Name:      "ticker_entries",
			Help:      "Number of entries in the high priority ticker.",
		}),
		feed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "incident_board",
			Name:      "feed_cards",
			Help:      "Number of cards in the feed under the active filter.",
		}),
		markers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "incident_board",
			Name:      "map_markers",
			Help:      "Number of map markers under the active filter.",
		}, []string{"approximate"}),
		moderation: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "incident_board",
			Name:      "moderation_votes",
			Help:      "Sum of moderation counters across all incidents.",
		}, []string{"kind"}),
		renderCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "incident_board",
			Name:      "renders_total",
			Help:      "Number of projections handed to render collaborators.",
		}, []string{"projection"}),
	}

	reg.MustRegister(r.incidents, r.verified, r.ticker, r.feed, r.markers, r.moderation, r.renderCount)
	return r
}

func (r *Renderer) RenderTicker(entries []projection.TickerEntry) {
	r.ticker.Set(float64(len(entries)))
	r.renderCount.WithLabelValues("ticker").Inc()
}

func (r *Renderer) RenderFeed(cards []projection.FeedCard) {
	r.feed.Set(float64(len(cards)))
	r.renderCount.WithLabelValues("feed").Inc()
}

func (r *Renderer) RenderModeration(cards []projection.ModerationCard) {
	var verified, flagged uint
	for _, c := range cards {
		verified += c.Verified
		flagged += c.Flagged
	}
	r.moderation.WithLabelValues("verified").Set(float64(verified))
	r.moderation.WithLabelValues("flagged").Set(float64(flagged))
	r.renderCount.WithLabelValues("moderation").Inc()
}

func (r *Renderer) RenderMarkers(markers []projection.Marker) {
	var exact, approximate int
	for _, m := range markers {
		if m.Approximate {
			approximate++
		} else {
			exact++
		}
	}
	r.markers.WithLabelValues("false").Set(float64(exact))
	r.markers.WithLabelValues("true").Set(float64(approximate))
	r.renderCount.WithLabelValues("markers").Inc()
}

func (r *Renderer) RenderSummary(summary projection.Summary) {
	r.incidents.Set(float64(summary.Total))
	r.verified.Set(float64(summary.VerifiedCount))
	r.renderCount.WithLabelValues("summary").Inc()
}
