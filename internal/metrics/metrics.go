package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Farm Metrics
var (
	CropsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsPlanted,
			Help: HelpTextCropsPlanted,
		},
		[]string{LabelCropType},
	)

	CropsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsHarvested,
			Help: HelpTextCropsHarvested,
		},
		[]string{LabelCropType},
	)

	HarvestPayout = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvestPayout,
			Help: HelpTextHarvestPayout,
		},
		[]string{LabelCropType},
	)

	ReconcilePasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReconcilePasses,
			Help: HelpTextReconcilePasses,
		},
		[]string{LabelResult},
	)

	ReconcileUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReconcileUpdates,
			Help: HelpTextReconcileUpdates,
		},
	)

	ReconcileDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameReconcileDuration,
			Help:    HelpTextReconcileDuration,
			Buckets: prometheus.DefBuckets,
		},
	)

	NotificationsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsEmitted,
			Help: HelpTextNotificationsEmitted,
		},
		[]string{LabelKind},
	)
)

// Market Metrics
var (
	MarketTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMarketTicks,
			Help: HelpTextMarketTicks,
		},
		[]string{LabelResult},
	)

	MarketPrice = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameMarketPrice,
			Help: HelpTextMarketPrice,
		},
		[]string{LabelCropType},
	)

	ProduceSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProduceSold,
			Help: HelpTextProduceSold,
		},
		[]string{LabelCropType},
	)

	SaleEarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaleEarnings,
			Help: HelpTextSaleEarnings,
		},
		[]string{LabelCropType},
	)
)
