package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Farm metric names
const (
	MetricNameCropsPlanted          = "crops_planted_total"
	MetricNameCropsHarvested        = "crops_harvested_total"
	MetricNameHarvestPayout         = "harvest_payout_coins_total"
	MetricNameReconcilePasses       = "growth_reconcile_passes_total"
	MetricNameReconcileUpdates      = "growth_reconcile_updates_total"
	MetricNameReconcileDuration     = "growth_reconcile_duration_seconds"
	MetricNameNotificationsEmitted  = "notifications_emitted_total"
)

// Market metric names
const (
	MetricNameMarketTicks   = "market_ticks_total"
	MetricNameMarketPrice   = "market_price_coins"
	MetricNameProduceSold   = "produce_sold_total"
	MetricNameSaleEarnings  = "sale_earnings_coins_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Farm metric help text
const (
	HelpTextCropsPlanted         = "Total number of crops planted"
	HelpTextCropsHarvested       = "Total number of crops harvested"
	HelpTextHarvestPayout        = "Total coins paid out by harvests"
	HelpTextReconcilePasses      = "Total number of growth reconciliation passes"
	HelpTextReconcileUpdates     = "Total number of crop stage updates written by reconciliation"
	HelpTextReconcileDuration    = "Growth reconciliation pass duration in seconds"
	HelpTextNotificationsEmitted = "Total number of notifications emitted"
)

// Market metric help text
const (
	HelpTextMarketTicks  = "Total number of market price ticks"
	HelpTextMarketPrice  = "Current market price per crop type in coins"
	HelpTextProduceSold  = "Total units of produce sold"
	HelpTextSaleEarnings = "Total coins earned from produce sales"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelCropType = "crop_type"
	LabelKind     = "kind"
	LabelResult   = "result"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
