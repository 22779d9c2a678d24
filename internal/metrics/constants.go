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

// Repair kit metric names
const (
	MetricNameRepairsTotal        = "repairs_total"
	MetricNameDurabilityRestored  = "durability_restored_total"
	MetricNameMaterialsConsumed   = "materials_consumed_total"
	MetricNameMaterialsAdded      = "materials_added_total"
	MetricNameKitFullRejections   = "repair_kit_full_rejections_total"
	MetricNameRepairPlanMaterials = "repair_plan_materials"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextRepairsTotal        = "Total number of committed repairs"
	HelpTextDurabilityRestored  = "Total durability points restored"
	HelpTextMaterialsConsumed   = "Total material amount consumed by repairs"
	HelpTextMaterialsAdded      = "Total material amount added to repair kits"
	HelpTextKitFullRejections   = "Material additions rejected because the kit was full"
	HelpTextRepairPlanMaterials = "Number of distinct materials used per repair plan"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelRepairType = "repair_type"
	LabelSource     = "source"
	LabelMaterial   = "material"
	LabelForm       = "form"
)

// Repair sources
const (
	SourceKit    = "kit"
	SourceDirect = "direct"
)

// HTTPLatencyBuckets are histogram buckets for request latency in seconds
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// RepairPlanMaterialBuckets are histogram buckets for materials per plan
var RepairPlanMaterialBuckets = []float64{0, 1, 2, 3, 5, 8}
