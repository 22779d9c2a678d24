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

// Repair Metrics
var (
	RepairsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRepairsTotal,
			Help: HelpTextRepairsTotal,
		},
		[]string{LabelSource, LabelRepairType},
	)

	DurabilityRestored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDurabilityRestored,
			Help: HelpTextDurabilityRestored,
		},
		[]string{LabelSource, LabelRepairType},
	)

	MaterialsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMaterialsConsumed,
			Help: HelpTextMaterialsConsumed,
		},
		[]string{LabelMaterial},
	)

	RepairPlanMaterials = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRepairPlanMaterials,
			Help:    HelpTextRepairPlanMaterials,
			Buckets: RepairPlanMaterialBuckets,
		},
	)
)

// Repair Kit Metrics
var (
	MaterialsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMaterialsAdded,
			Help: HelpTextMaterialsAdded,
		},
		[]string{LabelForm},
	)

	KitFullRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameKitFullRejections,
			Help: HelpTextKitFullRejections,
		},
	)
)
