package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const ServiceName = "scenario-backend"

// ResolverLookups counts master-data resolution attempts by kind
// (stage/weapon) and outcome (exact/alias/substring/miss/error).
var ResolverLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scenario_resolver_lookups_total",
	Help: "Master-data resolver lookups partitioned by kind and outcome.",
}, []string{"kind", "outcome"})
