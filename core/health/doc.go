// Package health provides liveness and readiness HTTP handlers for
// Kubernetes probes and load balancer checks.
//
//	mux.HandleFunc("/health/live", health.Liveness)
//	mux.HandleFunc("/health/ready", health.Readiness(log,
//		pg.Healthcheck(pool),
//		redis.Healthcheck(client),
//	))
package health
