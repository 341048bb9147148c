// Package resilience provides fault tolerance for calls into the database.
//
// The circuitbreaker subpackage wraps github.com/sony/gobreaker. Every
// transactional unit of work runs through a breaker, so a database that keeps
// failing is answered with an immediate error instead of piling up blocked
// requests on the connection pool. Nothing here retries: a failed call is
// reported to the caller once.
//
// Usage Example:
//
//	cb := circuitbreaker.NewDBCircuitBreaker()
//	err := cb.Run(func() error {
//	    return doTransaction()
//	})
package resilience
