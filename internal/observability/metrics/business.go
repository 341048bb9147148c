package metrics

import "time"

// Shell entity labels.
const (
	EntityContractor = "contractor"
	EntityHighway    = "highway"
)

// RecordProjectCreated records a successfully created project.
func RecordProjectCreated() {
	ProjectsCreatedTotal.Inc()
}

// RecordProjectRejected records a refused project submission.
// Reason is a short fixed label such as "duplicate" or "invalid_date".
func RecordProjectRejected(reason string) {
	ProjectsRejectedTotal.WithLabelValues(reason).Inc()
}

// RecordShellEntityCreated records a contractor or highway created implicitly.
func RecordShellEntityCreated(entity string) {
	ShellEntitiesCreatedTotal.WithLabelValues(entity).Inc()
}

// RecordProjectDeleted records a project removal that deleted a row.
func RecordProjectDeleted() {
	ProjectsDeletedTotal.Inc()
}

// RecordTransaction records the duration of a unit of work.
// Mode is "rw" or "ro".
func RecordTransaction(mode string, duration time.Duration, err error) {
	outcome := "commit"
	if err != nil {
		outcome = "rollback"
	}
	DBTransactionDuration.WithLabelValues(mode, outcome).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
