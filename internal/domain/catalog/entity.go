package catalog

// Status is a row in the shared status lookup table. Contracts and schedules
// reference statuses by id, so the engine resolves the ACTIVE id once per
// batch and passes it down instead of re-querying per employee.
type Status struct {
	ID   string
	Name string
}

const StatusActive = "ACTIVE"
