package contract

import "context"

type ContractRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) ([]EmploymentContract, error)
	// ListEmployeeIDsByStatus returns the ids of every employee holding at
	// least one contract in the given status. Used when a batch request names
	// no employees explicitly.
	ListEmployeeIDsByStatus(ctx context.Context, statusID string) ([]string, error)
}
