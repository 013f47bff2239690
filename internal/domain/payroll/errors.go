package payroll

import "errors"

var (
	ErrLineNotFound      = errors.New("payroll line not found")
	ErrLineAlreadyExists = errors.New("payroll line already exists for this period and employee")
	ErrLineApproved      = errors.New("payroll line already approved, cannot modify")
	ErrAllDuplicates     = errors.New("payroll lines already exist for every requested employee")
	ErrNoEmployees       = errors.New("no employees to compute payroll for")
)
