package employee

import (
	"context"

	"github.com/waspernest/pe-bms-node/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Get implements employee.Service.
func (e *EmployeeServiceImpl) Get(ctx context.Context, biometricID string) (employee.EmployeeResponse, error) {
	emp, err := e.employeeRepo.GetByBiometricID(ctx, biometricID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.Service.
func (e *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := e.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// UpdateSchedule implements employee.Service.
func (e *EmployeeServiceImpl) UpdateSchedule(ctx context.Context, biometricID string, req employee.UpdateScheduleRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := e.employeeRepo.UpdateSchedule(ctx, biometricID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return e.Get(ctx, biometricID)
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:              emp.ID,
		BiometricID:     emp.BiometricID,
		FirstName:       emp.FirstName,
		LastName:        emp.LastName,
		JobPosition:     emp.JobPosition,
		ScheduleStart:   emp.ScheduleStart,
		ScheduleEnd:     emp.ScheduleEnd,
		RestDay:         emp.RestDay,
		ScheduleGroupID: emp.ScheduleGroupID,
		BaseDailyRate:   emp.BaseDailyRate,
		IsReliever:      emp.IsReliever,
	}
}
