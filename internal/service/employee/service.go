package employee

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/domain/notification"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/validator"
	"github.com/peopleworks/hrms-backend-go/internal/repository/postgresql"
	"github.com/peopleworks/hrms-backend-go/internal/service/file"
	"github.com/jackc/pgx/v5"
)

// profileCompletionThreshold marks a profile as incomplete below this
// percentage.
const profileCompletionThreshold = 80

type EmployeeServiceImpl struct {
	db                  *database.DB
	employeeRepo        employee.EmployeeRepository
	roleRepo            employee.RoleRepository
	departmentRepo      employee.DepartmentRepository
	fileService         file.FileService
	notificationService notification.Service
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	roleRepo employee.RoleRepository,
	departmentRepo employee.DepartmentRepository,
	fileService file.FileService,
	notificationService notification.Service,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                  db,
		employeeRepo:        employeeRepo,
		roleRepo:            roleRepo,
		departmentRepo:      departmentRepo,
		fileService:         fileService,
		notificationService: notificationService,
	}
}

// GetEmployee implements employee.EmployeeService. Visible to the record
// owner, elevated roles, and the record's direct manager.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, actor employee.Principal, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if !s.canView(actor, emp) {
		return employee.EmployeeResponse{}, employee.ErrAccessDenied
	}

	emp.Roles, err = s.roleRepo.GetRoles(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get roles: %w", err)
	}

	return employee.ToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) canView(actor employee.Principal, target employee.Employee) bool {
	if actor.EmployeeID == target.ID || actor.Elevated() {
		return true
	}
	// Managers see their direct reports only, the check is not transitive.
	return target.ManagerID != nil && *target.ManagerID == actor.EmployeeID
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, actor employee.Principal, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !actor.Elevated() {
		return employee.EmployeeResponse{}, employee.ErrAccessDenied
	}
	// An HR Admin provisions accounts up to its own level, never System Admin.
	for _, name := range req.Roles {
		if !s.canGrant(actor, employee.Role(name)) {
			return employee.EmployeeResponse{}, employee.ErrAccessDenied
		}
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{string(employee.RoleEmployee)}
	}

	newEmployee := employee.Employee{
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		JobTitle:     req.JobTitle,
		DepartmentID: req.DepartmentID,
		ManagerID:    req.ManagerID,
		IsActive:     true,
	}
	newEmployee.ProfileCompletion = profileCompletion(newEmployee)

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.employeeRepo.Create(txCtx, newEmployee)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		for _, name := range roles {
			if err := s.roleRepo.Assign(txCtx, created.ID, employee.Role(name)); err != nil {
				return fmt.Errorf("failed to assign role %s: %w", name, err)
			}
		}

		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	for _, name := range roles {
		created.Roles = append(created.Roles, employee.Role(name))
	}
	return employee.ToEmployeeResponse(created), nil
}

// UpdateProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, actor employee.Principal, req employee.UpdateProfileRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.DateOfBirth != nil {
		dob, _ := validator.IsValidDate(*req.DateOfBirth)
		emp.DateOfBirth = &dob
	}
	if req.Gender != nil {
		emp.Gender = req.Gender
	}
	emp.ProfileCompletion = profileCompletion(emp)

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}

	emp.Roles, err = s.roleRepo.GetRoles(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get roles: %w", err)
	}
	return employee.ToEmployeeResponse(emp), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, actor employee.Principal, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !actor.Elevated() {
		return employee.EmployeeResponse{}, employee.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil && *req.Email != emp.Email {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		emp.Email = *req.Email
	}
	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.DateOfBirth != nil {
		dob, _ := validator.IsValidDate(*req.DateOfBirth)
		emp.DateOfBirth = &dob
	}
	if req.Gender != nil {
		emp.Gender = req.Gender
	}
	if req.JobTitle != nil {
		emp.JobTitle = req.JobTitle
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.DepartmentID = req.DepartmentID
	}
	if req.ManagerID != nil {
		emp.ManagerID = req.ManagerID
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	emp.ProfileCompletion = profileCompletion(emp)

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	emp.Roles, err = s.roleRepo.GetRoles(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get roles: %w", err)
	}
	return employee.ToEmployeeResponse(emp), nil
}

// UploadProfileImage implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadProfileImage(ctx context.Context, actor employee.Principal, employeeID, filename string, fileReader io.Reader) (string, error) {
	if actor.EmployeeID != employeeID && !actor.Elevated() {
		return "", employee.ErrAccessDenied
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return "", err
	}

	path, err := s.fileService.UploadProfileImage(ctx, employeeID, fileReader, filename)
	if err != nil {
		return "", err
	}

	url, err := s.fileService.GetFileURL(ctx, path, 0)
	if err != nil {
		return "", err
	}

	if err := s.employeeRepo.SetProfileImageURL(ctx, employeeID, url); err != nil {
		return "", fmt.Errorf("failed to set profile image: %w", err)
	}

	return url, nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, actor employee.Principal) ([]employee.EmployeeResponse, error) {
	if !actor.Elevated() {
		return nil, employee.ErrAccessDenied
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return s.toResponses(employees), nil
}

// SearchEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SearchEmployees(ctx context.Context, actor employee.Principal, query string) ([]employee.EmployeeResponse, error) {
	if !actor.Elevated() {
		return nil, employee.ErrAccessDenied
	}

	employees, err := s.employeeRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	return s.toResponses(employees), nil
}

// GetMyTeam implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyTeam(ctx context.Context, actor employee.Principal) ([]employee.EmployeeResponse, error) {
	team, err := s.employeeRepo.GetTeam(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.toResponses(team), nil
}

// GetIncompleteProfiles implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetIncompleteProfiles(ctx context.Context, actor employee.Principal) ([]employee.EmployeeResponse, error) {
	if !actor.Elevated() {
		return nil, employee.ErrAccessDenied
	}

	employees, err := s.employeeRepo.GetIncompleteProfiles(ctx, profileCompletionThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to get incomplete profiles: %w", err)
	}
	return s.toResponses(employees), nil
}

// GetHierarchy implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetHierarchy(ctx context.Context, actor employee.Principal) ([]employee.HierarchyNodeResponse, error) {
	if !actor.Elevated() {
		return nil, employee.ErrAccessDenied
	}

	nodes, err := s.employeeRepo.GetHierarchy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get hierarchy: %w", err)
	}

	responses := make([]employee.HierarchyNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		responses = append(responses, employee.HierarchyNodeResponse{
			EmployeeID:     n.EmployeeID,
			FullName:       n.FullName,
			JobTitle:       n.JobTitle,
			DepartmentID:   n.DepartmentID,
			DepartmentName: n.DepartmentName,
			ManagerID:      n.ManagerID,
			ManagerName:    n.ManagerName,
			TeamSize:       n.TeamSize,
		})
	}
	return responses, nil
}

// ReassignEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ReassignEmployee(ctx context.Context, actor employee.Principal, id string, req employee.ReassignEmployeeRequest) error {
	if !actor.Elevated() {
		return employee.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return err
		}
	}
	if req.ManagerID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.ManagerID); err != nil {
			return err
		}
	}

	if err := s.employeeRepo.Reassign(ctx, id, req.DepartmentID, req.ManagerID); err != nil {
		return fmt.Errorf("failed to reassign employee: %w", err)
	}

	return s.notificationService.NotifyEmployee(ctx, notification.CreateNotificationRequest{
		SenderID: &actor.EmployeeID,
		Type:     notification.TypeReassignment,
		Urgency:  notification.UrgencyNormal,
		Message:  fmt.Sprintf("Your assignment has been updated, %s.", emp.FullName),
	}, id)
}

// AssignRole implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AssignRole(ctx context.Context, actor employee.Principal, employeeID string, req employee.AssignRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	role := employee.Role(req.Role)
	if !s.canGrant(actor, role) {
		return employee.ErrAccessDenied
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return err
	}

	return s.roleRepo.Assign(ctx, employeeID, role)
}

// canGrant: System Admin grants any role, HR Admin grants up to HR Admin.
func (s *EmployeeServiceImpl) canGrant(actor employee.Principal, role employee.Role) bool {
	if actor.HasRole(employee.RoleSystemAdmin) {
		return true
	}
	if actor.HasRole(employee.RoleHRAdmin) {
		return role != employee.RoleSystemAdmin
	}
	return false
}

// RemoveRole implements employee.EmployeeService.
func (s *EmployeeServiceImpl) RemoveRole(ctx context.Context, actor employee.Principal, employeeID string, req employee.AssignRoleRequest) error {
	if !actor.HasRole(employee.RoleSystemAdmin) {
		return employee.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return err
	}

	return s.roleRepo.Remove(ctx, employeeID, employee.Role(req.Role))
}

// SetActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetActive(ctx context.Context, actor employee.Principal, employeeID string, active bool) error {
	if !actor.Elevated() {
		return employee.ErrAccessDenied
	}
	if !active && actor.EmployeeID == employeeID {
		return employee.ErrCannotDeactivateSelf
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return err
	}

	return s.employeeRepo.SetActive(ctx, employeeID, active)
}

// ListDepartments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListDepartments(ctx context.Context) ([]employee.Department, error) {
	return s.departmentRepo.List(ctx)
}

// CreateDepartment implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateDepartment(ctx context.Context, actor employee.Principal, name string) (employee.Department, error) {
	if !actor.Elevated() {
		return employee.Department{}, employee.ErrAccessDenied
	}
	if name == "" {
		return employee.Department{}, validator.ValidationErrors{{
			Field:   "name",
			Message: "Department name is required",
		}}
	}
	return s.departmentRepo.Create(ctx, name)
}

func (s *EmployeeServiceImpl) toResponses(employees []employee.Employee) []employee.EmployeeResponse {
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToEmployeeResponse(emp))
	}
	return responses
}

// profileCompletion scores how much of the record is filled in, as a
// percentage of the tracked fields.
func profileCompletion(e employee.Employee) int {
	fields := []bool{
		e.FullName != "",
		e.Email != "",
		e.PhoneNumber != nil && *e.PhoneNumber != "",
		e.Address != nil && *e.Address != "",
		e.DateOfBirth != nil && !e.DateOfBirth.Equal(time.Time{}),
		e.Gender != nil && *e.Gender != "",
		e.JobTitle != nil && *e.JobTitle != "",
		e.DepartmentID != nil,
		e.ManagerID != nil,
		e.ProfileImageURL != nil && *e.ProfileImageURL != "",
	}

	filled := 0
	for _, ok := range fields {
		if ok {
			filled++
		}
	}
	return filled * 100 / len(fields)
}
