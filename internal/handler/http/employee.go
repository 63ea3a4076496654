package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/peopleworks/hrms-backend-go/internal/domain/employee"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// maxUploadSize caps profile image uploads at 5 MB.
const maxUploadSize = 5 << 20

type EmployeeHandler interface {
	GetEmployee(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	UploadProfileImage(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	SearchEmployees(w http.ResponseWriter, r *http.Request)
	GetMyTeam(w http.ResponseWriter, r *http.Request)
	GetIncompleteProfiles(w http.ResponseWriter, r *http.Request)
	GetHierarchy(w http.ResponseWriter, r *http.Request)
	ReassignEmployee(w http.ResponseWriter, r *http.Request)
	AssignRole(w http.ResponseWriter, r *http.Request)
	RemoveRole(w http.ResponseWriter, r *http.Request)
	ActivateEmployee(w http.ResponseWriter, r *http.Request)
	DeactivateEmployee(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListRoles(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// GetEmployee implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := h.employeeService.GetEmployee(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}

// GetMe implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := h.employeeService.GetEmployee(r.Context(), principal, principal.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}

// CreateEmployee implements EmployeeHandler.
func (h *EmployeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.CreateEmployee(r.Context(), principal, createReq)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created", emp)
}

// UpdateProfile implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.UpdateProfile(r.Context(), principal, updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated", emp)
}

// UpdateEmployee implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.UpdateEmployee(r.Context(), principal, chi.URLParam(r, "id"), updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated", emp)
}

// UploadProfileImage implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "Missing image file", nil)
		return
	}
	defer file.Close()

	url, err := h.employeeService.UploadProfileImage(r.Context(), principal, chi.URLParam(r, "id"), header.Filename, file)
	if err != nil {
		slog.Error("UploadProfileImage service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile image uploaded", map[string]string{"profile_image_url": url})
}

// ListEmployees implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employees, err := h.employeeService.ListEmployees(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

// SearchEmployees implements EmployeeHandler.
func (h *EmployeeHandlerImpl) SearchEmployees(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		response.BadRequest(w, "Missing search query", nil)
		return
	}

	employees, err := h.employeeService.SearchEmployees(r.Context(), principal, query)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

// GetMyTeam implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetMyTeam(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	team, err := h.employeeService.GetMyTeam(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, team)
}

// GetIncompleteProfiles implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetIncompleteProfiles(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employees, err := h.employeeService.GetIncompleteProfiles(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

// GetHierarchy implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetHierarchy(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	hierarchy, err := h.employeeService.GetHierarchy(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, hierarchy)
}

// ReassignEmployee implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ReassignEmployee(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var reassignReq employee.ReassignEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&reassignReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.ReassignEmployee(r.Context(), principal, chi.URLParam(r, "id"), reassignReq); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee reassigned", nil)
}

// AssignRole implements EmployeeHandler.
func (h *EmployeeHandlerImpl) AssignRole(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var roleReq employee.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&roleReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.AssignRole(r.Context(), principal, chi.URLParam(r, "id"), roleReq); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Role assigned", nil)
}

// RemoveRole implements EmployeeHandler.
func (h *EmployeeHandlerImpl) RemoveRole(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var roleReq employee.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&roleReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.RemoveRole(r.Context(), principal, chi.URLParam(r, "id"), roleReq); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Role removed", nil)
}

// ActivateEmployee implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ActivateEmployee(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true, "Employee activated")
}

// DeactivateEmployee implements EmployeeHandler.
func (h *EmployeeHandlerImpl) DeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false, "Employee deactivated")
}

// ListDepartments implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.employeeService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

// CreateDepartment implements EmployeeHandler.
func (h *EmployeeHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	department, err := h.employeeService.CreateDepartment(r.Context(), principal, req.Name)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created", department)
}

// ListRoles implements EmployeeHandler. It serves the fixed role catalog.
func (h *EmployeeHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	response.Success(w, employee.AllRoles())
}

func (h *EmployeeHandlerImpl) setActive(w http.ResponseWriter, r *http.Request, active bool, message string) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.SetActive(r.Context(), principal, chi.URLParam(r, "id"), active); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, message, nil)
}
