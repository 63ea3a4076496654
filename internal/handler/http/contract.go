package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/peopleworks/hrms-backend-go/internal/domain/contract"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peopleworks/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ContractHandler interface {
	CreateContract(w http.ResponseWriter, r *http.Request)
	RenewContract(w http.ResponseWriter, r *http.Request)
	GetContract(w http.ResponseWriter, r *http.Request)
	GetMyContract(w http.ResponseWriter, r *http.Request)
	ListExpiring(w http.ResponseWriter, r *http.Request)
}

type ContractHandlerImpl struct {
	contractService contract.ContractService
}

func NewContractHandler(contractService contract.ContractService) ContractHandler {
	return &ContractHandlerImpl{contractService: contractService}
}

// CreateContract implements ContractHandler.
func (h *ContractHandlerImpl) CreateContract(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req contract.CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.contractService.CreateContract(r.Context(), principal, req)
	if err != nil {
		slog.Error("CreateContract service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Contract created", created)
}

// RenewContract implements ContractHandler.
func (h *ContractHandlerImpl) RenewContract(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req contract.RenewContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	renewed, err := h.contractService.RenewContract(r.Context(), principal, chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("RenewContract service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Contract renewed", renewed)
}

// GetContract implements ContractHandler.
func (h *ContractHandlerImpl) GetContract(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	c, err := h.contractService.GetContract(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, c)
}

// GetMyContract implements ContractHandler.
func (h *ContractHandlerImpl) GetMyContract(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	c, err := h.contractService.GetMyContract(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, c)
}

// ListExpiring implements ContractHandler. The window comes from the
// days_before query parameter, zero selects the default.
func (h *ContractHandlerImpl) ListExpiring(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	daysBefore, _ := strconv.Atoi(r.URL.Query().Get("days_before"))
	contracts, err := h.contractService.ListExpiring(r.Context(), principal, daysBefore)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, contracts)
}
