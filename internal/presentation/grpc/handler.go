package grpc

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/application/usecase"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/service"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/pkg/auth"
)

// Compile-time assertion that FinanceHandler implements FinanceServiceServer.
var _ FinanceServiceServer = (*FinanceHandler)(nil)

// FinanceHandler implements the gRPC FinanceServiceServer interface.
type FinanceHandler struct {
	UnimplementedFinanceServiceServer
	createUC     *usecase.CreateSchemeUseCase
	updateUC     *usecase.UpdateSchemeUseCase
	getUC        *usecase.GetSchemeUseCase
	listUC       *usecase.ListSchemesUseCase
	activateUC   *usecase.ActivateSchemeUseCase
	deactivateUC *usecase.DeactivateSchemeUseCase
	simulateUC   *usecase.SimulateSchemeUseCase
}

// NewFinanceHandler creates a new handler with all use-case dependencies.
func NewFinanceHandler(
	createUC *usecase.CreateSchemeUseCase,
	updateUC *usecase.UpdateSchemeUseCase,
	getUC *usecase.GetSchemeUseCase,
	listUC *usecase.ListSchemesUseCase,
	activateUC *usecase.ActivateSchemeUseCase,
	deactivateUC *usecase.DeactivateSchemeUseCase,
	simulateUC *usecase.SimulateSchemeUseCase,
) *FinanceHandler {
	return &FinanceHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		getUC:        getUC,
		listUC:       listUC,
		activateUC:   activateUC,
		deactivateUC: deactivateUC,
		simulateUC:   simulateUC,
	}
}

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// tenantFromContext extracts the tenant from JWT claims in the context.
// The token's tenant always wins over whatever the request body carries.
func tenantFromContext(ctx context.Context) (string, error) {
	tenantID, ok := auth.TenantFromContext(ctx)
	if !ok || tenantID == "" {
		return "", status.Error(codes.Unauthenticated, "authentication required")
	}
	return tenantID, nil
}

// toStatus maps domain and application errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, valueobject.ErrSchemeNotFound):
		return status.Error(codes.NotFound, "scheme not found")
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, service.ErrLoanOutOfRange),
		errors.Is(err, service.ErrLTVExceeded):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, valueobject.ErrInvalidTenure),
		strings.HasPrefix(err.Error(), "parse terms"),
		strings.HasPrefix(err.Error(), "parse fuel type"),
		strings.HasPrefix(err.Error(), "create scheme"),
		strings.HasPrefix(err.Error(), "update scheme"),
		strings.HasPrefix(err.Error(), "draft scheme"):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// CreateScheme handles the gRPC request to create a new finance scheme.
func (h *FinanceHandler) CreateScheme(ctx context.Context, req *CreateSchemeRequest) (*SchemeResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleDealerPrincipal, auth.RoleFinanceManager); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req.TenantID = tenantID

	resp, err := h.createUC.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	schemeWritesTotal.WithLabelValues("create").Inc()
	return &resp, nil
}

// UpdateScheme handles the gRPC request to replace a scheme's terms and charges.
func (h *FinanceHandler) UpdateScheme(ctx context.Context, req *UpdateSchemeRequest) (*SchemeResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleDealerPrincipal, auth.RoleFinanceManager); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.SchemeID == "" {
		return nil, status.Error(codes.InvalidArgument, "scheme_id is required")
	}

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req.TenantID = tenantID

	resp, err := h.updateUC.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	schemeWritesTotal.WithLabelValues("update").Inc()
	return &resp, nil
}

// GetScheme handles the gRPC request to fetch a scheme by ID.
func (h *FinanceHandler) GetScheme(ctx context.Context, req *GetSchemeRequest) (*SchemeResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleDealerPrincipal, auth.RoleFinanceManager, auth.RoleSalesExecutive, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.SchemeID == "" {
		return nil, status.Error(codes.InvalidArgument, "scheme_id is required")
	}

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req.TenantID = tenantID

	resp, err := h.getUC.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// ListSchemes handles the gRPC request to list a tenant's schemes.
func (h *FinanceHandler) ListSchemes(ctx context.Context, req *ListSchemesRequest) (*ListSchemesResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleDealerPrincipal, auth.RoleFinanceManager, auth.RoleSalesExecutive, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		req = &ListSchemesRequest{}
	}

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req.TenantID = tenantID

	resp, err := h.listUC.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// ActivateScheme handles the gRPC request to activate a scheme.
func (h *FinanceHandler) ActivateScheme(ctx context.Context, req *ActivateSchemeRequest) (*SchemeResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleDealerPrincipal, auth.RoleFinanceManager); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.SchemeID == "" {
		return nil, status.Error(codes.InvalidArgument, "scheme_id is required")
	}

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req.TenantID = tenantID

	resp, err := h.activateUC.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	schemeWritesTotal.WithLabelValues("activate").Inc()
	return &resp, nil
}

// DeactivateScheme handles the gRPC request to deactivate a scheme.
func (h *FinanceHandler) DeactivateScheme(ctx context.Context, req *DeactivateSchemeRequest) (*SchemeResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleDealerPrincipal, auth.RoleFinanceManager); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.SchemeID == "" {
		return nil, status.Error(codes.InvalidArgument, "scheme_id is required")
	}

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req.TenantID = tenantID

	resp, err := h.deactivateUC.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	schemeWritesTotal.WithLabelValues("deactivate").Inc()
	return &resp, nil
}

// SimulateScheme handles the gRPC request to quote EMIs across tenures.
func (h *FinanceHandler) SimulateScheme(ctx context.Context, req *SimulateSchemeRequest) (*SimulationResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleDealerPrincipal, auth.RoleFinanceManager, auth.RoleSalesExecutive, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.SchemeID == "" && req.Draft == nil {
		return nil, status.Error(codes.InvalidArgument, "scheme_id or draft is required")
	}

	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req.TenantID = tenantID

	resp, err := h.simulateUC.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	simulationsTotal.Inc()
	return &resp, nil
}
