package auth

import "github.com/golang-jwt/jwt/v5"

// Claims are the JWT claims carried by every authenticated request on the
// platform. TenantID scopes the caller to a single dealership tenant.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string   `json:"user_id"`
	TenantID string   `json:"tenant_id"`
	Roles    []string `json:"roles"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role constants
const (
	RoleAdmin           = "admin"
	RoleDealerPrincipal = "dealer_principal"
	RoleFinanceManager  = "finance_manager"
	RoleSalesExecutive  = "sales_executive"
	RoleAPIClient       = "api_client"
)
