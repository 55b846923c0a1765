package auth

import "github.com/golang-jwt/jwt/v5"

const RoleOperator = "operator"

// UserClaims is what handlers can learn about an authenticated caller.
type UserClaims interface {
	Subject() string
	Role() string
	Source() string
}

// AdminClaims are carried by operator tokens.
type AdminClaims struct {
	RoleValue string `json:"role"`
	jwt.RegisteredClaims
}

func (c *AdminClaims) Subject() string { return c.RegisteredClaims.Subject }
func (c *AdminClaims) Role() string    { return c.RoleValue }
func (c *AdminClaims) Source() string  { return "JWT" }
