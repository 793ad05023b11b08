package model

import (


	"github.com/golang-jwt/jwt/v5"
)

// ServiceClaims - claim set of the bearer token presented by a client service.
// iat, nbf and exp come from the embedded registered claims.
type ServiceClaims struct {
	ServiceID string `json:"serviceId"`
	jwt.RegisteredClaims
}
