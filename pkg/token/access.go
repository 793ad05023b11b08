package token

import (
	"errors"
	"roulette_backend/internal/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateServiceToken - signs a token for serviceID valid from now until now+ttl.
// Real deployments get their tokens from the trust authority, this is for development and tests.
func GenerateServiceToken(serviceID string, secretKey []byte, ttl time.Duration, now time.Time) (string, error) {
	if serviceID == "" {
		return "", errors.New("service id is empty")
	}
	claims := model.ServiceClaims{
		ServiceID: serviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

// VerifyToken - checks the HS256 signature, nbf <= now <= exp (whole seconds, both ends
// inclusive, widened by leeway) and the presence of every claim.
// Failures are returned as *model.AuthorizationError.
func VerifyToken(tokenStr string, secretKey []byte, now time.Time, leeway time.Duration) (*model.ServiceClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.ServiceClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, &model.AuthorizationError{Kind: classify(err), Err: err}
	}

	claims, ok := token.Claims.(*model.ServiceClaims)
	if !ok || !token.Valid {
		return nil, &model.AuthorizationError{Kind: model.MalformedToken, Err: errors.New("invalid token claims")}
	}
	if claims.ServiceID == "" || claims.IssuedAt == nil || claims.NotBefore == nil || claims.ExpiresAt == nil {
		return nil, &model.AuthorizationError{Kind: model.MissingClaims, Err: errors.New("incomplete claim set")}
	}

	if kind, err := checkTimes(claims, now, leeway); err != nil {
		return nil, &model.AuthorizationError{Kind: kind, Err: err}
	}

	return claims, nil
}

// checkTimes compares in unix seconds, the precision of NumericDate
func checkTimes(claims *model.ServiceClaims, now time.Time, leeway time.Duration) (model.AuthorizationKind, error) {
	sec := now.Unix()
	skew := int64(leeway / time.Second)

	if claims.ExpiresAt.Unix() < sec-skew {
		return model.TokenExpired, jwt.ErrTokenExpired
	}
	if claims.NotBefore.Unix() > sec+skew {
		return model.TokenNotYetValid, jwt.ErrTokenNotValidYet
	}
	if claims.IssuedAt.Unix() > sec+skew {
		return model.TokenNotYetValid, jwt.ErrTokenUsedBeforeIssued
	}
	return 0, nil
}

func classify(err error) model.AuthorizationKind {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return model.TokenExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return model.TokenNotYetValid
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return model.MissingClaims
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return model.BadSignature
	default:
		return model.MalformedToken
	}
}
