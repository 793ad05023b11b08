package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned for records that are absent or owned by another caller.
var ErrNotFound = errors.New("record not found")

// ValidationKind tags why a wager request was rejected.
type ValidationKind int

const (
	UnrecognizedSelector ValidationKind = iota + 1
	StakeTooLarge
	ZeroStake
	UnsupportedGame
	NoBets
	TooManyBets
)

func (k ValidationKind) String() string {
	switch k {
	case UnrecognizedSelector:
		return "unrecognized_selector"
	case StakeTooLarge:
		return "stake_too_large"
	case ZeroStake:
		return "zero_stake"
	case UnsupportedGame:
		return "unsupported_game"
	case NoBets:
		return "no_bets"
	case TooManyBets:
		return "too_many_bets"
	default:
		return "unknown"
	}
}

// ValidationError is a caller visible rejection of a wager or a wager request.
// Index is the position of the offending wager, -1 when the request as a whole is invalid.
type ValidationError struct {
	Kind     ValidationKind
	Index    int
	Selector string
}

func (e *ValidationError) Error() string {
	var reason string
	switch e.Kind {
	case UnrecognizedSelector:
		reason = "Invalid bet string"
	case StakeTooLarge:
		reason = "Too many chips"
	case ZeroStake:
		reason = "Chips in must be positive"
	case UnsupportedGame:
		reason = "Unsupported game"
	case NoBets:
		reason = "No bets placed"
	case TooManyBets:
		reason = "Too many bets"
	default:
		reason = "Invalid game request"
	}
	if e.Index < 0 {
		return reason
	}
	return fmt.Sprintf("%s (bet %d)", reason, e.Index)
}

// AuthorizationKind tags why a credential was rejected.
type AuthorizationKind int

const (
	MissingHeader AuthorizationKind = iota + 1
	WrongScheme
	MalformedToken
	BadSignature
	TokenExpired
	TokenNotYetValid
	MissingClaims
)

func (k AuthorizationKind) String() string {
	switch k {
	case MissingHeader:
		return "missing_header"
	case WrongScheme:
		return "wrong_scheme"
	case MalformedToken:
		return "malformed_token"
	case BadSignature:
		return "bad_signature"
	case TokenExpired:
		return "token_expired"
	case TokenNotYetValid:
		return "token_not_yet_valid"
	case MissingClaims:
		return "missing_claims"
	default:
		return "unknown"
	}
}

// AuthorizationError is returned by the authorization filter.
// Error() only exposes a coarse reason; Kind keeps the precise cause for logs.
type AuthorizationError struct {
	Kind AuthorizationKind
	Err  error
}

func (e *AuthorizationError) Error() string {
	switch e.Kind {
	case MissingHeader:
		return "No Authorization Header"
	case WrongScheme:
		return "Authorization Wrong Format"
	default:
		return "Token Validation Error"
	}
}

func (e *AuthorizationError) Unwrap() error {
	return e.Err
}
