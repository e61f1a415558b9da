package models

import "github.com/golang-jwt/jwt/v4"

// SessionClaims are the JWT claims carried by a session token.
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// CreateSessionRequest starts a new simulator session. Seed makes the
// generated history fully reproducible; when nil it is derived from the
// clock. Years is the warm-up history span (defaults to 3).
type CreateSessionRequest struct {
	Locale string `json:"locale"`
	Years  int    `json:"years"`
	Seed   *int64 `json:"seed"`
}

// PredictRequest selects a forecasting strategy by identifier.
type PredictRequest struct {
	Strategy string `json:"strategy"`
}

// OrderRequest carries the user's order decision for the pending day.
type OrderRequest struct {
	Order int `json:"order"`
}

// Feedback grades an order decision against realized demand.
type Feedback struct {
	Message  string `json:"message"`
	Severity string `json:"severity"` // "success", "warning" or "error"
}
