package domain

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// PrincipalID identifies the API key a request was authenticated with.
// It is a SHA-256 digest so raw keys are never stored.
type PrincipalID string

// SessionID identifies a checkout session. Provider ids carry a "cks_" prefix.
type SessionID string

const sessionIDPrefix = "cks_"

func NewSessionID() SessionID { return SessionID(sessionIDPrefix + uuid.NewString()) }

func PrincipalFromAPIKey(apiKey string) PrincipalID {
	sum := sha256.Sum256([]byte(apiKey))
	return PrincipalID(hex.EncodeToString(sum[:]))
}
