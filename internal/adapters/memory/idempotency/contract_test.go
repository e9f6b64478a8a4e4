package idempotency

import (
	"testing"

	"github.com/paylane/paylane-go/internal/adapters/contracttest"
	idempotencyport "github.com/paylane/paylane-go/internal/ports/out/idempotency"
)

func TestMemoryStoreContract(t *testing.T) {
	contracttest.RunIdempotencyStore(t, func(*testing.T) (idempotencyport.Store, contracttest.CleanupFunc) {
		return NewStore(), nil
	})
}
