package sessionrepo

import (
	"testing"

	"github.com/paylane/paylane-go/internal/adapters/contracttest"
	sessionrepoport "github.com/paylane/paylane-go/internal/ports/out/sessionrepo"
)

func TestContract_SessionRepo(t *testing.T) {
	contracttest.RunSessionRepo(t, func(t *testing.T) (sessionrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(), nil
	})
}
