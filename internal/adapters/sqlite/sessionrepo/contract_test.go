package sessionrepo

import (
	"testing"

	"github.com/paylane/paylane-go/internal/adapters/contracttest"
	"github.com/paylane/paylane-go/internal/adapters/sqlite/testutil"
	sessionrepoport "github.com/paylane/paylane-go/internal/ports/out/sessionrepo"
)

func TestContract_SqliteSessionRepo(t *testing.T) {
	db := testutil.OpenMigratedDB(t)

	contracttest.RunSessionRepo(t, func(t *testing.T) (sessionrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(db), nil
	})
}
