package contracttest

import "github.com/paylane/paylane-go/core"

// jsonEquivalent reports whether two JSON objects are structurally equal. Stores
// such as jsonb columns may reorder keys and reformat whitespace.
func jsonEquivalent(a, b []byte) bool {
	var da, db core.RawData
	if err := da.UnmarshalJSON(a); err != nil {
		return false
	}
	if err := db.UnmarshalJSON(b); err != nil {
		return false
	}
	return da.Equal(&db)
}
