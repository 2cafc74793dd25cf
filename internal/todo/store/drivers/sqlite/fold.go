package sqlite

import (
	"database/sql/driver"
	"strings"

	"modernc.org/sqlite"
)

// foldFunc lowercases text with Unicode case mapping. SQLite's built-in
// lower() only folds ASCII.
const foldFunc = "fold_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(foldFunc, 1, foldLower)
}

func foldLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}
