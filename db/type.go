package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrDuplicateEntryCode = 1062

	// ErrStaleEntry is returned when an entry update carries a version
	// that no longer matches the stored row.
	ErrStaleEntry = errors.New("stale entry version")
)

func MysqlErrCode(err error) int {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return 0
	}
	return int(mysqlErr.Number)
}
