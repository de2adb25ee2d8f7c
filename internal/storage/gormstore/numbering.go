package gormstore

import (
	"fmt"
	"hash/fnv"

	"gorm.io/gorm"
)

const (
	reportNumberPrefix  = "REF"
	invoiceNumberPrefix = "INV"
)

// nextSequentialNumber recomputes the year-scoped sequence by counting rows
// whose number carries the given year prefix. The scheme is deliberately
// count-based instead of a persisted counter: deleting a row shrinks the
// count, so the next number can reuse a previously issued slot. Callers
// depend on that exact behavior, so it must not change.
func nextSequentialNumber(tx *gorm.DB, table, column, prefix string, year int) (string, error) {
	var count int64
	pattern := fmt.Sprintf("%s-%d-%%", prefix, year)
	if err := tx.Table(table).Where(column+" LIKE ?", pattern).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%04d", prefix, year, count+1), nil
}

// lockSequence keeps two concurrent creates from observing the same count.
// SQLite already has a single writer per database, so the surrounding
// transaction is enough there. Postgres needs an advisory lock scoped to
// (prefix, year), released automatically at transaction end.
func (s *Store) lockSequence(tx *gorm.DB, prefix string, year int) error {
	if s.dialect != dialectPostgres {
		return nil
	}
	h := fnv.New64a()
	fmt.Fprintf(h, "%s-%d", prefix, year)
	return tx.Exec("SELECT pg_advisory_xact_lock(?)", int64(h.Sum64())).Error
}
