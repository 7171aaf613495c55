package repository

import (
	"errors"

	"github.com/lib/pq"
)

var ErrDuplicate = errors.New("repository: record already exists")

// uniqueViolation é o código do Postgres para violação de UNIQUE
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
