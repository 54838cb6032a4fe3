package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"homescripts/internal/domain"
)

type ChangeStore struct {
	db *sqlx.DB
	tx *TransactionManager
}

func NewChangeStore(db *sqlx.DB) *ChangeStore {
	return &ChangeStore{db: db, tx: NewTransactionManager(db)}
}

// SaveChanges appends the changes of one sync run in a single transaction.
func (s *ChangeStore) SaveChanges(ctx context.Context, changes []domain.RecordChange) error {
	if len(changes) == 0 {
		return nil
	}

	query, args := insertChangesQuery(changes)

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, args...)
		return err
	})
}

func insertChangesQuery(changes []domain.RecordChange) (string, []interface{}) {
	const cols = 7
	var sb strings.Builder
	sb.WriteString("INSERT INTO dns_changes (domain, record_id, rr, type, old_value, new_value, changed_at) VALUES ")
	valueArgs := make([]interface{}, 0, len(changes)*cols)

	for i, c := range changes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*cols + j + 1))
		}
		sb.WriteString(")")
		valueArgs = append(valueArgs, c.Domain, c.RecordID, c.RR, c.Type, c.OldValue, c.NewValue, c.ChangedAt)
	}
	return sb.String(), valueArgs
}
