package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/onlinz/returns/internal/database"
	apperrors "github.com/onlinz/returns/internal/errors"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

// MySQLReceiptRepository stores receipts in a MySQL table. IDs are stored as
// BINARY(16); the DSN needs parseTime=true.
type MySQLReceiptRepository struct {
	db *sql.DB
}

// Append inserts receipt.
func (m *MySQLReceiptRepository) Append(ctx context.Context, receipt *returnsDomain.ReceiptRecord) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO receipts (id, name, email, telephone, address, island_return,
			  box_height, box_width, box_depth, box_volume, cost, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := receipt.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal receipt id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		receipt.Name,
		receipt.Email,
		receipt.Telephone,
		receipt.Address,
		string(receipt.Island),
		receipt.Height,
		receipt.Width,
		receipt.Depth,
		receipt.Volume,
		receipt.Cost,
		receipt.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to append receipt")
	}
	return nil
}

// List returns every receipt in insertion order.
func (m *MySQLReceiptRepository) List(ctx context.Context) ([]*returnsDomain.ReceiptRecord, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, email, telephone, address, island_return,
			  box_height, box_width, box_depth, box_volume, cost, created_at
			  FROM receipts
			  ORDER BY created_at, id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list receipts")
	}
	defer func() { _ = rows.Close() }()

	receipts := make([]*returnsDomain.ReceiptRecord, 0)
	for rows.Next() {
		var receipt returnsDomain.ReceiptRecord
		var id []byte

		err := rows.Scan(
			&id,
			&receipt.Name,
			&receipt.Email,
			&receipt.Telephone,
			&receipt.Address,
			&receipt.Island,
			&receipt.Height,
			&receipt.Width,
			&receipt.Depth,
			&receipt.Volume,
			&receipt.Cost,
			&receipt.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan receipt")
		}

		if receipt.ID, err = uuid.FromBytes(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal receipt id")
		}
		receipts = append(receipts, &receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate receipts")
	}

	return receipts, nil
}

// NewMySQLReceiptRepository creates a new MySQL receipt repository.
func NewMySQLReceiptRepository(db *sql.DB) *MySQLReceiptRepository {
	return &MySQLReceiptRepository{db: db}
}
