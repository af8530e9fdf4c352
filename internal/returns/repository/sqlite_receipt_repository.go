package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/onlinz/returns/internal/database"
	apperrors "github.com/onlinz/returns/internal/errors"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

// SQLiteReceiptRepository stores receipts in a local SQLite database. IDs are
// kept as text and timestamps as RFC 3339 text in UTC.
type SQLiteReceiptRepository struct {
	db *sql.DB
}

// Append inserts receipt.
func (s *SQLiteReceiptRepository) Append(ctx context.Context, receipt *returnsDomain.ReceiptRecord) error {
	querier := database.GetTx(ctx, s.db)

	query := `INSERT INTO receipts (id, name, email, telephone, address, island_return,
			  box_height, box_width, box_depth, box_volume, cost, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		receipt.ID.String(),
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
		receipt.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to append receipt")
	}
	return nil
}

// List returns every receipt in insertion order.
func (s *SQLiteReceiptRepository) List(ctx context.Context) ([]*returnsDomain.ReceiptRecord, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT id, name, email, telephone, address, island_return,
			  box_height, box_width, box_depth, box_volume, cost, created_at
			  FROM receipts
			  ORDER BY rowid`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list receipts")
	}
	defer func() { _ = rows.Close() }()

	receipts := make([]*returnsDomain.ReceiptRecord, 0)
	for rows.Next() {
		var receipt returnsDomain.ReceiptRecord
		var createdAt string

		err := rows.Scan(
			&receipt.ID,
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
			&createdAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan receipt")
		}

		if receipt.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse receipt created_at")
		}
		receipts = append(receipts, &receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate receipts")
	}

	return receipts, nil
}

// NewSQLiteReceiptRepository creates a new SQLite receipt repository.
func NewSQLiteReceiptRepository(db *sql.DB) *SQLiteReceiptRepository {
	return &SQLiteReceiptRepository{db: db}
}
