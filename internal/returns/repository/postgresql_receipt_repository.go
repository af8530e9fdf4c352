// Package repository implements the append-only receipt store. Receipts can
// be kept in a JSON file or in a PostgreSQL, MySQL or SQLite receipts table.
package repository

import (
	"context"
	"database/sql"

	"github.com/onlinz/returns/internal/database"
	apperrors "github.com/onlinz/returns/internal/errors"
	returnsDomain "github.com/onlinz/returns/internal/returns/domain"
)

// PostgreSQLReceiptRepository stores receipts in a PostgreSQL table.
type PostgreSQLReceiptRepository struct {
	db *sql.DB
}

// Append inserts receipt.
func (p *PostgreSQLReceiptRepository) Append(ctx context.Context, receipt *returnsDomain.ReceiptRecord) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO receipts (id, name, email, telephone, address, island_return,
			  box_height, box_width, box_depth, box_volume, cost, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := querier.ExecContext(
		ctx,
		query,
		receipt.ID,
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
func (p *PostgreSQLReceiptRepository) List(ctx context.Context) ([]*returnsDomain.ReceiptRecord, error) {
	querier := database.GetTx(ctx, p.db)

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
			&receipt.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan receipt")
		}
		receipts = append(receipts, &receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate receipts")
	}

	return receipts, nil
}

// NewPostgreSQLReceiptRepository creates a new PostgreSQL receipt repository.
func NewPostgreSQLReceiptRepository(db *sql.DB) *PostgreSQLReceiptRepository {
	return &PostgreSQLReceiptRepository{db: db}
}
