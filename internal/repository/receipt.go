package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipt-ocr-engine/constants"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/common"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/entity"
	"github.com/joseph-ayodele/receipt-ocr-engine/internal/parser"
)

// CreateReceiptRequest carries everything needed to persist one extraction.
type CreateReceiptRequest struct {
	SourcePath    string
	Extraction    parser.ExtractionResult
	Status        constants.ParseStatus
	ExtractedJSON []byte
}

// ReceiptRepository stores and retrieves parsed receipts.
type ReceiptRepository interface {
	CreateFromExtraction(ctx context.Context, req *CreateReceiptRequest) (*entity.Receipt, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	ListReceipts(ctx context.Context, from, to *time.Time) ([]*entity.Receipt, error)
}

type receiptRepository struct {
	db     *DB
	logger *slog.Logger
}

// NewReceiptRepository creates a SQL-backed ReceiptRepository.
func NewReceiptRepository(db *DB, logger *slog.Logger) ReceiptRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &receiptRepository{db: db, logger: logger}
}

const txDateLayout = "2006-01-02"

func (r *receiptRepository) CreateFromExtraction(ctx context.Context, req *CreateReceiptRequest) (*entity.Receipt, error) {
	p := req.Extraction.Parsed

	rec := &entity.Receipt{
		ID:            uuid.New(),
		MerchantName:  p.MerchantName,
		ReceiptNumber: p.ReceiptNumber,
		TxDate:        p.Date,
		CurrencyCode:  p.Currency,
		Confidence:    req.Extraction.Confidence,
		Status:        req.Status,
		SourcePath:    req.SourcePath,
		ExtractedJSON: req.ExtractedJSON,
		CreatedAt:     time.Now().UTC(),
	}
	if p.Subtotal != nil {
		s := p.Subtotal.StringFixed(2)
		rec.Subtotal = &s
	}
	if p.TaxAmount != nil {
		s := p.TaxAmount.StringFixed(2)
		rec.Tax = &s
	}
	if p.TotalAmount != nil {
		s := p.TotalAmount.StringFixed(2)
		rec.Total = &s
	}
	for _, it := range p.Items {
		rec.Items = append(rec.Items, entity.ReceiptItem{
			Name:     it.Name,
			Price:    it.Price.StringFixed(2),
			Quantity: it.Quantity.String(),
		})
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, common.WrapError(err, "beginning transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var txDate any
	if rec.TxDate != nil {
		txDate = rec.TxDate.Format(txDateLayout)
	}
	_, err = tx.ExecContext(ctx, r.db.Rebind(
		`INSERT INTO receipts
			(id, merchant_name, receipt_number, tx_date, subtotal, tax, total,
			 currency_code, confidence, status, source_path, extracted_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		rec.ID.String(), rec.MerchantName, rec.ReceiptNumber, txDate,
		rec.Subtotal, rec.Tax, rec.Total,
		rec.CurrencyCode, rec.Confidence, string(rec.Status),
		rec.SourcePath, string(rec.ExtractedJSON), rec.CreatedAt)
	if err != nil {
		r.logger.Error("failed to insert receipt", "source_path", rec.SourcePath, "error", err)
		return nil, common.NewAppError("RECEIPT_INSERT", "inserting receipt", common.ErrDatabase)
	}

	for i, it := range rec.Items {
		_, err = tx.ExecContext(ctx, r.db.Rebind(
			`INSERT INTO receipt_items (receipt_id, position, name, price, quantity)
			 VALUES (?, ?, ?, ?, ?)`),
			rec.ID.String(), i, it.Name, it.Price, it.Quantity)
		if err != nil {
			r.logger.Error("failed to insert receipt item", "receipt_id", rec.ID, "position", i, "error", err)
			return nil, common.NewAppError("RECEIPT_ITEM_INSERT", "inserting receipt item", common.ErrDatabase)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, common.WrapError(err, "committing receipt")
	}

	r.logger.Info("receipt stored",
		"receipt_id", rec.ID,
		"status", rec.Status,
		"items", len(rec.Items))
	return rec, nil
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	row := r.db.QueryRowContext(ctx, r.db.Rebind(
		`SELECT id, merchant_name, receipt_number, tx_date, subtotal, tax, total,
			currency_code, confidence, status, source_path, extracted_json, created_at
		 FROM receipts WHERE id = ?`), id.String())

	rec, err := scanReceipt(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewAppError("RECEIPT_NOT_FOUND", "receipt not found", common.ErrNotFound)
		}
		return nil, common.WrapError(err, "querying receipt")
	}

	items, err := r.loadItems(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Items = items
	return rec, nil
}

func (r *receiptRepository) ListReceipts(ctx context.Context, from, to *time.Time) ([]*entity.Receipt, error) {
	query := `SELECT id, merchant_name, receipt_number, tx_date, subtotal, tax, total,
			currency_code, confidence, status, source_path, extracted_json, created_at
		 FROM receipts`
	var (
		conds []string
		args  []any
	)
	if from != nil {
		conds = append(conds, "tx_date >= ?")
		args = append(args, from.Format(txDateLayout))
	}
	if to != nil {
		conds = append(conds, "tx_date <= ?")
		args = append(args, to.Format(txDateLayout))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY tx_date, created_at"

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, common.WrapError(err, "listing receipts")
	}
	defer rows.Close()

	var out []*entity.Receipt
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, common.WrapError(err, "scanning receipt row")
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapError(err, "iterating receipt rows")
	}

	for _, rec := range out {
		items, err := r.loadItems(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		rec.Items = items
	}
	return out, nil
}

func (r *receiptRepository) loadItems(ctx context.Context, id uuid.UUID) ([]entity.ReceiptItem, error) {
	rows, err := r.db.QueryContext(ctx, r.db.Rebind(
		`SELECT name, price, quantity FROM receipt_items
		 WHERE receipt_id = ? ORDER BY position`), id.String())
	if err != nil {
		return nil, common.WrapError(err, "querying receipt items")
	}
	defer rows.Close()

	var items []entity.ReceiptItem
	for rows.Next() {
		var it entity.ReceiptItem
		if err := rows.Scan(&it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, common.WrapError(err, "scanning receipt item")
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReceipt(row rowScanner) (*entity.Receipt, error) {
	var (
		rec       entity.Receipt
		idStr     string
		txDate    sql.NullString
		extracted sql.NullString
		status    string
	)
	err := row.Scan(&idStr, &rec.MerchantName, &rec.ReceiptNumber, &txDate,
		&rec.Subtotal, &rec.Tax, &rec.Total,
		&rec.CurrencyCode, &rec.Confidence, &status,
		&rec.SourcePath, &extracted, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	rec.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	if txDate.Valid {
		t, err := time.Parse(txDateLayout, txDate.String)
		if err != nil {
			return nil, err
		}
		rec.TxDate = &t
	}
	if extracted.Valid && extracted.String != "" {
		rec.ExtractedJSON = []byte(extracted.String)
	}
	rec.Status = constants.ParseStatus(status)
	return &rec, nil
}
