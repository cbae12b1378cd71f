package repository

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/aruneshvv/review-intel/internal/model"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

func (r *AnalysisRepository) SaveAnalysis(record *model.AnalysisRecord) error {
	return r.db.QueryRow(`
		INSERT INTO analysis(product, score, sentiment, summary, positives, negatives, sample_size)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, record.Product, record.Score, record.Sentiment, record.Summary,
		pq.Array(record.Positives), pq.Array(record.Negatives), record.SampleSize).Scan(&record.ID)
}

func (r *AnalysisRepository) GetAnalyses(limit, offset int) ([]model.AnalysisRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, product, score, sentiment, summary, positives, negatives, sample_size, created_at
		FROM analysis
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.AnalysisRecord
	for rows.Next() {
		var rec model.AnalysisRecord
		err := rows.Scan(&rec.ID, &rec.Product, &rec.Score, &rec.Sentiment, &rec.Summary,
			pq.Array(&rec.Positives), pq.Array(&rec.Negatives), &rec.SampleSize, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *AnalysisRepository) GetAnalysisTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM analysis`).Scan(&total)
	return total, err
}

func (r *AnalysisRepository) GetLatestByProduct(product string) (*model.AnalysisRecord, error) {
	var rec model.AnalysisRecord
	err := r.db.QueryRow(`
		SELECT id, product, score, sentiment, summary, positives, negatives, sample_size, created_at
		FROM analysis
		WHERE product = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, product).Scan(&rec.ID, &rec.Product, &rec.Score, &rec.Sentiment, &rec.Summary,
		pq.Array(&rec.Positives), pq.Array(&rec.Negatives), &rec.SampleSize, &rec.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rec, nil
}
