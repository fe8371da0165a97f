package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/apperrors"
	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	"github.com/exchwatch/currency_exchange_app/internal/models"
	"github.com/exchwatch/currency_exchange_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const rateColumns = "rate_id, from_currency, to_currency, day_of_rate, sale_rate, purchase_rate, created_at"

// PgxRateRepository implements the rate repository facade using pgx.
type PgxRateRepository struct {
	BaseRepository
}

// NewPgxRateRepository creates a new PgxRateRepository.
func NewPgxRateRepository(db PGXPool) *PgxRateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveRate inserts a single rate record. Rates are immutable once written.
func (r *PgxRateRepository) SaveRate(ctx context.Context, rate domain.RateRecord) error {
	modelRate := mapping.ToModelRateRecord(rate)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO currency_rates (`+rateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		modelRate.RateID, modelRate.FromCurrency, modelRate.ToCurrency,
		modelRate.DayOfRate, modelRate.SaleRate, modelRate.PurchaseRate,
		modelRate.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: rate %s already stored", apperrors.ErrDuplicate, rate.RateID)
		}
		return fmt.Errorf("failed to save rate: %w", err)
	}
	return nil
}

// ExistsForDay reports whether any rate record exists for the given day. This is
// the ingestion job's coarse per-day deduplication guard.
func (r *PgxRateRepository) ExistsForDay(ctx context.Context, day time.Time) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM currency_rates WHERE day_of_rate = $1)`,
		day,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check rates for day: %w", err)
	}
	return exists, nil
}

// ListRates retrieves rates matching the filter with page-based pagination,
// returning the total count of matching rows alongside the page.
func (r *PgxRateRepository) ListRates(ctx context.Context, filter domain.RateFilter, page, pageSize int) ([]domain.RateRecord, int, error) {
	baseQuery := `FROM currency_rates WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.FromCurrency != nil {
		baseQuery += fmt.Sprintf(" AND from_currency = $%d", argNum)
		args = append(args, *filter.FromCurrency)
		argNum++
	}
	if filter.ToCurrency != nil {
		baseQuery += fmt.Sprintf(" AND to_currency = $%d", argNum)
		args = append(args, *filter.ToCurrency)
		argNum++
	}
	if filter.DayOfRate != nil {
		baseQuery += fmt.Sprintf(" AND day_of_rate = $%d", argNum)
		args = append(args, *filter.DayOfRate)
		argNum++
	}
	if filter.DayOfRateGte != nil {
		baseQuery += fmt.Sprintf(" AND day_of_rate >= $%d", argNum)
		args = append(args, *filter.DayOfRateGte)
		argNum++
	}
	if filter.DayOfRateLte != nil {
		baseQuery += fmt.Sprintf(" AND day_of_rate <= $%d", argNum)
		args = append(args, *filter.DayOfRateLte)
		argNum++
	}

	var total int
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count rates: %w", err)
	}

	if total == 0 {
		return []domain.RateRecord{}, 0, nil
	}

	baseQuery += " ORDER BY day_of_rate, to_currency"
	if pageSize > 0 {
		offset := (page - 1) * pageSize
		baseQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
		args = append(args, pageSize, offset)
	}

	rows, err := r.Pool.Query(ctx, "SELECT "+rateColumns+" "+baseQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rates: %w", err)
	}
	defer rows.Close()

	var rates []domain.RateRecord
	for rows.Next() {
		var modelRate models.RateRecord
		err := rows.Scan(
			&modelRate.RateID, &modelRate.FromCurrency, &modelRate.ToCurrency,
			&modelRate.DayOfRate, &modelRate.SaleRate, &modelRate.PurchaseRate,
			&modelRate.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan rate: %w", err)
		}
		rates = append(rates, mapping.ToDomainRateRecord(modelRate))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rates: %w", err)
	}

	return rates, total, nil
}

// RateStatistics groups rates with day_of_rate in [gte, lte] by to_currency and
// computes min/max sale rate per group. Grouping order is whatever the database
// yields.
func (r *PgxRateRepository) RateStatistics(ctx context.Context, gte, lte time.Time) ([]domain.RateStatistic, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT to_currency, MIN(sale_rate), MAX(sale_rate)
		FROM currency_rates
		WHERE day_of_rate BETWEEN $1 AND $2
		GROUP BY to_currency`,
		gte, lte,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate statistics: %w", err)
	}
	defer rows.Close()

	var stats []domain.RateStatistic
	for rows.Next() {
		var stat domain.RateStatistic
		if err := rows.Scan(&stat.ToCurrency, &stat.Min, &stat.Max); err != nil {
			return nil, fmt.Errorf("failed to scan rate statistic: %w", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rate statistics: %w", err)
	}

	return stats, nil
}

// FindRateForDays returns the most recent rate for toCurrency dated one of the
// given days.
func (r *PgxRateRepository) FindRateForDays(ctx context.Context, toCurrency string, days []time.Time) (*domain.RateRecord, error) {
	var modelRate models.RateRecord
	err := r.Pool.QueryRow(ctx, `
		SELECT `+rateColumns+`
		FROM currency_rates
		WHERE to_currency = $1 AND day_of_rate = ANY($2)
		ORDER BY day_of_rate DESC
		LIMIT 1`,
		toCurrency, days,
	).Scan(
		&modelRate.RateID, &modelRate.FromCurrency, &modelRate.ToCurrency,
		&modelRate.DayOfRate, &modelRate.SaleRate, &modelRate.PurchaseRate,
		&modelRate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no rate for currency %s", apperrors.ErrNotFound, toCurrency)
		}
		return nil, fmt.Errorf("failed to find rate for currency %s: %w", toCurrency, err)
	}

	domainRate := mapping.ToDomainRateRecord(modelRate)
	return &domainRate, nil
}
