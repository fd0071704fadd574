package repositories

import (
	"context"
	"fmt"
	"time"

	"pyc-official/secretariat/internal/constants"
	"pyc-official/secretariat/internal/models/dtos"

	"github.com/jmoiron/sqlx"
)

// StatsRepo aggregates dashboard counters with raw SQL over sqlx.
type StatsRepo struct {
	db *sqlx.DB
}

func NewStatsRepo(db *sqlx.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

type statusCountRow struct {
	Status string `db:"status"`
	Total  int64  `db:"total"`
}

// RegistrationStats returns counts by review status plus member totals.
func (r *StatsRepo) RegistrationStats(ctx context.Context, dayStart time.Time) (*dtos.RegistrationStatsResponse, error) {
	var rows []statusCountRow
	if err := r.db.SelectContext(ctx, &rows, constants.QueryRegistrationStatusCounts); err != nil {
		return nil, fmt.Errorf("failed to count registrations: %w", err)
	}

	stats := &dtos.RegistrationStatsResponse{}
	for _, row := range rows {
		switch constants.RegistrationStatus(row.Status) {
		case constants.StatusPending:
			stats.Pending = row.Total
		case constants.StatusContacted:
			stats.Contacted = row.Total
		}
	}

	if err := r.db.GetContext(ctx, &stats.Members, constants.QueryMemberCount); err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	if err := r.db.GetContext(ctx, &stats.CheckinsToday, constants.QueryCheckinsToday, dayStart); err != nil {
		return nil, fmt.Errorf("failed to count check-ins: %w", err)
	}

	return stats, nil
}
