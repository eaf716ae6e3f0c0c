package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/shopspring/decimal"
)

const spinColumns = `id, user_id, ip_address, fingerprint, amount, claimed, spun_at`

// SpinRepository stores cooldown records and the credit history of spins
type SpinRepository struct {
	db *sqlx.DB
}

func NewSpinRepository(db *sqlx.DB) *SpinRepository {
	return &SpinRepository{db: db}
}

// LockKeys takes a transaction-scoped advisory lock per key. Callers must pass
// the keys in a stable order and run inside a transaction.
func (r *SpinRepository) LockKeys(ctx context.Context, keys []string) error {
	const query = `SELECT pg_advisory_xact_lock(hashtext($1))`

	for _, key := range keys {
		_, err := executor(ctx, r.db).ExecContext(ctx, query, key)
		logQuery(query, []any{key}, nil, err)
		if err != nil {
			return err
		}
	}
	return nil
}

// LastSpins returns the latest spin time per key. Nil userID or fingerprint
// leave the matching field empty.
func (r *SpinRepository) LastSpins(ctx context.Context, ip string, userID *int64, fingerprint *string) (models.LastSpinsDB, error) {
	const query = `
		SELECT
			(SELECT MAX(spun_at) FROM spin_cooldowns WHERE ip_address = $1) AS last_ip,
			(SELECT MAX(spun_at) FROM spin_cooldowns WHERE $2::BIGINT IS NOT NULL AND user_id = $2) AS last_user,
			(SELECT MAX(spun_at) FROM spin_cooldowns WHERE $3::TEXT IS NOT NULL AND fingerprint = $3) AS last_fingerprint
	`

	args := []any{ip, userID, fingerprint}

	var last models.LastSpinsDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &last, query, args...)

	logQuery(query, args, last, err)

	return last, err
}

// InsertCooldown records a spin and returns its id.
func (r *SpinRepository) InsertCooldown(ctx context.Context, rec models.SpinCooldownDB) (int64, error) {
	const query = `
		INSERT INTO spin_cooldowns (user_id, ip_address, fingerprint, amount, claimed, spun_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	args := []any{rec.UserID, rec.IPAddress, rec.Fingerprint, rec.Amount, rec.Claimed, rec.SpunAt}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &id, query, args...)

	logQuery(query, args, id, err)

	return id, err
}

// LatestUnclaimedByIP locks and returns the most recent anonymous, unclaimed
// record of ip. It returns nil without error when there is none.
func (r *SpinRepository) LatestUnclaimedByIP(ctx context.Context, ip string) (*models.SpinCooldownDB, error) {
	const query = `
		SELECT ` + spinColumns + `
		FROM spin_cooldowns
		WHERE ip_address = $1 AND claimed = FALSE AND user_id IS NULL
		ORDER BY spun_at DESC, id DESC
		LIMIT 1
		FOR UPDATE
	`

	var rec models.SpinCooldownDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &rec, query, ip)

	logQuery(query, []any{ip}, rec.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// MarkClaimed assigns an unclaimed record to userID.
func (r *SpinRepository) MarkClaimed(ctx context.Context, id, userID int64) error {
	const query = `
		UPDATE spin_cooldowns
		SET claimed = TRUE, user_id = $1
		WHERE id = $2 AND claimed = FALSE
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, userID, id)
	var rows int64
	if res != nil {
		rows, _ = res.RowsAffected()
	}

	logQuery(query, []any{userID, id}, rows, err)

	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAlreadyClaimed
	}
	return nil
}

// AddHistory appends a credited spin to the user's history.
func (r *SpinRepository) AddHistory(ctx context.Context, userID int64, amount decimal.Decimal, spunAt time.Time) error {
	const query = `
		INSERT INTO spin_history (user_id, amount, spun_at)
		VALUES ($1, $2, $3)
	`

	args := []any{userID, amount, spunAt}
	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logQuery(query, args, nil, err)

	return err
}
