package db

import (
	"database/sql"
	"strings"
)

func (db *DB) InsertRun(r *Run) error {
	_, err := db.conn.Exec(`
		INSERT INTO eval_runs (id, suite, source, status, pairs)
		VALUES (?, ?, ?, 'running', ?)`,
		r.ID, r.Suite, r.Source, r.Pairs)
	return err
}

func (db *DB) FinishRun(id string, pairs, totalEdits, totalRefWords int, overallWER float64, weightedWER *float64) error {
	_, err := db.conn.Exec(`
		UPDATE eval_runs SET
			status = 'completed',
			pairs = ?,
			total_edits = ?,
			total_ref_words = ?,
			overall_wer = ?,
			weighted_wer = ?,
			finished_at = NOW()
		WHERE id = ?`,
		pairs, totalEdits, totalRefWords, overallWER, weightedWER, id)
	return err
}

func (db *DB) FailRun(id string, errMsg string) error {
	_, err := db.conn.Exec(`
		UPDATE eval_runs SET status = 'error', error = ?, finished_at = NOW()
		WHERE id = ?`, errMsg, id)
	return err
}

// StopRun records the aggregates scored before the run was cancelled.
func (db *DB) StopRun(id string, pairs, totalEdits, totalRefWords int, overallWER float64) error {
	_, err := db.conn.Exec(`
		UPDATE eval_runs SET
			status = 'stopped',
			pairs = ?,
			total_edits = ?,
			total_ref_words = ?,
			overall_wer = ?,
			finished_at = NOW()
		WHERE id = ?`,
		pairs, totalEdits, totalRefWords, overallWER, id)
	return err
}

func (db *DB) GetRun(id string) (*Run, error) {
	var r Run
	var errMsg sql.NullString
	var weighted sql.NullFloat64
	var finished sql.NullTime

	err := db.conn.QueryRow(`
		SELECT id, suite, source, status, pairs, total_edits, total_ref_words,
		       overall_wer, weighted_wer, error, created_at, finished_at
		FROM eval_runs WHERE id = ?`, id).Scan(
		&r.ID, &r.Suite, &r.Source, &r.Status, &r.Pairs, &r.TotalEdits,
		&r.TotalRefWords, &r.OverallWER, &weighted, &errMsg, &r.CreatedAt, &finished)
	if err != nil {
		return nil, err
	}

	if errMsg.Valid {
		r.Error = errMsg.String
	}
	if weighted.Valid {
		r.WeightedWER = &weighted.Float64
	}
	if finished.Valid {
		r.FinishedAt = &finished.Time
	}

	return &r, nil
}

func (db *DB) ListRuns(page, limit int, suite, status string) (*RunListResult, error) {
	offset := (page - 1) * limit

	var conditions []string
	var args []interface{}

	if suite != "" {
		conditions = append(conditions, "suite = ?")
		args = append(args, suite)
	}
	if status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, status)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM eval_runs " + whereClause
	if err := db.conn.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, err
	}

	query := `
		SELECT id, suite, source, status, pairs, total_edits, total_ref_words,
		       overall_wer, weighted_wer, error, created_at, finished_at
		FROM eval_runs ` + whereClause + ` ORDER BY created_at DESC LIMIT ? OFFSET ?`

	args = append(args, limit, offset)
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var errMsg sql.NullString
		var weighted sql.NullFloat64
		var finished sql.NullTime
		err := rows.Scan(&r.ID, &r.Suite, &r.Source, &r.Status, &r.Pairs,
			&r.TotalEdits, &r.TotalRefWords, &r.OverallWER, &weighted,
			&errMsg, &r.CreatedAt, &finished)
		if err != nil {
			return nil, err
		}
		if errMsg.Valid {
			r.Error = errMsg.String
		}
		if weighted.Valid {
			r.WeightedWER = &weighted.Float64
		}
		if finished.Valid {
			r.FinishedAt = &finished.Time
		}
		runs = append(runs, r)
	}

	return &RunListResult{
		Runs:  runs,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}
