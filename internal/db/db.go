package db

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

type DB struct {
	conn *sql.DB
}

func New(host string, port int, user, password, dbname string) (*DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true",
		user, password, host, port, dbname)

	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	conn.SetMaxOpenConns(50)
	conn.SetMaxIdleConns(10)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	return &DB{conn: conn}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) CreateTables() error {
	runs := `
	CREATE TABLE IF NOT EXISTS eval_runs (
		id VARCHAR(36) PRIMARY KEY,
		suite VARCHAR(255) NOT NULL DEFAULT '',
		source VARCHAR(32) NOT NULL DEFAULT 'api',
		status VARCHAR(16) NOT NULL DEFAULT 'running',
		pairs INT NOT NULL DEFAULT 0,
		total_edits INT NOT NULL DEFAULT 0,
		total_ref_words INT NOT NULL DEFAULT 0,
		overall_wer DOUBLE NOT NULL DEFAULT 0,
		weighted_wer DOUBLE NULL,
		error TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		finished_at TIMESTAMP NULL DEFAULT NULL,
		INDEX idx_suite (suite),
		INDEX idx_status (status)
	)`
	if _, err := db.conn.Exec(runs); err != nil {
		return err
	}

	pairs := `
	CREATE TABLE IF NOT EXISTS eval_pairs (
		id INT AUTO_INCREMENT PRIMARY KEY,
		run_id VARCHAR(36) NOT NULL,
		idx INT NOT NULL,
		reference TEXT,
		hypothesis TEXT,
		wer DOUBLE NOT NULL DEFAULT 0,
		edits INT NOT NULL DEFAULT 0,
		ref_words INT NOT NULL DEFAULT 0,
		substitutions INT NOT NULL DEFAULT 0,
		insertions INT NOT NULL DEFAULT 0,
		deletions INT NOT NULL DEFAULT 0,
		INDEX idx_run (run_id)
	)`
	_, err := db.conn.Exec(pairs)
	return err
}

// Run is one evaluation run: a batch of reference/hypothesis pairs
// scored together.
type Run struct {
	ID            string     `json:"id"`
	Suite         string     `json:"suite,omitempty"`
	Source        string     `json:"source"`
	Status        string     `json:"status"`
	Pairs         int        `json:"pairs"`
	TotalEdits    int        `json:"total_edits"`
	TotalRefWords int        `json:"total_ref_words"`
	OverallWER    float64    `json:"overall_wer"`
	WeightedWER   *float64   `json:"weighted_wer,omitempty"`
	Error         string     `json:"error,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

// PairRow is the stored per-pair result within a run.
type PairRow struct {
	ID            int64   `json:"id"`
	RunID         string  `json:"run_id"`
	Idx           int     `json:"idx"`
	Reference     string  `json:"reference"`
	Hypothesis    string  `json:"hypothesis"`
	WER           float64 `json:"wer"`
	Edits         int     `json:"edits"`
	RefWords      int     `json:"ref_words"`
	Substitutions int     `json:"substitutions"`
	Insertions    int     `json:"insertions"`
	Deletions     int     `json:"deletions"`
}

type RunListResult struct {
	Runs  []Run `json:"runs"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

var (
	statsCache     map[string]interface{}
	statsCacheTime time.Time
	statsCacheMu   sync.RWMutex
)

func (db *DB) StatsCached() (map[string]interface{}, error) {
	statsCacheMu.RLock()
	if statsCache != nil && time.Since(statsCacheTime) < 30*time.Second {
		defer statsCacheMu.RUnlock()
		return statsCache, nil
	}
	statsCacheMu.RUnlock()

	stats, err := db.Stats()
	if err != nil {
		return nil, err
	}

	statsCacheMu.Lock()
	statsCache = stats
	statsCacheTime = time.Now()
	statsCacheMu.Unlock()

	return stats, nil
}

func (db *DB) Stats() (map[string]interface{}, error) {
	result := make(map[string]interface{})

	var total, running, completed, failed, stopped int
	var suites int
	err := db.conn.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'running' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'error' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'stopped' THEN 1 ELSE 0 END), 0),
			COUNT(DISTINCT CASE WHEN suite != '' THEN suite END)
		FROM eval_runs`).Scan(&total, &running, &completed, &failed, &stopped, &suites)
	if err != nil {
		return nil, err
	}

	var totalPairs, totalEdits, totalRefWords int64
	var corpusWER, avgRunWER float64
	err = db.conn.QueryRow(`
		SELECT
			COALESCE(SUM(pairs), 0),
			COALESCE(SUM(total_edits), 0),
			COALESCE(SUM(total_ref_words), 0),
			COALESCE(SUM(total_edits) / GREATEST(SUM(total_ref_words), 1), 0),
			COALESCE(AVG(overall_wer), 0)
		FROM eval_runs
		WHERE status = 'completed'`).Scan(&totalPairs, &totalEdits, &totalRefWords, &corpusWER, &avgRunWER)
	if err != nil {
		return nil, err
	}

	result["total_runs"] = total
	result["running"] = running
	result["completed"] = completed
	result["failed"] = failed
	result["stopped"] = stopped
	result["suites"] = suites
	result["total_pairs"] = totalPairs
	result["total_edits"] = totalEdits
	result["total_ref_words"] = totalRefWords
	result["corpus_wer"] = corpusWER
	result["avg_run_wer"] = avgRunWER

	return result, nil
}
