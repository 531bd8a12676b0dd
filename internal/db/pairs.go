package db

func (db *DB) InsertPairResults(runID string, pairs []PairRow) error {
	if len(pairs) == 0 {
		return nil
	}

	stmt, err := db.conn.Prepare(`
		INSERT INTO eval_pairs
		(run_id, idx, reference, hypothesis, wer, edits, ref_words,
		 substitutions, insertions, deletions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range pairs {
		_, err := stmt.Exec(runID, p.Idx, p.Reference, p.Hypothesis, p.WER,
			p.Edits, p.RefWords, p.Substitutions, p.Insertions, p.Deletions)
		if err != nil {
			return err
		}
	}

	return nil
}

func (db *DB) GetRunPairs(runID string) ([]PairRow, error) {
	rows, err := db.conn.Query(`
		SELECT id, run_id, idx, COALESCE(reference, ''), COALESCE(hypothesis, ''),
		       wer, edits, ref_words, substitutions, insertions, deletions
		FROM eval_pairs
		WHERE run_id = ?
		ORDER BY idx
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []PairRow
	for rows.Next() {
		var p PairRow
		err := rows.Scan(&p.ID, &p.RunID, &p.Idx, &p.Reference, &p.Hypothesis,
			&p.WER, &p.Edits, &p.RefWords, &p.Substitutions, &p.Insertions,
			&p.Deletions)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}

func (db *DB) DeleteRun(id string) error {
	if _, err := db.conn.Exec("DELETE FROM eval_pairs WHERE run_id = ?", id); err != nil {
		return err
	}
	_, err := db.conn.Exec("DELETE FROM eval_runs WHERE id = ?", id)
	return err
}
