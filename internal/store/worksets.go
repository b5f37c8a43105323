package store

import (
	"fmt"

	"bimkeeper/internal/model"
)

// InsertWorksets 批量写入用户工作集
func (s *Store) InsertWorksets(snapshotID int64, worksets []model.Workset) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO worksets (snapshot_id, name, is_default, is_editable)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert workset: %w", err)
	}
	defer stmt.Close()

	for _, w := range worksets {
		if _, err := stmt.Exec(snapshotID, w.Name, boolToInt(w.IsDefault), boolToInt(w.IsEditable)); err != nil {
			return fmt.Errorf("failed to insert workset %q: %w", w.Name, err)
		}
	}
	return tx.Commit()
}

// GetWorksets 读取快照的全部用户工作集
func (s *Store) GetWorksets(snapshotID int64) ([]model.Workset, error) {
	rows, err := s.db.Query(`
		SELECT id, snapshot_id, name, is_default, is_editable
		FROM worksets WHERE snapshot_id = ? ORDER BY name
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query worksets: %w", err)
	}
	defer rows.Close()

	var worksets []model.Workset
	for rows.Next() {
		var w model.Workset
		var isDefault, isEditable int
		if err := rows.Scan(&w.ID, &w.SnapshotID, &w.Name, &isDefault, &isEditable); err != nil {
			return nil, fmt.Errorf("failed to scan workset: %w", err)
		}
		w.IsDefault = isDefault != 0
		w.IsEditable = isEditable != 0
		worksets = append(worksets, w)
	}
	return worksets, rows.Err()
}
