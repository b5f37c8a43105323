package store

import (
	"fmt"

	"bimkeeper/internal/model"
)

// InsertViews 批量写入三维视图与视图样板
func (s *Store) InsertViews(snapshotID int64, views []model.View3D) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO views3d (snapshot_id, name, is_template, workset_vg_controlled)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert view: %w", err)
	}
	defer stmt.Close()

	for _, v := range views {
		if _, err := stmt.Exec(snapshotID, v.Name, boolToInt(v.IsTemplate), boolToInt(v.WorksetVGControlled)); err != nil {
			return fmt.Errorf("failed to insert view %q: %w", v.Name, err)
		}
	}
	return tx.Commit()
}

// GetViews 读取快照的全部三维视图与样板
func (s *Store) GetViews(snapshotID int64) ([]model.View3D, error) {
	rows, err := s.db.Query(`
		SELECT id, snapshot_id, name, is_template, workset_vg_controlled
		FROM views3d WHERE snapshot_id = ? ORDER BY name
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query views: %w", err)
	}
	defer rows.Close()

	var views []model.View3D
	for rows.Next() {
		var v model.View3D
		var isTemplate, controlled int
		if err := rows.Scan(&v.ID, &v.SnapshotID, &v.Name, &isTemplate, &controlled); err != nil {
			return nil, fmt.Errorf("failed to scan view: %w", err)
		}
		v.IsTemplate = isTemplate != 0
		v.WorksetVGControlled = controlled != 0
		views = append(views, v)
	}
	return views, rows.Err()
}
