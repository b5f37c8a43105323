package store

import (
	"fmt"

	"bimkeeper/internal/model"
)

// InsertLinks 批量写入链接实例
func (s *Store) InsertLinks(snapshotID int64, links []model.RevitLink) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO links (snapshot_id, name, instance_workset, type_workset)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert link: %w", err)
	}
	defer stmt.Close()

	for _, link := range links {
		if _, err := stmt.Exec(snapshotID, link.Name, link.InstanceWorkset, link.TypeWorkset); err != nil {
			return fmt.Errorf("failed to insert link %q: %w", link.Name, err)
		}
	}
	return tx.Commit()
}

// GetLinks 读取快照的全部链接实例
func (s *Store) GetLinks(snapshotID int64) ([]model.RevitLink, error) {
	rows, err := s.db.Query(`
		SELECT id, snapshot_id, name, instance_workset, type_workset
		FROM links WHERE snapshot_id = ? ORDER BY id
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var links []model.RevitLink
	for rows.Next() {
		var link model.RevitLink
		if err := rows.Scan(&link.ID, &link.SnapshotID, &link.Name, &link.InstanceWorkset, &link.TypeWorkset); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}
