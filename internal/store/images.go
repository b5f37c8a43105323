package store

import (
	"fmt"

	"bimkeeper/internal/model"
)

// InsertImages 批量写入图片类型
func (s *Store) InsertImages(snapshotID int64, images []model.ImageType) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO images (snapshot_id, name) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert image: %w", err)
	}
	defer stmt.Close()

	for _, img := range images {
		if _, err := stmt.Exec(snapshotID, img.Name); err != nil {
			return fmt.Errorf("failed to insert image %q: %w", img.Name, err)
		}
	}
	return tx.Commit()
}

// GetImages 读取快照的全部图片类型
func (s *Store) GetImages(snapshotID int64) ([]model.ImageType, error) {
	rows, err := s.db.Query(`
		SELECT id, snapshot_id, name FROM images WHERE snapshot_id = ? ORDER BY name
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query images: %w", err)
	}
	defer rows.Close()

	var images []model.ImageType
	for rows.Next() {
		var img model.ImageType
		if err := rows.Scan(&img.ID, &img.SnapshotID, &img.Name); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
