package store

import (
	"database/sql"
	"errors"
	"fmt"

	"bimkeeper/internal/model"
)

// ErrSnapshotNotFound 指定快照不存在
var ErrSnapshotNotFound = errors.New("snapshot not found")

// CreateSnapshot 创建快照记录，返回 snapshot_id
// 文档概要信息可能在后续 Sheet 解析后才补齐，见 UpdateSnapshotDocument
func (s *Store) CreateSnapshot(filename string) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO snapshots (filename) VALUES (?)`, filename)
	if err != nil {
		return 0, fmt.Errorf("failed to create snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get snapshot id: %w", err)
	}
	return id, nil
}

// UpdateSnapshotDocument 补写快照的文档概要信息
func (s *Store) UpdateSnapshotDocument(id int64, doc model.DocumentInfo) error {
	_, err := s.db.Exec(`
		UPDATE snapshots SET
			title = ?,
			revit_version = ?,
			is_workshared = ?,
			can_enable_worksharing = ?,
			central_guid = ?,
			central_path = ?,
			central_size_bytes = ?
		WHERE id = ?
	`, doc.Title, doc.RevitVersion, boolToInt(doc.IsWorkshared), boolToInt(doc.CanEnableWorksharing),
		doc.CentralGUID, doc.CentralPath, doc.CentralSizeBytes, id)
	if err != nil {
		return fmt.Errorf("failed to update snapshot document: %w", err)
	}
	return nil
}

// GetSnapshot 获取单个快照
func (s *Store) GetSnapshot(id int64) (*model.Snapshot, error) {
	row := s.db.QueryRow(`
		SELECT id, filename, title, revit_version, is_workshared, can_enable_worksharing,
		       central_guid, central_path, central_size_bytes, created_at
		FROM snapshots WHERE id = ?
	`, id)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots 按导入时间倒序列出全部快照
func (s *Store) ListSnapshots() ([]*model.Snapshot, error) {
	rows, err := s.db.Query(`
		SELECT id, filename, title, revit_version, is_workshared, can_enable_worksharing,
		       central_guid, central_path, central_size_bytes, created_at
		FROM snapshots ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []*model.Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// DeleteSnapshot 删除快照及其全部关联数据（外键级联）
func (s *Store) DeleteSnapshot(id int64) error {
	res, err := s.db.Exec(`DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(r rowScanner) (*model.Snapshot, error) {
	snap := &model.Snapshot{}
	var workshared, canEnable int
	err := r.Scan(
		&snap.ID, &snap.Filename, &snap.Document.Title, &snap.Document.RevitVersion,
		&workshared, &canEnable, &snap.Document.CentralGUID, &snap.Document.CentralPath,
		&snap.Document.CentralSizeBytes, &snap.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	snap.Document.IsWorkshared = workshared != 0
	snap.Document.CanEnableWorksharing = canEnable != 0
	return snap, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
