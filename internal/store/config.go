package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

const currentSnapshotKey = "current_snapshot_id"

// GetConfigValue 读取键值配置，键不存在时返回空串
func (s *Store) GetConfigValue(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get config %q: %w", key, err)
	}
	return value, nil
}

// SetConfigValue 写入键值配置
func (s *Store) SetConfigValue(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO app_config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set config %q: %w", key, err)
	}
	return nil
}

// GetCurrentSnapshotID 当前操作的快照，未选择时返回 0
func (s *Store) GetCurrentSnapshotID() (int64, error) {
	value, err := s.GetConfigValue(currentSnapshotKey)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid current snapshot id %q: %w", value, err)
	}
	return id, nil
}

// SetCurrentSnapshotID 切换当前操作的快照
func (s *Store) SetCurrentSnapshotID(id int64) error {
	return s.SetConfigValue(currentSnapshotKey, strconv.FormatInt(id, 10))
}
