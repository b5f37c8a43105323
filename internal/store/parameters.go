package store

import (
	"encoding/json"
	"fmt"

	"bimkeeper/internal/model"
)

// InsertParameters 批量写入参数定义
// 类别绑定与取值采样以 JSON 列存储，读写始终整条进出
func (s *Store) InsertParameters(snapshotID int64, params []model.ParameterDef) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO parameters (snapshot_id, name, is_shared, guid, is_instance, storage_type, is_yes_no, categories_json, values_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert parameter: %w", err)
	}
	defer stmt.Close()

	for _, p := range params {
		categories, err := json.Marshal(p.Categories)
		if err != nil {
			return fmt.Errorf("failed to marshal categories of %q: %w", p.Name, err)
		}
		values, err := json.Marshal(p.Values)
		if err != nil {
			return fmt.Errorf("failed to marshal values of %q: %w", p.Name, err)
		}
		if _, err := stmt.Exec(snapshotID, p.Name, boolToInt(p.IsShared), p.GUID,
			boolToInt(p.IsInstance), string(p.StorageType), boolToInt(p.IsYesNo),
			string(categories), string(values)); err != nil {
			return fmt.Errorf("failed to insert parameter %q: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

// GetParameters 读取快照的全部参数定义
func (s *Store) GetParameters(snapshotID int64) ([]model.ParameterDef, error) {
	rows, err := s.db.Query(`
		SELECT id, snapshot_id, name, is_shared, guid, is_instance, storage_type, is_yes_no, categories_json, values_json
		FROM parameters WHERE snapshot_id = ? ORDER BY name
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query parameters: %w", err)
	}
	defer rows.Close()

	var params []model.ParameterDef
	for rows.Next() {
		var p model.ParameterDef
		var isShared, isInstance, isYesNo int
		var storageType, categoriesJSON, valuesJSON string
		if err := rows.Scan(&p.ID, &p.SnapshotID, &p.Name, &isShared, &p.GUID,
			&isInstance, &storageType, &isYesNo, &categoriesJSON, &valuesJSON); err != nil {
			return nil, fmt.Errorf("failed to scan parameter: %w", err)
		}
		p.IsShared = isShared != 0
		p.IsInstance = isInstance != 0
		p.IsYesNo = isYesNo != 0
		p.StorageType = model.StorageType(storageType)
		if err := json.Unmarshal([]byte(categoriesJSON), &p.Categories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal categories of %q: %w", p.Name, err)
		}
		if err := json.Unmarshal([]byte(valuesJSON), &p.Values); err != nil {
			return nil, fmt.Errorf("failed to unmarshal values of %q: %w", p.Name, err)
		}
		params = append(params, p)
	}
	return params, rows.Err()
}
