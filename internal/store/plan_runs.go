package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrPlanRunNotFound 指定方案运行不存在
var ErrPlanRunNotFound = errors.New("plan run not found")

// PlanRun 一次维护方案运行的持久化记录
// 方案内容与选项以 JSON 存储，按 kind 区分反序列化目标
type PlanRun struct {
	ID          string    `json:"id"`
	SnapshotID  int64     `json:"snapshotId"`
	Kind        string    `json:"kind"` // worksets/parameters/images/views
	OptionsJSON string    `json:"optionsJson"`
	ResultJSON  string    `json:"resultJson"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreatePlanRun 写入方案运行记录
func (s *Store) CreatePlanRun(run PlanRun) error {
	_, err := s.db.Exec(`
		INSERT INTO plan_runs (id, snapshot_id, kind, options_json, result_json)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.SnapshotID, run.Kind, run.OptionsJSON, run.ResultJSON)
	if err != nil {
		return fmt.Errorf("failed to create plan run: %w", err)
	}
	return nil
}

// GetPlanRun 按 ID 读取方案运行记录
func (s *Store) GetPlanRun(id string) (*PlanRun, error) {
	row := s.db.QueryRow(`
		SELECT id, snapshot_id, kind, options_json, result_json, created_at
		FROM plan_runs WHERE id = ?
	`, id)

	var run PlanRun
	err := row.Scan(&run.ID, &run.SnapshotID, &run.Kind, &run.OptionsJSON, &run.ResultJSON, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan run: %w", err)
	}
	return &run, nil
}

// ListPlanRuns 按时间倒序列出快照的方案运行记录
func (s *Store) ListPlanRuns(snapshotID int64) ([]PlanRun, error) {
	rows, err := s.db.Query(`
		SELECT id, snapshot_id, kind, options_json, result_json, created_at
		FROM plan_runs WHERE snapshot_id = ? ORDER BY created_at DESC
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan runs: %w", err)
	}
	defer rows.Close()

	var runs []PlanRun
	for rows.Next() {
		var run PlanRun
		if err := rows.Scan(&run.ID, &run.SnapshotID, &run.Kind, &run.OptionsJSON, &run.ResultJSON, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
