// Package state persists the results of the last ensure run per project.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/seojun-dev/denv/internal/ensure"
)

// State는 프로젝트별 마지막 ensure 실행 기록이다.
type State struct {
	Version int              `json:"version"`
	Entries map[string]Entry `json:"entries"`
}

// Entry는 하나의 프로젝트 기록이다. 키는 프로젝트 절대 경로다.
type Entry struct {
	// Results는 단계 이름에서 결과 상태로의 매핑이다.
	Results map[string]string `json:"results"`
	// RanAt은 실행 시각이다 (RFC3339).
	RanAt string `json:"ran_at"`
}

// New는 빈 상태를 생성한다.
func New() *State {
	return &State{Version: 1, Entries: make(map[string]Entry)}
}

// Load는 상태 파일을 파싱한다. 파일 없음/파싱 실패 시 빈 상태 반환 (graceful).
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("state.Load: %w", err)
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return New(), nil
	}
	if s.Entries == nil {
		s.Entries = make(map[string]Entry)
	}
	return &s, nil
}

// Lookup은 프로젝트 경로로 기록을 조회한다.
func (s *State) Lookup(dir string) (*Entry, bool) {
	e, ok := s.Entries[dir]
	if !ok {
		return nil, false
	}
	return &e, true
}

// Record는 ensure 실행 결과를 기록한다.
func (s *State) Record(dir string, results []ensure.Result) {
	entry := Entry{
		Results: make(map[string]string, len(results)),
		RanAt:   time.Now().Format(time.RFC3339),
	}
	for _, r := range results {
		entry.Results[r.Step] = string(r.Status)
	}
	s.Entries[dir] = entry
}

// Save는 상태를 JSON 파일로 저장한다 (0600 권한).
func (s *State) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("state.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("state.Save: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("state.Save: %w", err)
	}
	return nil
}
