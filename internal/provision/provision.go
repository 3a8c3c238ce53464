// Package provision runs declarative one-off machine provisioning tasks.
// Tasks replace the ad-hoc shell scripts a developer would otherwise run by
// hand when setting up a new machine (installing editors, toolchains, VPN
// clients) with a YAML manifest of named command sequences.
package provision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/seojun-dev/denv/internal/cmdexec"
	"github.com/seojun-dev/denv/internal/vcs"
)

// ErrProvision은 provisioning manifest/실행 오류 sentinel error다.
var ErrProvision = errors.New("provisioning 실패")

// Manifest는 provisioning 작업 선언이다.
type Manifest struct {
	Version int    `yaml:"version"`
	Tasks   []Task `yaml:"tasks"`
}

// Task는 하나의 일회성 provisioning 작업이다.
type Task struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Clone이 비어있지 않으면 해당 리포를 scratch 디렉토리에 클론하고
	// 그 안에서 Steps를 실행한다.
	Clone string `yaml:"clone"`
	// Steps는 순서대로 실행할 외부 명령 목록이다. 첫 실패에서 중단한다.
	Steps [][]string `yaml:"steps"`
}

// LoadManifest는 YAML manifest를 파싱하고 검증한다.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("provision.LoadManifest: %w: %v", ErrProvision, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("provision.LoadManifest: %w: %v", ErrProvision, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Find는 이름으로 작업을 조회한다.
func (m *Manifest) Find(name string) (*Task, bool) {
	for i := range m.Tasks {
		if m.Tasks[i].Name == name {
			return &m.Tasks[i], true
		}
	}
	return nil, false
}

func (m *Manifest) validate() error {
	seen := make(map[string]bool, len(m.Tasks))
	for _, t := range m.Tasks {
		if t.Name == "" {
			return fmt.Errorf("provision.LoadManifest: %w: 이름 없는 작업", ErrProvision)
		}
		if seen[t.Name] {
			return fmt.Errorf("provision.LoadManifest: %w: 작업 이름 중복: %s", ErrProvision, t.Name)
		}
		seen[t.Name] = true
		if len(t.Steps) == 0 && t.Clone == "" {
			return fmt.Errorf("provision.LoadManifest: %w: 작업 %s에 step 없음", ErrProvision, t.Name)
		}
		for i, step := range t.Steps {
			if len(step) == 0 || step[0] == "" {
				return fmt.Errorf("provision.LoadManifest: %w: 작업 %s의 step %d이 비어있음",
					ErrProvision, t.Name, i+1)
			}
		}
	}
	return nil
}

// Runner는 provisioning 작업을 순서대로 실행한다.
type Runner struct {
	Commander cmdexec.Commander
	VCS       *vcs.Adapter
	// WorkDir는 클론용 scratch 루트다. 비어있으면 임시 디렉토리를 생성한다.
	WorkDir string
	// Out은 진행 로그 출력 대상이다. nil이면 os.Stderr.
	Out io.Writer
}

// Run은 이름이 지정된 작업을, 이름이 없으면 모든 작업을 실행한다.
func (r *Runner) Run(ctx context.Context, m *Manifest, names []string) error {
	tasks, err := selectTasks(m, names)
	if err != nil {
		return err
	}

	out := r.Out
	if out == nil {
		out = os.Stderr
	}

	for _, t := range tasks {
		fmt.Fprintf(out, "denv: 작업 %s 실행\n", t.Name)
		if err := r.runTask(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runTask(ctx context.Context, t *Task) error {
	dir := ""

	if t.Clone != "" {
		root := r.WorkDir
		if root == "" {
			tmp, err := os.MkdirTemp("", "denv-provision-")
			if err != nil {
				return fmt.Errorf("provision.Run: %w: %v", ErrProvision, err)
			}
			root = tmp
		}
		dest := filepath.Join(root, vcs.RepoName(t.Clone))
		if err := r.VCS.Clone(ctx, t.Clone, dest); err != nil {
			return fmt.Errorf("provision.Run: 작업 %s: %w: %v", t.Name, ErrProvision, err)
		}
		dir = dest
	}

	for i, step := range t.Steps {
		out, err := r.Commander.RunDir(ctx, dir, step[0], step[1:]...)
		if err != nil {
			return fmt.Errorf("provision.Run: 작업 %s의 step %d 실패: %w: %v\n%s",
				t.Name, i+1, ErrProvision, err, out)
		}
	}
	return nil
}

func selectTasks(m *Manifest, names []string) ([]*Task, error) {
	if len(names) == 0 {
		tasks := make([]*Task, 0, len(m.Tasks))
		for i := range m.Tasks {
			tasks = append(tasks, &m.Tasks[i])
		}
		return tasks, nil
	}

	tasks := make([]*Task, 0, len(names))
	for _, name := range names {
		t, ok := m.Find(name)
		if !ok {
			return nil, fmt.Errorf("provision.Run: %w: 작업 %s 없음", ErrProvision, name)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
