package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seojun-dev/denv/internal/cmdexec"
	"github.com/seojun-dev/denv/internal/config"
	"github.com/seojun-dev/denv/internal/machine"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// installHints는 알려진 바이너리의 설치 안내다.
var installHints = map[string]string{
	"git":        "https://git-scm.com/downloads",
	"uv":         "https://docs.astral.sh/uv/getting-started/installation/",
	"podman":     "https://podman.io/docs/installation",
	"docker":     "https://docs.docker.com/get-docker/",
	"jq":         "https://jqlang.github.io/jq/download/",
	"pre-commit": "pipx install pre-commit",
}

// CheckBinaries는 필수 바이너리 존재 여부를 확인한다.
func CheckBinaries(ctx context.Context, cmd cmdexec.Commander, binaries []string) []DiagResult {
	var results []DiagResult
	for _, name := range binaries {
		out, err := cmd.Run(ctx, name, "--version")
		if err != nil {
			fix := installHints[name]
			if fix == "" {
				fix = fmt.Sprintf("%s 설치 필요", name)
			}
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusFail,
				Message: fmt.Sprintf("%s 없음", name),
				Fix:     fmt.Sprintf("설치: %s", fix),
			})
			continue
		}
		// 첫 줄만 사용 — 일부 도구는 여러 줄을 출력한다.
		version, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
		results = append(results, DiagResult{
			Name:    name,
			Status:  StatusOK,
			Message: version,
		})
	}
	return results
}

// RequiredBinaries는 설정 기준 확인 대상 바이너리 목록을 반환한다.
func RequiredBinaries(cfg *config.Config) []string {
	binaries := []string{"git", cfg.Python.SyncCommand[0]}
	if cfg.Machine.Start != config.StartNever {
		binaries = append(binaries, cfg.Machine.Engine)
	}
	binaries = append(binaries, cfg.Doctor.Binaries...)
	return binaries
}

// CheckConfig는 설정 파일을 확인한다.
func CheckConfig(path string) DiagResult {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 없음 — 기본 설정 사용", path),
			Fix:     "denv setup 실행",
		}
	}
	if _, err := config.Load(path); err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     "설정 파일 문법 확인",
		}
	}
	return DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: path,
	}
}

// CheckMarkers는 프로젝트 디렉토리의 파일시스템 마커를 확인한다.
func CheckMarkers(cfg *config.Config, dir string) []DiagResult {
	var results []DiagResult

	manifestPath := filepath.Join(dir, cfg.Python.Manifest)
	if _, err := os.Stat(manifestPath); err != nil {
		results = append(results, DiagResult{
			Name:    "manifest",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 없음 — venv 동기화가 건너뛰어짐", cfg.Python.Manifest),
		})
	} else {
		results = append(results, DiagResult{
			Name:    "manifest",
			Status:  StatusOK,
			Message: cfg.Python.Manifest,
		})
	}

	venvPath := filepath.Join(dir, cfg.Python.VenvDir)
	if info, err := os.Stat(venvPath); err != nil || !info.IsDir() {
		results = append(results, DiagResult{
			Name:    "venv",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 없음", cfg.Python.VenvDir),
			Fix:     "denv activate 또는 denv ensure 실행",
		})
	} else {
		results = append(results, DiagResult{
			Name:    "venv",
			Status:  StatusOK,
			Message: cfg.Python.VenvDir,
		})
	}

	return results
}

// CheckMachine는 컨테이너 머신 상태를 확인한다.
func CheckMachine(ctx context.Context, adapter *machine.Adapter, name string) DiagResult {
	info, err := adapter.Inspect(ctx, name)
	if err != nil {
		return DiagResult{
			Name:    "machine",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 상태 조회 실패", name),
			Fix:     "머신 생성 여부와 엔진 설치를 확인",
		}
	}
	if !info.IsRunning() {
		return DiagResult{
			Name:    "machine",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 상태: %s", name, info.State),
			Fix:     "denv activate가 시작함",
		}
	}
	return DiagResult{
		Name:    "machine",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s 실행 중", name),
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfg *config.Config, cfgPath, dir string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckConfig(cfgPath))
	results = append(results, CheckBinaries(ctx, cmd, RequiredBinaries(cfg))...)
	results = append(results, CheckMarkers(cfg, dir)...)
	if cfg.Machine.Start != config.StartNever {
		adapter := machine.NewAdapter(cfg.Machine.Engine, cmd)
		results = append(results, CheckMachine(ctx, adapter, cfg.Machine.Name))
	}
	return results
}
