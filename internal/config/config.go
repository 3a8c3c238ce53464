package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Machine start 정책 값.
const (
	// StartAlways는 호스트 플랫폼과 무관하게 머신을 시작한다.
	StartAlways = "always"
	// StartNonLinux는 Linux가 아닌 호스트에서만 머신을 시작한다.
	StartNonLinux = "non-linux"
	// StartNever는 머신을 시작하지 않는다.
	StartNever = "never"
)

// Config는 denv.toml의 최상위 구조체다.
type Config struct {
	Version   int       `toml:"version"`
	Shell     string    `toml:"shell"`
	Python    Python    `toml:"python"`
	Machine   Machine   `toml:"machine"`
	Provision Provision `toml:"provision"`
	Doctor    Doctor    `toml:"doctor"`
}

// Python은 가상환경 관련 설정이다.
type Python struct {
	// Manifest는 프로젝트 루트 기준 의존성 manifest 경로다.
	Manifest string `toml:"manifest"`
	// VenvDir는 프로젝트 루트 기준 가상환경 디렉토리 경로다.
	VenvDir string `toml:"venv_dir"`
	// SyncCommand는 가상환경을 생성/동기화하는 외부 명령이다.
	SyncCommand []string `toml:"sync_command"`
}

// Machine은 컨테이너 머신 관련 설정이다.
type Machine struct {
	Engine string `toml:"engine"`
	Name   string `toml:"name"`
	// Start는 머신 시작 정책이다 (always | non-linux | never).
	// 템플릿 변형마다 플랫폼 게이트 여부가 달랐던 것을 설정값으로 흡수한다.
	Start string `toml:"start"`
}

// Provision은 일회성 provisioning 작업 관련 설정이다.
type Provision struct {
	Manifest string `toml:"manifest"`
}

// Doctor는 진단 관련 설정이다.
type Doctor struct {
	// Binaries는 기본 목록에 더해 확인할 바이너리 이름이다.
	Binaries []string `toml:"binaries"`
}

// Default는 설정 파일이 없을 때 적용되는 기본 설정을 반환한다.
// 기본값만으로도 activate가 동작해야 한다 (manifest/디렉토리 존재 검사 기반).
func Default() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// Load는 denv.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Config를 TOML 파일로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Shell == "" {
		c.Shell = "zsh"
	}
	if c.Python.Manifest == "" {
		c.Python.Manifest = "pyproject.toml"
	}
	if c.Python.VenvDir == "" {
		c.Python.VenvDir = ".venv"
	}
	if len(c.Python.SyncCommand) == 0 {
		c.Python.SyncCommand = []string{"uv", "sync"}
	}
	if c.Machine.Engine == "" {
		c.Machine.Engine = "podman"
	}
	if c.Machine.Name == "" {
		c.Machine.Name = "podman-machine-default"
	}
	if c.Machine.Start == "" {
		c.Machine.Start = StartNonLinux
	}
	if c.Provision.Manifest == "" {
		c.Provision.Manifest = "provision.yaml"
	}
}

func (c *Config) validate() error {
	switch c.Machine.Start {
	case StartAlways, StartNonLinux, StartNever:
	default:
		return fmt.Errorf("config.Load: %w: machine.start 값이 잘못됨: %q", ErrConfig, c.Machine.Start)
	}
	switch c.Machine.Engine {
	case "podman", "docker":
	default:
		return fmt.Errorf("config.Load: %w: machine.engine 값이 잘못됨: %q", ErrConfig, c.Machine.Engine)
	}
	if len(c.Python.SyncCommand) == 0 || c.Python.SyncCommand[0] == "" {
		return fmt.Errorf("config.Load: %w: python.sync_command 필수", ErrConfig)
	}
	return nil
}
