package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seojun-dev/denv/internal/setup"
)

// setupTemplate는 denv setup이 생성하는 기본 denv.toml 내용이다.
const setupTemplate = `# denv configuration file

version = 1
# shell = "zsh"

[python]
manifest = "pyproject.toml"
venv_dir = ".venv"
sync_command = ["uv", "sync"]

[machine]
engine = "podman"
name = "podman-machine-default"
# always | non-linux | never
start = "non-linux"

[provision]
manifest = "provision.yaml"

[doctor]
# binaries = ["jq", "pre-commit"]
`

func (a *App) newSetupCmd() *cobra.Command {
	var force bool
	var noHook bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "설정 파일 템플릿을 생성하고 셸 hook을 설치한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(force, noHook)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 덮어쓴다")
	cmd.Flags().BoolVar(&noHook, "no-hook", false, "셸 hook 설치를 건너뛴다")
	return cmd
}

// runSetup는 설정 파일 템플릿을 생성하고 셸 hook을 설치한다.
func (a *App) runSetup(force, noHook bool) error {
	if _, err := os.Stat(a.CfgPath); err == nil {
		if !force {
			return fmt.Errorf("cli.setup: 설정 파일이 이미 존재합니다: %s", a.CfgPath)
		}
		if err := os.Remove(a.CfgPath); err != nil {
			return fmt.Errorf("cli.setup: %w", err)
		}
	}

	if err := os.WriteFile(a.CfgPath, []byte(setupTemplate), 0600); err != nil {
		return fmt.Errorf("cli.setup: 설정 파일 생성 실패: %w", err)
	}
	fmt.Fprintf(a.Stderr, "설정 파일이 생성되었습니다: %s\n", a.CfgPath)

	if noHook {
		return nil
	}

	shellType := setup.DetectShell()
	rcPath := setup.ShellRCPath(shellType)
	if rcPath == "" {
		fmt.Fprintf(a.Stderr, "경고: 지원하지 않는 셸(%q) — hook을 직접 설치하세요\n", shellType)
		return nil
	}
	if err := setup.InstallShellHook(shellType, rcPath); err != nil {
		fmt.Fprintf(a.Stderr, "경고: 셸 hook 설치 실패: %v\n", err)
		return nil
	}
	fmt.Fprintf(a.Stderr, "셸 hook이 설치되었습니다: %s\n", rcPath)
	return nil
}
