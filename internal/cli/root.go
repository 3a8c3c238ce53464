package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seojun-dev/denv/internal/cmdexec"
)

// App은 CLI 전역 의존성을 담는다. 테스트에서는 Commander를 FakeCommander로,
// 출력을 버퍼로 대체한다.
type App struct {
	// CfgPath는 denv.toml 경로다. 비어있으면 현재 디렉토리의 denv.toml.
	CfgPath string
	// StatePath는 마지막 실행 기록 파일 경로다. 비어있으면 ~/.config/denv/state.json.
	StatePath string
	Commander cmdexec.Commander

	// Stdout은 eval 대상 셸 코드가 출력되는 스트림이다. nil이면 os.Stdout.
	Stdout io.Writer
	// Stderr는 진단 메시지가 출력되는 스트림이다. nil이면 os.Stderr.
	Stderr io.Writer
}

// NewRootCmd는 denv CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	if a.CfgPath == "" {
		a.CfgPath = "denv.toml"
	}
	if a.StatePath == "" {
		a.StatePath = defaultStatePath()
	}
	if a.Stdout == nil {
		a.Stdout = os.Stdout
	}
	if a.Stderr == nil {
		a.Stderr = os.Stderr
	}

	cmd := &cobra.Command{
		Use:          "denv",
		Short:        "프로젝트 개발 환경 부트스트랩 도구",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")

	cmd.AddCommand(
		a.newActivateCmd(),
		a.newEnsureCmd(),
		a.newStatusCmd(),
		a.newDoctorCmd(),
		a.newSetupCmd(),
		a.newProvisionCmd(),
	)
	return cmd
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}

// defaultStatePath는 마지막 ensure 실행 기록의 기본 파일 경로를 반환한다.
func defaultStatePath() string {
	return filepath.Join(homeDir(), ".config", "denv", "state.json")
}
