package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seojun-dev/denv/internal/config"
	"github.com/seojun-dev/denv/internal/doctor"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "환경 설정을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.Context())
		},
	}
}

func (a *App) runDoctor(ctx context.Context) error {
	cwd, err := workDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		// 설정이 깨져도 기본 진단은 돌린다.
		fmt.Fprintf(a.Stderr, "경고: %v\n", err)
		cfg = config.Default()
	}

	results := doctor.RunAll(ctx, a.Commander, cfg, a.CfgPath, cwd)
	a.printDiagResults(results)
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func (a *App) printDiagResults(results []doctor.DiagResult) {
	for _, r := range results {
		fmt.Fprintf(a.Stdout, "  [%s] %s: %s\n", diagTag(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(a.Stdout, "      Fix: %s\n", r.Fix)
		}
	}
}
