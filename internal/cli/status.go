package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/seojun-dev/denv/internal/config"
	"github.com/seojun-dev/denv/internal/machine"
	"github.com/seojun-dev/denv/internal/state"
)

func (a *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "현재 프로젝트의 환경 마커와 마지막 실행 기록을 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd.Context())
		},
	}
}

func (a *App) runStatus(ctx context.Context) error {
	cwd, err := workDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(a.Stdout)
	table.Header("Item", "Value")

	table.Append([]string{"project", cwd})
	table.Append([]string{"manifest", markerValue(filepath.Join(cwd, cfg.Python.Manifest))})
	table.Append([]string{"venv", markerValue(filepath.Join(cwd, cfg.Python.VenvDir))})

	if cfg.Machine.Start != config.StartNever {
		adapter := machine.NewAdapter(cfg.Machine.Engine, a.Commander)
		machState := "unknown"
		if info, err := adapter.Inspect(ctx, cfg.Machine.Name); err == nil {
			machState = info.State
		}
		table.Append([]string{"machine", fmt.Sprintf("%s (%s)", cfg.Machine.Name, machState)})
	}

	if st, err := state.Load(a.StatePath); err == nil {
		if entry, ok := st.Lookup(cwd); ok {
			table.Append([]string{"last run", entry.RanAt})
			for step, status := range entry.Results {
				table.Append([]string{"  " + step, status})
			}
		}
	}

	table.Render()
	return nil
}

// markerValue는 파일시스템 마커의 존재 여부 표시 문자열을 반환한다.
func markerValue(path string) string {
	if _, err := os.Stat(path); err != nil {
		return "없음"
	}
	return "존재"
}
