package cli

import (
	"context"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/seojun-dev/denv/internal/config"
	"github.com/seojun-dev/denv/internal/ensure"
)

func (a *App) newEnsureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure",
		Short: "환경 준비 단계를 실행하고 결과를 표로 출력한다",
		Long: `ensure는 activate와 같은 단계를 실행하되 셸 코드를 출력하지 않고
각 단계의 tri-state 결과(satisfied / changed / skipped / failed)를 보여준다.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEnsure(cmd.Context())
		},
	}
}

func (a *App) runEnsure(ctx context.Context) error {
	cwd, err := workDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	results, seqErr := ensure.Sequence(ctx, a.venvStep(cfg, cwd), a.machineStep(cfg))

	table := tablewriter.NewWriter(a.Stdout)
	table.Header("Step", "Status", "Detail")
	for _, r := range results {
		table.Append([]string{r.Step, ensureTag(r.Status), r.Message})
	}
	table.Render()

	a.recordRun(cwd, results)
	return seqErr
}
