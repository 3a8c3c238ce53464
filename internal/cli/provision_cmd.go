package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/seojun-dev/denv/internal/config"
	"github.com/seojun-dev/denv/internal/provision"
	"github.com/seojun-dev/denv/internal/vcs"
)

func (a *App) newProvisionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "provision [task...]",
		Short: "일회성 머신 provisioning 작업을 실행한다",
		Long: `provision은 manifest(기본 provision.yaml)에 선언된 작업을 실행한다.
인자 없이 실행하면 모든 작업을 순서대로 실행한다. 각 작업은 선택적으로
리포를 클론하고 그 안에서 명령 목록을 순서대로 실행한다.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProvision(cmd.Context(), args)
		},
	}
}

func (a *App) runProvision(ctx context.Context, names []string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	manifest, err := provision.LoadManifest(cfg.Provision.Manifest)
	if err != nil {
		return err
	}

	runner := &provision.Runner{
		Commander: a.Commander,
		VCS:       vcs.NewAdapter(a.Commander),
		Out:       a.Stderr,
	}
	return runner.Run(ctx, manifest, names)
}
