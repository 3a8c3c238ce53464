package ensure

import (
	"context"
	"fmt"

	"github.com/seojun-dev/denv/internal/config"
	"github.com/seojun-dev/denv/internal/machine"
	"github.com/seojun-dev/denv/internal/platform"
)

// MachineStep은 컨테이너 머신이 실행 중임을 멱등하게 보장한다.
//
// 상태 조회 결과가 리터럴 "Running"과 일치하면 아무것도 하지 않고,
// 일치하지 않으면 foreground start 명령을 정확히 한 번 실행한다.
// 실행 여부는 Policy와 호스트 플랫폼으로 게이트된다.
type MachineStep struct {
	Adapter *machine.Adapter
	// MachineName은 제어 대상 머신 이름이다.
	MachineName string
	// Policy는 시작 정책이다 (config.StartAlways | StartNonLinux | StartNever).
	Policy string
	// Host는 감지된 호스트 플랫폼 정보다.
	Host platform.Info
}

// Name은 단계 식별자를 반환한다.
func (s *MachineStep) Name() string { return "machine" }

// Ensure는 머신 실행 상태를 보장한다.
func (s *MachineStep) Ensure(ctx context.Context) (Result, error) {
	switch s.Policy {
	case config.StartNever:
		return Result{Step: s.Name(), Status: StatusSkipped, Message: "start = never"}, nil
	case config.StartNonLinux:
		if s.Host.IsLinux() {
			return Result{Step: s.Name(), Status: StatusSkipped, Message: "linux 호스트"}, nil
		}
	}

	info, err := s.Adapter.Inspect(ctx, s.MachineName)
	if err != nil {
		return Result{
			Step:    s.Name(),
			Status:  StatusFailed,
			Message: fmt.Sprintf("%s 상태 조회 실패", s.MachineName),
		}, err
	}

	if info.IsRunning() {
		return Result{
			Step:    s.Name(),
			Status:  StatusSatisfied,
			Message: fmt.Sprintf("%s 실행 중", s.MachineName),
		}, nil
	}

	// 동기 호출 — 백엔드가 준비를 보고할 때까지 블록된다.
	if err := s.Adapter.Start(ctx, s.MachineName); err != nil {
		return Result{
			Step:    s.Name(),
			Status:  StatusFailed,
			Message: fmt.Sprintf("%s 시작 실패", s.MachineName),
		}, err
	}

	return Result{
		Step:    s.Name(),
		Status:  StatusChanged,
		Message: fmt.Sprintf("%s 시작됨", s.MachineName),
	}, nil
}
