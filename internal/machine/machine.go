// Package machine controls a container engine's background VM via its
// machine subcommand (podman machine, docker machine).
package machine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/seojun-dev/denv/internal/cmdexec"
)

// ErrMachine는 머신 조회/시작 실패를 나타내는 sentinel error다.
var ErrMachine = errors.New("컨테이너 머신 제어 실패")

// RunningState는 실행 중인 머신이 inspect 출력에 보고하는 리터럴 상태 값이다.
// 비교는 대소문자를 구분한다.
const RunningState = "Running"

// Info는 머신 상태 조회 결과다.
type Info struct {
	Name  string
	State string
}

// IsRunning은 상태 값이 리터럴 RunningState와 정확히 일치하는지 반환한다.
func (i *Info) IsRunning() bool {
	return i.State == RunningState
}

// Adapter는 컨테이너 엔진 CLI를 Commander를 통해 실행한다.
type Adapter struct {
	engine string
	cmd    cmdexec.Commander
}

// NewAdapter는 새 machine Adapter를 생성한다.
func NewAdapter(engine string, cmd cmdexec.Commander) *Adapter {
	return &Adapter{engine: engine, cmd: cmd}
}

// Inspect는 `<engine> machine inspect <name>`의 JSON 출력에서 상태 필드를 추출한다.
// podman은 배열을, 일부 엔진은 단일 객체를 출력하므로 둘 다 허용한다.
func (a *Adapter) Inspect(ctx context.Context, name string) (*Info, error) {
	out, err := a.cmd.Run(ctx, a.engine, "machine", "inspect", name)
	if err != nil {
		return nil, fmt.Errorf("machine.Inspect: %w: %v", ErrMachine, err)
	}

	var many []Info
	if err := json.Unmarshal(out, &many); err == nil {
		if len(many) == 0 {
			return nil, fmt.Errorf("machine.Inspect: %w: 머신 %q 없음", ErrMachine, name)
		}
		return &many[0], nil
	}

	var one Info
	if err := json.Unmarshal(out, &one); err != nil {
		return nil, fmt.Errorf("machine.Inspect: JSON 파싱 실패: %w", err)
	}
	return &one, nil
}

// Start는 머신을 foreground로 시작한다.
// 가상화 백엔드가 준비를 보고하거나 에러를 낼 때까지 블록된다.
func (a *Adapter) Start(ctx context.Context, name string) error {
	if err := a.cmd.RunInteractive(ctx, a.engine, "machine", "start", name); err != nil {
		return fmt.Errorf("machine.Start: %w: %v", ErrMachine, err)
	}
	return nil
}
