package cli

import (
	"github.com/seojun-dev/denv/internal/config"
	"github.com/seojun-dev/denv/internal/ensure"
	"github.com/seojun-dev/denv/internal/machine"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrSync는 가상환경 동기화 명령이 실패했을 때의 sentinel error다.
	ErrSync = ensure.ErrSync
	// ErrMachine는 컨테이너 머신 조회/시작이 실패했을 때의 sentinel error다.
	ErrMachine = machine.ErrMachine
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
