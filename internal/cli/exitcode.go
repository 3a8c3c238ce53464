package cli

import (
	"errors"
)

// ExitCode는 denv의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitSyncFail는 가상환경 동기화 실패다.
	ExitSyncFail ExitCode = 2
	// ExitMachineFail는 컨테이너 머신 제어 실패다.
	ExitMachineFail ExitCode = 3
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrSync):
		return ExitSyncFail
	case errors.Is(err, ErrMachine):
		return ExitMachineFail
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
