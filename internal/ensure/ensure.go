// Package ensure implements idempotent environment-preparation steps.
// Each step checks its precondition, performs at most one remediation,
// and reports whether the desired state was already present, newly
// established, skipped, or failed.
package ensure

import (
	"context"
)

// Status는 ensure 단계의 실행 결과 상태다.
type Status string

const (
	// StatusSatisfied는 이미 충족되어 외부 명령을 실행하지 않은 상태다.
	StatusSatisfied Status = "satisfied"
	// StatusChanged는 이번 실행으로 새로 충족된 상태다.
	StatusChanged Status = "changed"
	// StatusSkipped는 전제 조건이 없어 건너뛴 상태다.
	StatusSkipped Status = "skipped"
	// StatusFailed는 외부 명령 실패로 충족하지 못한 상태다.
	StatusFailed Status = "failed"
)

// Result는 하나의 ensure 단계 실행 결과다.
type Result struct {
	Step    string
	Status  Status
	Message string
}

// Step은 멱등한 환경 준비 단계다.
type Step interface {
	// Name은 단계 식별자를 반환한다.
	Name() string
	// Ensure는 단계를 실행한다. 같은 상태에서 두 번 실행해도
	// 추가 외부 명령을 발생시키지 않아야 한다.
	Ensure(ctx context.Context) (Result, error)
}

// Sequence는 단계를 선언 순서대로 실행한다.
// 실패한 단계 이후의 단계는 실행하지 않는다 (shell 연접 의미론).
func Sequence(ctx context.Context, steps ...Step) ([]Result, error) {
	results := make([]Result, 0, len(steps))
	for _, s := range steps {
		res, err := s.Ensure(ctx)
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
