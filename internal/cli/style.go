package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/seojun-dev/denv/internal/doctor"
	"github.com/seojun-dev/denv/internal/ensure"
)

var (
	styleOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styleFail = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleDim  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// diagTag는 진단 상태를 색상 태그로 렌더링한다.
func diagTag(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return styleOK.Render("OK")
	case doctor.StatusWarn:
		return styleWarn.Render("!!")
	case doctor.StatusFail:
		return styleFail.Render("FAIL")
	default:
		return "??"
	}
}

// ensureTag는 ensure 결과 상태를 색상 태그로 렌더링한다.
func ensureTag(s ensure.Status) string {
	switch s {
	case ensure.StatusSatisfied:
		return styleOK.Render(string(s))
	case ensure.StatusChanged:
		return styleOK.Render(string(s))
	case ensure.StatusSkipped:
		return styleDim.Render(string(s))
	case ensure.StatusFailed:
		return styleFail.Render(string(s))
	default:
		return string(s)
	}
}
