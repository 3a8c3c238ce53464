package shell

import (
	"fmt"
	"path/filepath"
)

// ActivationScript는 셸 유형별 venv activation 스크립트 경로를 반환한다.
func ActivationScript(venvDir, shellType string) string {
	if shellType == "fish" {
		return filepath.Join(venvDir, "bin", "activate.fish")
	}
	return filepath.Join(venvDir, "bin", "activate")
}

// SourceVenv는 activation 스크립트를 현재 셸에 source하는 명령을 생성한다.
// 이후 셸에서 실행되는 도구는 가상환경에서 해석된다.
func SourceVenv(scriptPath, shellType string) string {
	switch shellType {
	case "fish":
		return fmt.Sprintf(
			"source %q\nset -gx DENV_ACTIVE 1\n",
			scriptPath,
		)
	default: // bash, zsh, sh
		return fmt.Sprintf(
			"source %q\nexport DENV_ACTIVE=1\n",
			scriptPath,
		)
	}
}

// Deactivate는 환경 비활성화를 위한 shell 명령을 생성한다.
func Deactivate(shellType string) string {
	switch shellType {
	case "fish":
		return "set -e DENV_ACTIVE\n"
	default:
		return "unset DENV_ACTIVE\n"
	}
}

// HookSnippet는 셸 디렉토리 변경 hook 스니펫을 반환한다.
func HookSnippet(shellType string) string {
	switch shellType {
	case "zsh":
		return `# denv shell integration (zsh)
_denv_chpwd() {
  eval "$(denv activate --shell zsh 2>/dev/null)"
}
chpwd_functions+=(_denv_chpwd)
`
	case "bash":
		return `# denv shell integration (bash)
_denv_prompt_command() {
  eval "$(denv activate --shell bash 2>/dev/null)"
}
PROMPT_COMMAND="_denv_prompt_command;${PROMPT_COMMAND}"
`
	case "fish":
		return `# denv shell integration (fish)
function _denv_chpwd --on-variable PWD
  eval (denv activate --shell fish 2>/dev/null)
end
`
	default:
		return ""
	}
}
