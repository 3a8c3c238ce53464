// Package shell generates shell code for environment activation.
// It produces venv source lines, deactivation snippets, and shell hook
// snippets (chpwd for Zsh, PROMPT_COMMAND for Bash, --on-variable for Fish)
// that call denv activate on directory change. All output is meant to be
// eval'd by the calling shell.
package shell
