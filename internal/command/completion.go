// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/breedctl/internal/meta"
)

const bashCompletionScript = `# bash completion for breedctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_breedctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "sub count breeds completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --filter -f --metrics --output -o --parallel -p --source -s --stats --timeout --titles -t --url -u"

    case "$cmd" in
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
        --source|-s)
            COMPREPLY=( $(compgen -W "api local" -- "$cur") )
            return 0
            ;;
        --metrics)
            COMPREPLY=( $(compgen -W "none stdout" -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$common" -- "$cur") )
        return 0
    fi

    # Breed names come from the local fixture so completion never hits the network.
    if [[ "$cmd" == "sub" || "$cmd" == "count" ]]; then
        COMPREPLY=( $(compgen -W "$(breedctl breeds --source local 2>/dev/null)" -- "$cur") )
    fi
    return 0
}

complete -F _breedctl breedctl
`

const zshCompletionScript = `#compdef breedctl

_breedctl() {
  local -a cmds
  cmds=(
    'sub:list the sub-breeds of one or more breeds'
    'count:count the sub-breeds of one or more breeds'
    'breeds:list all known breeds'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '--metrics[cache metrics exporter]:exporter:(none stdout)'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '(-p --parallel)'{-p,--parallel}'[maximum concurrent lookups]:n'
  '(-s --source)'{-s,--source}'[breed source]:source:(api local)'
  '--stats[print cache statistics]'
  '--timeout[http timeout]:duration'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '(-u --url)'{-u,--url}'[dog api base url]:url'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'breedctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    sub|count)
      _arguments -C \
        $common \
        '*:breed:($(breedctl breeds --source local 2>/dev/null))'
      ;;
    breeds)
      _arguments -C $common
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _breedctl breedctl
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	out := stdout(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(out, bashCompletionScript)
	case "zsh":
		fmt.Fprint(out, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(out, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(out, bashCompletionScript)
		} else {
			fmt.Fprintln(stderr(cmd), "usage: breedctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "breedctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
