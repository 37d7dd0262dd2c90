// Package planner splits a tokenized line on unquoted pipes and extracts
// redirection operators from each resulting segment, producing the Stages
// the execution engine runs.
package planner

import "minishell/internal/token"

// Plan turns a token stream into a Pipeline. Segments produced by adjacent
// pipes (or that resolve to an empty command name) are discarded.
func Plan(tokens []token.Token) Pipeline {
	segments := splitOnPipes(tokens)

	var stages Pipeline
	for _, seg := range segments {
		stage, ok := buildStage(seg)
		if !ok {
			continue
		}
		stages = append(stages, stage)
	}
	return stages
}

// splitOnPipes scans the token stream for unquoted "|" tokens and splits on
// them. A quoted "|" is a literal argument and does not split.
func splitOnPipes(tokens []token.Token) [][]token.Token {
	var segments [][]token.Token
	var current []token.Token

	for _, tok := range tokens {
		if !tok.Quoted && tok.Text == "|" {
			segments = append(segments, current)
			current = nil
			continue
		}
		current = append(current, tok)
	}
	segments = append(segments, current)
	return segments
}

// buildStage walks one segment left-to-right, extracting redirection
// operators into a RedirectSpec and leaving the residual tokens as argv.
// ok is false when the resulting argv is empty (no command name).
func buildStage(seg []token.Token) (Stage, bool) {
	var spec RedirectSpec
	var argv []string

	for i := 0; i < len(seg); i++ {
		tok := seg[i]

		if !tok.Quoted {
			if op, matched := matchOp(tok.Text); matched {
				path, consumedNext, hasPath := operandFor(tok, op, seg, i)
				if hasPath {
					spec.set(op.stream, RedirectTarget{Path: path, Mode: op.mode})
					if consumedNext {
						i++
					}
					continue
				}
				// Operator stood alone at end-of-segment with nothing to
				// redirect to: treat it as a literal argument.
			}
		}

		argv = append(argv, tok.Text)
	}

	if len(argv) == 0 {
		return Stage{}, false
	}

	return Stage{
		Cmd:       argv[0],
		Args:      argv[1:],
		Redirects: spec,
	}, true
}

// operandFor resolves the redirection target for an operator token found at
// index i in seg. If the operator text is exactly the operator (e.g. ">"),
// the next token (regardless of its own quoted flag) supplies the path and
// consumedNext is true. If more characters follow the operator in the same
// token (e.g. ">out.txt"), those characters are the path. If the operator
// stands alone at end-of-segment, hasPath is false.
func operandFor(tok token.Token, op redirectOp, seg []token.Token, i int) (path string, consumedNext bool, hasPath bool) {
	if len(tok.Text) > len(op.text) {
		return tok.Text[len(op.text):], false, true
	}
	if i+1 < len(seg) {
		return seg[i+1].Text, true, true
	}
	return "", false, false
}
