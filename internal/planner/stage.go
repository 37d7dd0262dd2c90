package planner

// Stage is one command in a pipeline after planning: its name, residual
// argv, and redirections.
type Stage struct {
	Cmd       string
	Args      []string
	Redirects RedirectSpec
}

// Pipeline is an ordered sequence of Stages. Plan returns an empty Pipeline
// for a line that holds no command (an empty or all-pipe line).
type Pipeline []Stage
