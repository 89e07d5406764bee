package model

type OutcomeKind int

const (
	Annotated OutcomeKind = iota
	Skipped
	Failed
)

func (k OutcomeKind) String() string {
	switch k {
	case Annotated:
		return "PASS"
	case Skipped:
		return "SKIP"
	case Failed:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

type SkipReason int

const (
	NoSkip SkipReason = iota
	// NotInGit: no history and no default contributor configured.
	NotInGit
	// NotInGitFileMissing: no history and the file does not exist, so the default contributors can't be used.
	NotInGitFileMissing
	// FileMissing: the file has authors but does not exist anymore.
	FileMissing
)

func (r SkipReason) String() string {
	switch r {
	case NotInGit:
		return "NOT_IN_GIT"
	case NotInGitFileMissing:
		return "NOT_IN_GIT (file not found)"
	case FileMissing:
		return "file not found"
	default:
		return ""
	}
}

// Outcome of processing one file of an AuthorMap.
type Outcome struct {
	Kind OutcomeKind
	Path string

	// Authors used as contributors. Only for Annotated and Failed.
	Authors []string
	// Reason only for Skipped.
	Reason SkipReason
	// Diagnostic is the trimmed error output of the tool. Only for Failed.
	Diagnostic string
}

func NewAnnotated(path string, authors []string) *Outcome {
	return &Outcome{Kind: Annotated, Path: path, Authors: authors}
}

func NewSkipped(path string, reason SkipReason) *Outcome {
	return &Outcome{Kind: Skipped, Path: path, Reason: reason}
}

func NewFailed(path string, authors []string, diagnostic string) *Outcome {
	return &Outcome{Kind: Failed, Path: path, Authors: authors, Diagnostic: diagnostic}
}
