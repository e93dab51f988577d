package java

// CandidateState classifies a candidate after filtering.
type CandidateState int

const (
	// Accepted candidates are regular files with a new identity.
	Accepted CandidateState = iota

	// Missing candidates do not exist or are not regular files.
	Missing

	// Duplicate candidates resolve to an identity already accepted.
	Duplicate
)

func (s CandidateState) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Missing:
		return "missing"
	case Duplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// FilteredCandidate is a candidate with its filter decision.
type FilteredCandidate struct {
	Path  string
	State CandidateState

	// Identity is the resolved path for accepted and duplicate candidates.
	Identity string
}

// Classify decides every candidate in order. A path whose symlinks cannot
// be resolved is its own identity.
func Classify(fsys Filesystem, candidates []string) []FilteredCandidate {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]FilteredCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		info, err := fsys.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			out = append(out, FilteredCandidate{Path: candidate, State: Missing})
			continue
		}

		identity, err := fsys.EvalSymlinks(candidate)
		if err != nil {
			identity = candidate
		}

		state := Accepted
		if _, dup := seen[identity]; dup {
			state = Duplicate
		} else {
			seen[identity] = struct{}{}
		}
		out = append(out, FilteredCandidate{Path: candidate, State: state, Identity: identity})
	}
	return out
}

// Filter keeps existing regular files, dropping any whose identity was
// already seen. The first path for each identity wins and input order is
// preserved.
func Filter(fsys Filesystem, candidates []string) []string {
	var accepted []string
	for _, c := range Classify(fsys, candidates) {
		if c.State == Accepted {
			accepted = append(accepted, c.Path)
		}
	}
	return accepted
}
