package roteiro

import "strings"

// stageNeedles lists the lower-cased substrings that identify each stage
// label. Entries beyond the first are known mis-encoded byte variants:
// upstream text occasionally arrives with UTF-8 accents read as Latin-1
// ("Identificação" -> "IdentificaÃ§Ã£o"). The tables are additive: an
// unknown corruption degrades the script to "unstructured", never to an
// error.
var stageNeedles = map[Stage][]string{
	StageIdentification: {"identificação", "identificaã§ã£o", "identificacao"},
	StageConflict:       {"conflito"},
	StageTurn:           {"virada"},
	StageEnding:         {"final marcante"},
}

// HasCanonicalStructure reports whether the raw text contains the labels of
// all four narrative stages, accepting known mis-encoded variants. This is
// a cheap existence check; positional extraction is SegmentScript's job.
func HasCanonicalStructure(raw string) bool {
	lower := strings.ToLower(raw)
	for _, stage := range Stages() {
		if !containsStageLabel(lower, stage) {
			return false
		}
	}
	return true
}

func containsStageLabel(lower string, stage Stage) bool {
	for _, needle := range stageNeedles[stage] {
		if strings.Contains(lower, needle) {
			return true
		}
	}
	return false
}
