package subtitle

// represents single SRT caption
type Caption struct {
	Index int
	Start string // HH:MM:SS,mmm
	End   string // HH:MM:SS,mmm
	Text  string
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatASS Format = "ass"
)

// kind of defect that caused a block to be dropped
type DefectKind string

const (
	DefectInvalidIndex      DefectKind = "invalid index"
	DefectMalformedTimecode DefectKind = "malformed timecode"
	DefectMissingText       DefectKind = "missing text"
)

// describes a dropped SRT block
type Diagnostic struct {
	Line    int
	Kind    DefectKind
	Message string
}

// single message in the conversion log
type LogEntry struct {
	Message string
	Error   bool
}

// append-only ordered conversion log
type Log []LogEntry

func (l *Log) Info(msg string) {
	*l = append(*l, LogEntry{Message: msg})
}

func (l *Log) Error(msg string) {
	*l = append(*l, LogEntry{Message: msg, Error: true})
}

// number of error entries
func (l Log) Errors() int {
	n := 0
	for _, e := range l {
		if e.Error {
			n++
		}
	}
	return n
}
