package gimmick

// Log is the bestiary of gimmicks seen this session, in order of first
// appearance. It only grows until Reset.
type Log struct {
	kinds []Kind
	seen  [kindCount]bool
}

// Record reports whether k was seen for the first time.
func (l *Log) Record(k Kind) bool {
	if l.seen[k] {
		return false
	}
	l.seen[k] = true
	l.kinds = append(l.kinds, k)
	return true
}

func (l *Log) Seen(k Kind) bool {
	return l.seen[k]
}

func (l *Log) Kinds() []Kind {
	kinds := make([]Kind, len(l.kinds))
	copy(kinds, l.kinds)
	return kinds
}

func (l *Log) Len() int {
	return len(l.kinds)
}

func (l *Log) Reset() {
	*l = Log{}
}
