package httperror

// IgnoreList is a set of status codes whose errors are not reported.
type IgnoreList map[int]struct{}

// NewIgnoreList builds an IgnoreList from codes.
func NewIgnoreList(codes ...int) IgnoreList {
	l := make(IgnoreList, len(codes))
	for _, c := range codes {
		l[c] = struct{}{}
	}
	return l
}

// Contains reports whether code is ignored.
func (l IgnoreList) Contains(code int) bool {
	_, ok := l[code]
	return ok
}

// Suppresses reports whether err is an HTTP error whose status is ignored.
// Opaque errors are never suppressed.
func (l IgnoreList) Suppresses(err error) bool {
	code, ok := StatusCode(err)
	return ok && l.Contains(code)
}
