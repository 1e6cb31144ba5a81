package constant

type contextKey int

const (
	UserIDKey contextKey = iota
)
