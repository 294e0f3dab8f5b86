package pagination

const (
	// DefaultPageSize is used when the caller passes no limit.
	DefaultPageSize = 50
	// MaxPageSize caps the limit so one request cannot drag the whole table.
	MaxPageSize = 200
)

// Clamp normalizes limit/offset pagination parameters. A missing or
// non-positive limit falls back to DefaultPageSize, oversized limits are
// capped, negative offsets become zero.
func Clamp(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
