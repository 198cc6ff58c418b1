package whynoterrors

// JSONResult is either a payload destined for JSON encoding or an
// AppError. Exactly one of the two is meaningful; Err wins.
type JSONResult[T any] struct {
	Value T
	Err   *AppError
}

// JSONOk wraps a payload in the success case of a JSONResult.
// It performs no validation and never fails; encoding happens later,
// in WriteJSON.
func JSONOk[T any](v T) JSONResult[T] {
	return JSONResult[T]{Value: v}
}

// JSONErr wraps an AppError in the failure case of a JSONResult.
func JSONErr[T any](e *AppError) JSONResult[T] {
	return JSONResult[T]{Err: e}
}

// HTMLResult is either an HTML body or an AppError. The body is
// written verbatim: escaping is the caller's responsibility.
type HTMLResult struct {
	Body string
	Err  *AppError
}

// HTMLOk wraps a displayable value in the success case of an HTMLResult.
func HTMLOk(v any) HTMLResult {
	return HTMLResult{Body: display(v)}
}

// HTMLErr wraps an AppError in the failure case of an HTMLResult.
func HTMLErr(e *AppError) HTMLResult {
	return HTMLResult{Err: e}
}
