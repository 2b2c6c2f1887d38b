package llm

import "context"

// CallInfo labels a request for logs and the request history.
type CallInfo struct {
	// Purpose is "<activity>-questions" for quiz generation.
	Purpose string
	SetID   string
}

type callKey struct{}

// WithCall attaches info to ctx.
func WithCall(ctx context.Context, info CallInfo) context.Context {
	return context.WithValue(ctx, callKey{}, info)
}

// WithPurpose attaches only a purpose label.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	info := CallFrom(ctx)
	info.Purpose = purpose
	return WithCall(ctx, info)
}

// CallFrom returns the labels attached to ctx. Purpose is "unknown" when
// none was set.
func CallFrom(ctx context.Context) CallInfo {
	info, _ := ctx.Value(callKey{}).(CallInfo)
	if info.Purpose == "" {
		info.Purpose = "unknown"
	}
	return info
}

// PurposeFrom returns the purpose label attached to ctx.
func PurposeFrom(ctx context.Context) string {
	return CallFrom(ctx).Purpose
}
