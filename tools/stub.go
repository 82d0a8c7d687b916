package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// requestContextKey is the context key type for caller-supplied request context.
type requestContextKey struct{}

// WithRequestContext attaches caller context (realtor_id, property_id, ...) for tool handlers.
func WithRequestContext(ctx context.Context, rc map[string]any) context.Context {
	if len(rc) == 0 {
		return ctx
	}
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// RequestContextFrom returns the request context attached by WithRequestContext, if any.
func RequestContextFrom(ctx context.Context) map[string]any {
	rc, _ := ctx.Value(requestContextKey{}).(map[string]any)
	return rc
}

// Stub returns the placeholder handler for a catalog tool. No portal, ads or messaging
// integration exists behind it: it acknowledges the call and echoes the input back.
func Stub(name string) ToolFunc {
	return StubAt(name, time.Now)
}

// StubAt is Stub with an injectable clock.
//
// Result shape:
//
//	{"success":true,"tool":name,"input":<input>,"message":"Successfully executed <name>","timestamp":<RFC3339>}
//
// A "context" member is added when the call carries request context. Input that is not a
// JSON object is echoed as a string so the result stays valid JSON.
func StubAt(name string, now func() time.Time) ToolFunc {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		out, err := sjson.Set(`{"success":true}`, "tool", name)
		if err != nil {
			return "", err
		}
		switch {
		case len(input) == 0:
			out, err = sjson.SetRaw(out, "input", "{}")
		case gjson.ValidBytes(input) && gjson.ParseBytes(input).IsObject():
			out, err = sjson.SetRaw(out, "input", string(input))
		default:
			out, err = sjson.Set(out, "input", string(input))
		}
		if err != nil {
			return "", err
		}
		if out, err = sjson.Set(out, "message", "Successfully executed "+name); err != nil {
			return "", err
		}
		if out, err = sjson.Set(out, "timestamp", now().Format(time.RFC3339)); err != nil {
			return "", err
		}
		if rc := RequestContextFrom(ctx); len(rc) > 0 {
			if out, err = sjson.Set(out, "context", rc); err != nil {
				return "", err
			}
		}
		return out, nil
	}
}
