package ctxvalues

import "context"

type key int

const contextMapKey key = 0

// CreateContextWithValueMap adds a mutable string map to the context, so middlewares
// further down the chain can store values that handlers and loggers read.
func CreateContextWithValueMap(ctx context.Context) context.Context {
	contextMap := make(map[string]string)
	return context.WithValue(ctx, contextMapKey, contextMap)
}

func valueOrDefault(ctx context.Context, key string, defaultValue string) string {
	contextMapUntyped := ctx.Value(contextMapKey)
	if contextMapUntyped == nil {
		return defaultValue
	}
	contextMap := contextMapUntyped.(map[string]string)

	if val, ok := contextMap[key]; ok {
		return val
	}
	return defaultValue
}

func setValue(ctx context.Context, key string, value string) {
	contextMapUntyped := ctx.Value(contextMapKey)
	if contextMapUntyped != nil {
		contextMap := contextMapUntyped.(map[string]string)
		contextMap[key] = value
	}
}
