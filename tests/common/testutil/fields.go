//go:build unit || e2e

package testutil

type Mutation func(m map[string]any)

// Field sets key to value. A nil value is sent as JSON null.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		m[key] = value
	}
}

// Remove drops key from the body.
func Remove(key string) Mutation {
	return func(m map[string]any) {
		delete(m, key)
	}
}

// Nested applies muts to the object under key, creating it when absent.
func Nested(key string, muts ...Mutation) Mutation {
	return func(m map[string]any) {
		inner, ok := m[key].(map[string]any)
		if !ok {
			inner = map[string]any{}
		}
		for _, mutate := range muts {
			mutate(inner)
		}
		m[key] = inner
	}
}
