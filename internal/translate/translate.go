package translate

import "context"

// Translator converts text between languages via an external service.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}
