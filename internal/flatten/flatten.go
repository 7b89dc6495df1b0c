// Package flatten turns arbitrarily nested sequences into a flat one.
package flatten

import (
	"log/slog"
	"reflect"
)

type frame struct {
	seq  reflect.Value
	next int
}

// FlattenArray returns the leaves of input in depth-first, left-to-right order.
// Any slice or array counts as a sequence and is descended into; everything else is
// a leaf. When input itself is not a sequence a warning is logged and an empty slice
// is returned. Traversal uses an explicit stack, so nesting depth is not limited by
// the goroutine stack.
func FlattenArray(log *slog.Logger, input any) []any {
	root := reflect.ValueOf(input)
	if !isSequence(root) {
		if log == nil {
			log = slog.Default()
		}
		log.Warn("FlattenArray was incorrectly called with a non sequence parameter",
			"input", input, "type", reflect.TypeOf(input))
		return []any{}
	}

	flat := make([]any, 0, root.Len())
	stack := []frame{{seq: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == top.seq.Len() {
			stack = stack[:len(stack)-1]
			continue
		}

		elem := top.seq.Index(top.next)
		top.next++

		for elem.Kind() == reflect.Interface && !elem.IsNil() {
			elem = elem.Elem()
		}

		if isSequence(elem) {
			stack = append(stack, frame{seq: elem})
			continue
		}
		flat = append(flat, elem.Interface())
	}

	return flat
}

func isSequence(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	kind := v.Kind()
	return kind == reflect.Slice || kind == reflect.Array
}
