package util

import (
	"fmt"
	"strings"
	"sync"
)

var builderPool = sync.Pool{
	New: func() any {
		return new(strings.Builder)
	},
}

// JoinAny formats every element with %v and joins them with sep.
func JoinAny(sep string, elems ...any) string {
	switch len(elems) {
	case 0:
		return ""
	case 1:
		return fmt.Sprint(elems[0])
	}

	sb := builderPool.Get().(*strings.Builder)
	defer func() {
		sb.Reset()
		builderPool.Put(sb)
	}()

	fmt.Fprint(sb, elems[0])
	for _, elem := range elems[1:] {
		sb.WriteString(sep)
		fmt.Fprint(sb, elem)
	}
	return sb.String()
}
