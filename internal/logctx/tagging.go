// Context tag stacks are copy-on-write, a child context never mutates
// the slice its parent carries
package logctx

import (
	"context"
	"udpsyslog/internal/global"
)

// Pushes one tag onto a copy of the context's tag stack
func AppendCtxTag(ctx context.Context, newTag string) (newCtx context.Context) {
	existing := GetTagList(ctx)

	tags := make([]string, 0, len(existing)+1)
	tags = append(tags, existing...)
	tags = append(tags, newTag)

	newCtx = context.WithValue(ctx, global.LogTagsKey, tags)
	return
}

// Pops the most specific tag off a copy of the context's tag stack
func RemoveLastCtxTag(ctx context.Context) (newCtx context.Context) {
	existing := GetTagList(ctx)

	var tags []string
	if len(existing) > 0 {
		tags = make([]string, len(existing)-1)
		copy(tags, existing[:len(existing)-1])
	} else {
		tags = []string{}
	}

	newCtx = context.WithValue(ctx, global.LogTagsKey, tags)
	return
}

// Replaces the tag stack wholesale
func OverwriteCtxTag(ctx context.Context, newList []string) (newCtx context.Context) {
	newCtx = context.WithValue(ctx, global.LogTagsKey, newList)
	return
}

// Reads the context's tag stack, empty when none was set
func GetTagList(ctx context.Context) (tags []string) {
	tags, ok := ctx.Value(global.LogTagsKey).([]string)
	if !ok {
		tags = []string{}
	}
	return
}
