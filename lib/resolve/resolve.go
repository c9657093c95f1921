package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"pagepack/lib/discover"
	"pagepack/lib/fetch"
)

// Content is the materialized body of one approved reference.
type Content struct {
	SourceLabel string
	Text        string
	OK          bool
}

// Resolve fetches every external reference concurrently and passes
// inline content through untouched. The result slice has one entry
// per input reference in input order, no matter when each fetch
// settles. A failed fetch produces an empty, not-OK entry and a
// warning; it never aborts the batch.
func Resolve(ctx context.Context, client fetch.Client, refs []discover.Reference) []Content {
	out := make([]Content, len(refs))

	var wg sync.WaitGroup
	for i, ref := range refs {
		if ref.Kind == discover.Inline {
			out[i] = Content{SourceLabel: ref.Label, Text: ref.RawContent, OK: true}
			continue
		}

		wg.Add(1)
		go func(i int, ref discover.Reference) {
			defer wg.Done()

			text, err := client.Resource(ctx, ref.Locator)
			if err != nil {
				slog.WarnContext(ctx, "failed to fetch resource", "url", ref.Locator, "err", err)
				out[i] = Content{SourceLabel: ref.Label}
				return
			}
			out[i] = Content{SourceLabel: ref.Label, Text: text, OK: true}
		}(i, ref)
	}
	wg.Wait()

	return out
}

// Merge concatenates the resolved bodies in order, each under a
// comment header naming its source, separated by blank lines. Failed
// entries contribute nothing, not even a placeholder.
func Merge(contents []Content, class discover.Class) string {
	var b strings.Builder
	for _, c := range contents {
		if !c.OK {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		if class == discover.Script {
			fmt.Fprintf(&b, "// %s\n", c.SourceLabel)
		} else {
			fmt.Fprintf(&b, "/* %s */\n", c.SourceLabel)
		}
		b.WriteString(c.Text)
	}
	return b.String()
}
