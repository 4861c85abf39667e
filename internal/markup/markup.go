// Package markup expands the bracket-tag vocabulary embedded in stored body
// text into an ordered sequence of typed, render-ready content blocks.
//
// The vocabulary is flat and closed — a single linear regex scan is enough,
// and nesting is not supported:
//
//	{{img:N}}  {{img:N|layout}}  [img:N]  [img:N|layout]
//	[h2]...[/h2]  [note]...[/note]  [ul]a|b|c[/ul]  [ol]a|b|c[/ol]
//
// Image indices are 1-based into the supplied image list; layout is one of
// left, right, full (default full). The tag syntax is a stable contract with
// stored content: changing it breaks every body already in the database.
package markup

import (
	"regexp"
	"strconv"
	"strings"
)

// Block kinds.
const (
	KindText     = "text"
	KindHeading  = "heading"
	KindNote     = "note"
	KindList     = "list"
	KindImage    = "image"
	KindImageRow = "image_row"
)

// Image layouts.
const (
	LayoutLeft  = "left"
	LayoutRight = "right"
	LayoutFull  = "full"
)

// Image is a placed image with its layout hint.
type Image struct {
	URL    string `json:"url"`
	Layout string `json:"layout"`
}

// Block is one typed unit of rendered content. Exactly the fields relevant
// to Kind are populated.
type Block struct {
	Kind    string   `json:"kind"`
	Text    string   `json:"text,omitempty"`
	Items   []string `json:"items,omitempty"`
	Ordered bool     `json:"ordered,omitempty"`
	Image   *Image   `json:"image,omitempty"`
	Images  []Image  `json:"images,omitempty"`
}

// Submatch group layout of tagRe:
//
//	1,2 curly image index + layout
//	3,4 bracket image index + layout
//	5 h2 body, 6 note body, 7 ul body, 8 ol body
var tagRe = regexp.MustCompile(`(?is)` +
	`\{\{img:([^}|]*)(?:\|([a-z]+))?\}\}` +
	`|\[img:([^\]|]*)(?:\|([a-z]+))?\]` +
	`|\[h2\](.*?)\[/h2\]` +
	`|\[note\](.*?)\[/note\]` +
	`|\[ul\](.*?)\[/ul\]` +
	`|\[ol\](.*?)\[/ol\]`)

// Parse scans body for content tags and returns the block sequence plus the
// images never referenced by a placement tag, in original order.
func Parse(body string, images []string) ([]Block, []string) {
	return ParseWithSummary(body, "", images)
}

// ParseWithSummary behaves like Parse but, when scanning yields no blocks at
// all, falls back to a single text block built from the trimmed body, or
// from summary for entities that keep a separate plain-text field. Content
// never silently vanishes just because it contains no recognized tags.
func ParseWithSummary(body, summary string, images []string) ([]Block, []string) {
	var blocks []Block
	used := make(map[int]struct{})

	emitText := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			blocks = append(blocks, Block{Kind: KindText, Text: s})
		}
	}

	cursor := 0
	for _, m := range tagRe.FindAllStringSubmatchIndex(body, -1) {
		emitText(body[cursor:m[0]])
		cursor = m[1]

		group := func(i int) (string, bool) {
			if m[2*i] < 0 {
				return "", false
			}
			return body[m[2*i]:m[2*i+1]], true
		}

		if idx, ok := group(1); ok {
			layout, _ := group(2)
			blocks = placeImage(blocks, used, images, idx, layout)
			continue
		}
		if idx, ok := group(3); ok {
			layout, _ := group(4)
			blocks = placeImage(blocks, used, images, idx, layout)
			continue
		}
		if inner, ok := group(5); ok {
			if inner = strings.TrimSpace(inner); inner != "" {
				blocks = append(blocks, Block{Kind: KindHeading, Text: inner})
			}
			continue
		}
		if inner, ok := group(6); ok {
			if inner = strings.TrimSpace(inner); inner != "" {
				blocks = append(blocks, Block{Kind: KindNote, Text: inner})
			}
			continue
		}
		if inner, ok := group(7); ok {
			if items := splitItems(inner); len(items) > 0 {
				blocks = append(blocks, Block{Kind: KindList, Items: items})
			}
			continue
		}
		if inner, ok := group(8); ok {
			if items := splitItems(inner); len(items) > 0 {
				blocks = append(blocks, Block{Kind: KindList, Items: items, Ordered: true})
			}
		}
	}
	emitText(body[cursor:])

	blocks = compactRows(blocks)

	if len(blocks) == 0 {
		if fallback := strings.TrimSpace(body); fallback != "" {
			blocks = append(blocks, Block{Kind: KindText, Text: fallback})
		} else if fallback = strings.TrimSpace(summary); fallback != "" {
			blocks = append(blocks, Block{Kind: KindText, Text: fallback})
		}
	}

	var leftover []string
	for i, u := range images {
		if _, ok := used[i]; !ok {
			leftover = append(leftover, u)
		}
	}
	return blocks, leftover
}

// placeImage resolves a 1-based image reference. A non-numeric index reads
// as -1, so malformed tags are consumed without emitting a block, exactly
// like an out-of-range index.
func placeImage(blocks []Block, used map[int]struct{}, images []string, idx, layout string) []Block {
	n, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		n = -1
	}
	if n < 1 || n > len(images) {
		return blocks
	}
	used[n-1] = struct{}{}
	return append(blocks, Block{Kind: KindImage, Image: &Image{
		URL:    images[n-1],
		Layout: normalizeLayout(layout),
	}})
}

func normalizeLayout(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case LayoutLeft:
		return LayoutLeft
	case LayoutRight:
		return LayoutRight
	default:
		return LayoutFull
	}
}

// splitItems splits list-tag content on pipes, trimming entries and dropping
// blanks.
func splitItems(inner string) []string {
	var out []string
	for _, item := range strings.Split(inner, "|") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// compactRows collapses runs of consecutive side-aligned (left/right) image
// blocks into a single image_row block so the view layer can render them as
// one flex row. Full-layout images are never grouped. Runs are resolved here
// rather than in templates because grouping needs lookahead across the
// already-typed sequence.
func compactRows(blocks []Block) []Block {
	var out []Block
	var run []Image

	flush := func() {
		if len(run) == 0 {
			return
		}
		out = append(out, Block{Kind: KindImageRow, Images: run})
		run = nil
	}

	for _, b := range blocks {
		if b.Kind == KindImage && b.Image != nil && b.Image.Layout != LayoutFull {
			run = append(run, *b.Image)
			continue
		}
		flush()
		out = append(out, b)
	}
	flush()
	return out
}
