package markup

import (
	"reflect"
	"testing"
)

func TestParse_Scenario(t *testing.T) {
	body := "Intro.\n[h2]Section[/h2]\n{{img:2}}\nMore text.\n[ul]a|b[/ul]"
	blocks, leftover := Parse(body, []string{"u1", "u2"})

	want := []Block{
		{Kind: KindText, Text: "Intro."},
		{Kind: KindHeading, Text: "Section"},
		{Kind: KindImage, Image: &Image{URL: "u2", Layout: LayoutFull}},
		{Kind: KindText, Text: "More text."},
		{Kind: KindList, Items: []string{"a", "b"}},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
	if !reflect.DeepEqual(leftover, []string{"u1"}) {
		t.Errorf("leftover = %v, want [u1]", leftover)
	}
}

func TestParse_PlainTextFallback(t *testing.T) {
	blocks, leftover := Parse("no tags here", nil)
	if len(blocks) != 1 || blocks[0].Kind != KindText || blocks[0].Text != "no tags here" {
		t.Errorf("blocks = %+v, want single text block", blocks)
	}
	if leftover != nil {
		t.Errorf("leftover = %v, want nil", leftover)
	}
}

func TestParse_FallbackWhenOnlyConsumedTags(t *testing.T) {
	// The tag is consumed but out of range, so scanning yields nothing;
	// the raw body must still surface as text.
	blocks, _ := Parse("[img:99]", nil)
	if len(blocks) != 1 || blocks[0].Kind != KindText || blocks[0].Text != "[img:99]" {
		t.Errorf("blocks = %+v, want raw-body text fallback", blocks)
	}
}

func TestParseWithSummary_EmptyBodyUsesSummary(t *testing.T) {
	blocks, _ := ParseWithSummary("   \n ", "summary text", nil)
	if len(blocks) != 1 || blocks[0].Text != "summary text" {
		t.Errorf("blocks = %+v, want summary fallback", blocks)
	}
}

func TestParse_IndexSafety(t *testing.T) {
	images := []string{"a", "b"}
	for _, tc := range []struct {
		name string
		body string
	}{
		{"zero", "[img:0]"},
		{"negative", "[img:-1]"},
		{"too large", "[img:3]"},
		{"non-numeric", "[img:abc]"},
		{"empty", "[img:]"},
		{"curly non-numeric", "{{img:x y}}"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			blocks, leftover := Parse("before "+tc.body+" after", images)
			for _, b := range blocks {
				if b.Kind == KindImage || b.Kind == KindImageRow {
					t.Fatalf("unexpected image block for %q: %+v", tc.body, b)
				}
			}
			if len(leftover) != 2 {
				t.Errorf("leftover = %v, want both images", leftover)
			}
		})
	}
}

func TestParse_LeftoverCompleteness(t *testing.T) {
	images := []string{"u1", "u2", "u3", "u4"}
	body := "[img:2] middle {{img:4}}"
	blocks, leftover := Parse(body, images)

	placed := map[string]struct{}{}
	for _, b := range blocks {
		switch b.Kind {
		case KindImage:
			placed[b.Image.URL] = struct{}{}
		case KindImageRow:
			for _, img := range b.Images {
				placed[img.URL] = struct{}{}
			}
		}
	}
	if len(placed)+len(leftover) != len(images) {
		t.Fatalf("placed %d + leftover %d != %d", len(placed), len(leftover), len(images))
	}
	for _, u := range leftover {
		if _, ok := placed[u]; ok {
			t.Errorf("image %q both placed and leftover", u)
		}
	}
	if !reflect.DeepEqual(leftover, []string{"u1", "u3"}) {
		t.Errorf("leftover = %v, want [u1 u3] in original order", leftover)
	}
}

func TestParse_RowCompaction(t *testing.T) {
	body := "[img:1|left][img:2|right][img:3|left][img:4|full]"
	blocks, _ := Parse(body, []string{"a", "b", "c", "d"})

	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2 (row + standalone), got %+v", len(blocks), blocks)
	}
	if blocks[0].Kind != KindImageRow || len(blocks[0].Images) != 3 {
		t.Errorf("blocks[0] = %+v, want image_row of 3", blocks[0])
	}
	if blocks[1].Kind != KindImage || blocks[1].Image.Layout != LayoutFull {
		t.Errorf("blocks[1] = %+v, want standalone full image", blocks[1])
	}
}

func TestParse_FullImagesNeverGrouped(t *testing.T) {
	blocks, _ := Parse("[img:1][img:2]", []string{"a", "b"})
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2 standalone images", len(blocks))
	}
	for i, b := range blocks {
		if b.Kind != KindImage {
			t.Errorf("blocks[%d].Kind = %q, want image", i, b.Kind)
		}
	}
}

func TestParse_CaseInsensitiveAndMultiline(t *testing.T) {
	body := "[H2]Heading[/H2]\n[NOTE]line one\nline two[/NOTE]\n[OL]x|y[/OL]"
	blocks, _ := Parse(body, nil)
	want := []Block{
		{Kind: KindHeading, Text: "Heading"},
		{Kind: KindNote, Text: "line one\nline two"},
		{Kind: KindList, Items: []string{"x", "y"}, Ordered: true},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
}

func TestParse_EmptyTagBodiesDropped(t *testing.T) {
	blocks, _ := Parse("[h2]  [/h2][note][/note][ul] | | [/ul] tail", nil)
	if len(blocks) != 1 || blocks[0].Kind != KindText || blocks[0].Text != "tail" {
		t.Errorf("blocks = %+v, want only trailing text", blocks)
	}
}

func TestParse_LayoutDefaultsAndNormalization(t *testing.T) {
	blocks, _ := Parse("[img:1|LEFT]{{img:2|weird}}", []string{"a", "b"})
	// LEFT normalizes to left (grouped); weird normalizes to full (standalone).
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2, got %+v", len(blocks), blocks)
	}
	if blocks[0].Kind != KindImageRow || blocks[0].Images[0].Layout != LayoutLeft {
		t.Errorf("blocks[0] = %+v, want left image row", blocks[0])
	}
	if blocks[1].Kind != KindImage || blocks[1].Image.Layout != LayoutFull {
		t.Errorf("blocks[1] = %+v, want full image", blocks[1])
	}
}

func TestParse_DuplicatePlacementConsumesOnce(t *testing.T) {
	blocks, leftover := Parse("[img:1][img:1]", []string{"a", "b"})
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if !reflect.DeepEqual(leftover, []string{"b"}) {
		t.Errorf("leftover = %v, want [b]", leftover)
	}
}
