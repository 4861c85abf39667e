package mcpserver

// MarkupContract describes the bracket-tag vocabulary that news and service
// bodies may embed. LLM consumers should read it before writing body text.
const MarkupContract = `# Body Markup Contract

News bodies and service detail bodies are plain text with an optional flat
tag vocabulary. Tags never nest.

## Tags

` + "```" + `
{{img:N}}         place image N (1-based into the attached image list)
{{img:N|layout}}  layout is left, right or full (default full)
[img:N]           bracket spelling, same semantics
[img:N|layout]
[h2]Heading[/h2]  section heading
[note]Text[/note] highlighted note box
[ul]a|b|c[/ul]    unordered list, items split on |
[ol]a|b|c[/ol]    ordered list
` + "```" + `

## Rules

1. Image indices are 1-based. An index that is out of range or not a number
   consumes the tag without producing output.
2. Images never referenced by a tag are appended after the body, in their
   original order.
3. Consecutive left/right images render side by side as one row; full-width
   images always stand alone.
4. A body with no recognized tags renders as a single text paragraph, so
   plain text is always safe.
5. Tag names are case-insensitive; unknown bracket text passes through as
   ordinary text.

## Example

` + "```" + `
[h2]新商品のご案内[/h2]
{{img:1|right}}
本文テキストはそのまま段落になります。

[ul]特徴その一|特徴その二|特徴その三[/ul]
[note]詳細はお問い合わせください。[/note]
` + "```" + `
`
