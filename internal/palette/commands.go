package palette

// DefaultCommands is the fixed command table, in display order. The set
// mirrors what the editor can author: block-type changes, a fixed-shape
// table, and image insertion (which prompts for a URL).
func DefaultCommands() []Command {
	return []Command{
		{
			Title:       "Text",
			Description: "Plain paragraph",
			Icon:        "T",
			Apply:       func(t Target) { t.SetParagraph() },
		},
		{
			Title:       "Heading 1",
			Description: "Large section heading",
			Icon:        "H1",
			Apply:       func(t Target) { t.ToggleHeading(1) },
		},
		{
			Title:       "Heading 2",
			Description: "Medium section heading",
			Icon:        "H2",
			Apply:       func(t Target) { t.ToggleHeading(2) },
		},
		{
			Title:       "Heading 3",
			Description: "Small section heading",
			Icon:        "H3",
			Apply:       func(t Target) { t.ToggleHeading(3) },
		},
		{
			Title:       "Bullet list",
			Description: "Unordered list",
			Icon:        "•",
			Apply:       func(t Target) { t.ToggleBulletList() },
		},
		{
			Title:       "Numbered list",
			Description: "Ordered list",
			Icon:        "1.",
			Apply:       func(t Target) { t.ToggleOrderedList() },
		},
		{
			Title:       "Quote",
			Description: "Block quote",
			Icon:        ">",
			Apply:       func(t Target) { t.ToggleBlockquote() },
		},
		{
			Title:       "Code block",
			Description: "Fenced code block",
			Icon:        "</>",
			Apply:       func(t Target) { t.ToggleCodeBlock() },
		},
		{
			Title:       "Table",
			Description: "Insert a 3×3 table",
			Icon:        "#",
			Apply:       func(t Target) { t.InsertTable(3, 3) },
		},
		{
			Title:       "Image",
			Description: "Insert an image by URL",
			Icon:        "img",
			Prompt:      "Image URL",
			ApplyInput:  func(t Target, url string) { t.InsertImage(url) },
		},
	}
}
