package domain

// BlockTypeAgeGate is the block type this service decorates. All other block
// types in an authored document pass through as opaque content.
const BlockTypeAgeGate = "age-gate"

// Page is an authored page document fetched from the document store.
type Page struct {
	Slug   string  `json:"slug"`
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// Block is one authored block on a page. Configuration for a block arrives
// in two shapes: structured attributes, and/or label/value rows authored as
// a child table in the document system.
type Block struct {
	Type  string            `json:"type"`
	Attrs map[string]string `json:"attrs,omitempty"`
	Rows  []Row             `json:"rows,omitempty"`
	HTML  string            `json:"html,omitempty"`
}

// Row is one authored label/value pair. Labels are matched case-insensitively.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AgeGateBlock returns the page's age-gate block, or nil if the page is not gated.
func (p *Page) AgeGateBlock() *Block {
	for i := range p.Blocks {
		if p.Blocks[i].Type == BlockTypeAgeGate {
			return &p.Blocks[i]
		}
	}
	return nil
}
