// Article entity and its typed content blocks.
// Implements: prd003-content-entities R1 (Article, Epigraph, ContentBlock);
//             docs/ARCHITECTURE § Main Interface.
package types

// Content block types. Every block in an article body is one of these.
const (
	BlockParagraph = "paragraph"
	BlockHeading   = "heading"
	BlockQuote     = "quote"
)

// validBlockTypes is the set of recognized content block types.
var validBlockTypes = map[string]bool{
	BlockParagraph: true,
	BlockHeading:   true,
	BlockQuote:     true,
}

// ContentBlock is one typed element of an article body. Author is only
// meaningful for quote blocks.
type ContentBlock struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}

// Validate checks that the block carries a recognized type.
// Returns ErrInvalidBlockType otherwise.
func (b ContentBlock) Validate() error {
	if !validBlockTypes[b.Type] {
		return ErrInvalidBlockType
	}
	return nil
}

// Epigraph is the optional attributed quotation shown before an article body.
type Epigraph struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
	Source string `json:"source,omitempty"`
}

// Article represents a published long-form piece.
type Article struct {
	ArticleID int64          `json:"id"`
	Slug      string         `json:"slug"`     // unique, URL-facing
	Title     string         `json:"title"`
	Excerpt   string         `json:"excerpt"`
	Date      string         `json:"date"`
	ReadTime  string         `json:"readTime"`
	Tags      []string       `json:"tags"`
	Featured  bool           `json:"featured"`
	Epigraph  *Epigraph      `json:"epigraph"` // nil when absent
	Content   []ContentBlock `json:"content"`
}

// Validate checks required scalar fields and every content block.
func (a *Article) Validate() error {
	if a.Slug == "" {
		return ErrInvalidSlug
	}
	if a.Title == "" {
		return ErrInvalidTitle
	}
	for _, b := range a.Content {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}
