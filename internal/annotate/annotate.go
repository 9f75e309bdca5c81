// Copyright BioCuration Labs, 2026. All rights reserved.

// Package annotate wraps the NLP pipeline behind a small interface so the
// matcher can be tested without a trained model.
package annotate

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// Token is a single token of annotated text.
type Token struct {
	// Text is the token text as it appeared.
	Text string

	// Tag is the Penn Treebank part-of-speech tag.
	Tag string

	// Index is the token position within the annotated text.
	Index int
}

// Entity is a named entity span found in annotated text.
type Entity struct {
	Text  string
	Label string
}

// Annotation holds the tokens and named entities of one span of text.
type Annotation struct {
	Tokens   []Token
	Entities []Entity
}

// Annotator produces annotations for a span of text. Implementations wrap
// a concrete NLP pipeline; the rest of the program only sees text in,
// tokens and entities out.
type Annotator interface {
	Annotate(text string) (Annotation, error)
}

// Prose is the production Annotator, backed by the pretrained prose
// English pipeline (tokenizer, POS tagger, entity extractor).
type Prose struct{}

// NewProse returns an Annotator backed by prose.
func NewProse() *Prose {
	return &Prose{}
}

// Annotate runs the full prose pipeline over text.
func (p *Prose) Annotate(text string) (Annotation, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return Annotation{}, fmt.Errorf("annotating text: %w", err)
	}

	var ann Annotation
	for i, tok := range doc.Tokens() {
		ann.Tokens = append(ann.Tokens, Token{Text: tok.Text, Tag: tok.Tag, Index: i})
	}
	for _, ent := range doc.Entities() {
		ann.Entities = append(ann.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	return ann, nil
}
