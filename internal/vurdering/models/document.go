package models

import "strings"

type DocumentComponentType string

const (
	DocumentHeaderH1     DocumentComponentType = "HEADER_H1"
	DocumentHeaderH2     DocumentComponentType = "HEADER_H2"
	DocumentHeaderH3     DocumentComponentType = "HEADER_H3"
	DocumentParagraph    DocumentComponentType = "PARAGRAPH"
	DocumentBulletPoints DocumentComponentType = "BULLET_POINTS"
	DocumentLink         DocumentComponentType = "LINK"
)

// DocumentComponent is one block of the letter shown to the person.
type DocumentComponent struct {
	Type  DocumentComponentType `json:"type" validate:"required,oneof=HEADER_H1 HEADER_H2 HEADER_H3 PARAGRAPH BULLET_POINTS LINK"`
	Key   *string               `json:"key,omitempty"`
	Title *string               `json:"title"`
	Texts []string              `json:"texts"`
}

// illegalCharacters break the PDF renderer.
var illegalCharacters = strings.NewReplacer("\u0002", "")

// SanitizeDocument returns a copy of components with characters the PDF
// renderer cannot handle removed from every text.
func SanitizeDocument(components []DocumentComponent) []DocumentComponent {
	out := make([]DocumentComponent, len(components))
	for i, c := range components {
		texts := make([]string, len(c.Texts))
		for j, text := range c.Texts {
			texts[j] = illegalCharacters.Replace(text)
		}
		c.Texts = texts
		out[i] = c
	}
	return out
}
