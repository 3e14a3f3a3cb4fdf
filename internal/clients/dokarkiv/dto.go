package dokarkiv

import (
	"fmt"
	"unicode/utf8"

	"medvirkning/pkg/platform/sentinel"
)

// JournalpostType is the direction of a journalpost.
type JournalpostType string

const (
	JournalpostUtgaaende JournalpostType = "UTGAAENDE"
	JournalpostNotat     JournalpostType = "NOTAT"
)

const (
	TemaOppfolging      = "OPP"
	KanalNavNo          = "NAV_NO"
	JournalforendeEnhet = 9999
	IDTypeFnr           = "FNR"
	FiltypePDFA         = "PDFA"
	VariantformatArkiv  = "ARKIV"
	SakstypeGenerell    = "GENERELL_SAK"

	// FilenameMaxLength bounds filnavn + filtype.
	FilenameMaxLength = 200
)

type JournalpostRequest struct {
	AvsenderMottaker     *AvsenderMottaker `json:"avsenderMottaker,omitempty"`
	Tittel               string            `json:"tittel"`
	Bruker               *Bruker           `json:"bruker,omitempty"`
	Dokumenter           []Dokument        `json:"dokumenter"`
	JournalfoerendeEnhet int               `json:"journalfoerendeEnhet"`
	JournalpostType      JournalpostType   `json:"journalpostType"`
	Tema                 string            `json:"tema"`
	Sak                  Sak               `json:"sak"`
	EksternReferanseID   string            `json:"eksternReferanseId"`
	Kanal                string            `json:"kanal"`
}

type AvsenderMottaker struct {
	ID     string `json:"id"`
	IDType string `json:"idType"`
	Navn   string `json:"navn"`
}

type Bruker struct {
	ID     string `json:"id"`
	IDType string `json:"idType"`
}

type Sak struct {
	Sakstype string `json:"sakstype"`
}

type Dokument struct {
	Brevkode          string            `json:"brevkode"`
	Dokumentvarianter []Dokumentvariant `json:"dokumentvarianter"`
	Tittel            string            `json:"tittel,omitempty"`
}

// Dokumentvariant carries the file itself. FysiskDokument is encoded as
// base64 by encoding/json.
type Dokumentvariant struct {
	Filnavn        string `json:"filnavn"`
	Filtype        string `json:"filtype"`
	FysiskDokument []byte `json:"fysiskDokument"`
	Variantformat  string `json:"variantformat"`
}

// NewArkivVariant builds the archive variant of a PDF/A document.
func NewArkivVariant(filnavn string, pdf []byte) (Dokumentvariant, error) {
	if utf8.RuneCountInString(filnavn)+len(FiltypePDFA) >= FilenameMaxLength {
		return Dokumentvariant{}, fmt.Errorf("%w: filnavn of dokumentvariant is too long, max size is %d", sentinel.ErrValidation, FilenameMaxLength)
	}
	return Dokumentvariant{
		Filnavn:        filnavn,
		Filtype:        FiltypePDFA,
		FysiskDokument: pdf,
		Variantformat:  VariantformatArkiv,
	}, nil
}

type JournalpostResponse struct {
	JournalpostID          int     `json:"journalpostId"`
	Journalstatus          string  `json:"journalstatus,omitempty"`
	JournalpostFerdigstilt *bool   `json:"journalpostferdigstilt,omitempty"`
	Melding                *string `json:"melding,omitempty"`
}
