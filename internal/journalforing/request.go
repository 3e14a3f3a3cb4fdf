package journalforing

import (
	"fmt"

	"medvirkning/internal/clients/dokarkiv"
	"medvirkning/internal/vurdering/models"
)

const (
	BrevkodeForhandsvarsel = "OPPF_MANGLENDE_MEDVIRKNING_FORHANDSVARSEL"
	BrevkodeVurdering      = "OPPF_MANGLENDE_MEDVIRKNING_VURDERING"
	BrevkodeStans          = "OPPF_MANGLENDE_MEDVIRKNING_STANS"
)

// Routing is the archive classification of one vurdering type.
type Routing struct {
	Tittel          string
	Brevkode        string
	JournalpostType dokarkiv.JournalpostType
}

// RoutingFor classifies t. Stans is an internal note, everything else is
// outgoing mail.
func RoutingFor(t models.VurderingType) (Routing, error) {
	switch t {
	case models.TypeForhandsvarsel:
		return Routing{"Forhåndsvarsel om stans av sykepenger", BrevkodeForhandsvarsel, dokarkiv.JournalpostUtgaaende}, nil
	case models.TypeOppfylt, models.TypeIkkeAktuell, models.TypeUnntak:
		return Routing{"Vurdering av § 8-8 manglende medvirkning", BrevkodeVurdering, dokarkiv.JournalpostUtgaaende}, nil
	case models.TypeStans:
		return Routing{"Innstilling om stans", BrevkodeStans, dokarkiv.JournalpostNotat}, nil
	}
	return Routing{}, fmt.Errorf("%w: %q", models.ErrUnknownType, t)
}

// BuildRequest assembles the journalpost of v. The vurdering UUID is the
// external reference, which makes repeated attempts idempotent.
func BuildRequest(v models.Vurdering, navn string, pdf []byte) (dokarkiv.JournalpostRequest, error) {
	routing, err := RoutingFor(v.Type)
	if err != nil {
		return dokarkiv.JournalpostRequest{}, err
	}
	variant, err := dokarkiv.NewArkivVariant(routing.Tittel, pdf)
	if err != nil {
		return dokarkiv.JournalpostRequest{}, err
	}
	ident := string(v.Personident)

	return dokarkiv.JournalpostRequest{
		AvsenderMottaker: &dokarkiv.AvsenderMottaker{
			ID:     ident,
			IDType: dokarkiv.IDTypeFnr,
			Navn:   navn,
		},
		Tittel: routing.Tittel,
		Bruker: &dokarkiv.Bruker{
			ID:     ident,
			IDType: dokarkiv.IDTypeFnr,
		},
		Dokumenter: []dokarkiv.Dokument{{
			Brevkode:          routing.Brevkode,
			Dokumentvarianter: []dokarkiv.Dokumentvariant{variant},
			Tittel:            routing.Tittel,
		}},
		JournalfoerendeEnhet: dokarkiv.JournalforendeEnhet,
		JournalpostType:      routing.JournalpostType,
		Tema:                 dokarkiv.TemaOppfolging,
		Sak:                  dokarkiv.Sak{Sakstype: dokarkiv.SakstypeGenerell},
		EksternReferanseID:   v.UUID.String(),
		Kanal:                dokarkiv.KanalNavNo,
	}, nil
}
