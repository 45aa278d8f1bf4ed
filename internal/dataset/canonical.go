package dataset

import "socionics-wiki/internal/domain"

const wikiBaseURL = "https://wikisocion.github.io/content/"

// CanonicalCodes fija el orden de presentacion de los tipos (por cuadra).
var CanonicalCodes = []string{
	"ILE", "SEI", "ESE", "LII",
	"SLE", "IEI", "EIE", "LSI",
	"SEE", "ILI", "LIE", "ESI",
	"IEE", "SLI", "LSE", "EII",
}

func canonicalType(code, fullName, alias string, q domain.Quadra, t domain.Temperament, leading, creative domain.Element) domain.TypeRecord {
	return domain.TypeRecord{
		Code:        code,
		FullName:    fullName,
		Alias:       alias,
		Quadra:      q,
		Temperament: t,
		Leading:     leading,
		Creative:    creative,
		Href:        wikiBaseURL + code + ".html",
	}
}

func canonicalTypes() []domain.TypeRecord {
	return []domain.TypeRecord{
		canonicalType("ILE", "Intuitive-Logical Extravert", "Inventor", domain.QuadraAlpha, domain.TemperamentEP, domain.ElementNe, domain.ElementTi),
		canonicalType("SEI", "Sensory-Ethical Introvert", "Mediator", domain.QuadraAlpha, domain.TemperamentIP, domain.ElementSi, domain.ElementFe),
		canonicalType("ESE", "Ethical-Sensory Extravert", "Enthusiast", domain.QuadraAlpha, domain.TemperamentEJ, domain.ElementFe, domain.ElementSi),
		canonicalType("LII", "Logical-Intuitive Introvert", "Analyst", domain.QuadraAlpha, domain.TemperamentIJ, domain.ElementTi, domain.ElementNe),

		canonicalType("SLE", "Sensory-Logical Extravert", "Marshal", domain.QuadraBeta, domain.TemperamentEP, domain.ElementSe, domain.ElementTi),
		canonicalType("IEI", "Intuitive-Ethical Introvert", "Lyricist", domain.QuadraBeta, domain.TemperamentIP, domain.ElementNi, domain.ElementFe),
		canonicalType("EIE", "Ethical-Intuitive Extravert", "Mentor", domain.QuadraBeta, domain.TemperamentEJ, domain.ElementFe, domain.ElementNi),
		canonicalType("LSI", "Logical-Sensory Introvert", "Inspector", domain.QuadraBeta, domain.TemperamentIJ, domain.ElementTi, domain.ElementSe),

		canonicalType("SEE", "Sensory-Ethical Extravert", "Politician", domain.QuadraGamma, domain.TemperamentEP, domain.ElementSe, domain.ElementFi),
		canonicalType("ILI", "Intuitive-Logical Introvert", "Critic", domain.QuadraGamma, domain.TemperamentIP, domain.ElementNi, domain.ElementTe),
		canonicalType("LIE", "Logical-Intuitive Extravert", "Entrepreneur", domain.QuadraGamma, domain.TemperamentEJ, domain.ElementTe, domain.ElementNi),
		canonicalType("ESI", "Ethical-Sensory Introvert", "Guardian", domain.QuadraGamma, domain.TemperamentIJ, domain.ElementFi, domain.ElementSe),

		canonicalType("IEE", "Intuitive-Ethical Extravert", "Psychologist", domain.QuadraDelta, domain.TemperamentEP, domain.ElementNe, domain.ElementFi),
		canonicalType("SLI", "Sensory-Logical Introvert", "Craftsman", domain.QuadraDelta, domain.TemperamentIP, domain.ElementSi, domain.ElementTe),
		canonicalType("LSE", "Logical-Sensory Extravert", "Administrator", domain.QuadraDelta, domain.TemperamentEJ, domain.ElementTe, domain.ElementSi),
		canonicalType("EII", "Ethical-Intuitive Introvert", "Humanist", domain.QuadraDelta, domain.TemperamentIJ, domain.ElementFi, domain.ElementNe),
	}
}

func canonicalRelations() []domain.RelationPair {
	return []domain.RelationPair{
		{A: "ILE", B: "SEI", Name: "Duality", Summary: "ILE brings ideas and logical framing; SEI answers with comfort, warmth and a calm everyday rhythm."},
		{A: "LII", B: "ESE", Name: "Duality", Summary: "LII supplies structure and clear principles; ESE supplies emotional energy and care for physical wellbeing."},
		{A: "SLE", B: "IEI", Name: "Duality", Summary: "SLE drives action and takes charge; IEI reads the mood of the moment and sees where events are heading."},
		{A: "LSI", B: "EIE", Name: "Duality", Summary: "LSI keeps order and systems in place; EIE leads with expressive emotion and a sense of historical purpose."},
		{A: "SEE", B: "ILI", Name: "Duality", Summary: "SEE pushes for influence and visible results; ILI weighs the risks and forecasts long-term consequences."},
		{A: "ESI", B: "LIE", Name: "Duality", Summary: "ESI guards loyalties and personal boundaries; LIE pursues efficiency and new ventures."},
		{A: "LSE", B: "EII", Name: "Duality", Summary: "LSE organizes work and practical quality; EII offers moral clarity and attention to individual potential."},
		{A: "SLI", B: "IEE", Name: "Duality", Summary: "SLI values craft and sensory comfort; IEE explores people and possibilities with enthusiasm."},
	}
}

func canonicalGlossary() []domain.GlossaryTerm {
	return []domain.GlossaryTerm{
		{Slug: "socionics", Term: "Socionics", Definition: "A theory of information metabolism describing sixteen psychological types and the relations between them."},
		{Slug: "information-element", Term: "Information element", Definition: "One of eight categories of information a psyche processes: Ne, Ni, Se, Si, Te, Ti, Fe and Fi."},
		{Slug: "leading-function", Term: "Leading function", Definition: "The strongest, most confident information element of a type; it defines the type's main outlook."},
		{Slug: "creative-function", Term: "Creative function", Definition: "The second function of a type, used flexibly to serve and express the leading function."},
		{Slug: "quadra", Term: "Quadra", Definition: "A group of four types sharing the same valued information elements; the quadras are Alpha, Beta, Gamma and Delta."},
		{Slug: "temperament", Term: "Temperament", Definition: "A grouping by extraversion and rationality: EP, EJ, IP and IJ describe the pace and rhythm of activity."},
		{Slug: "intertype-relation", Term: "Intertype relation", Definition: "The typical pattern of interaction between two types, derived from how their functions line up."},
		{Slug: "model-a", Term: "Model A", Definition: "The eight-position model of the psyche by Aushra Augusta that places each information element in a function slot."},
	}
}

func canonicalOverview() domain.Overview {
	return domain.Overview{
		Title:   "Socionics",
		Summary: "Socionics describes how people take in and process information, grouping them into sixteen types and predicting how any two types tend to interact.",
		Source:  wikiBaseURL + "socionics.html",
	}
}

// Canonical devuelve el dataset escrito a mano, sin texto extraido por el scraper.
func Canonical() *Dataset {
	return New(canonicalTypes(), canonicalRelations(), canonicalGlossary(), canonicalOverview())
}
