package domain

import "fmt"

// Quadra agrupa los 16 tipos en cuatro cuadras con orden ciclico fijo.
type Quadra int

const (
	QuadraAlpha Quadra = iota + 1
	QuadraBeta
	QuadraGamma
	QuadraDelta
)

var quadraNames = map[Quadra]string{
	QuadraAlpha: "Alpha",
	QuadraBeta:  "Beta",
	QuadraGamma: "Gamma",
	QuadraDelta: "Delta",
}

// Quadras devuelve las cuadras en orden ciclico.
func Quadras() []Quadra {
	return []Quadra{QuadraAlpha, QuadraBeta, QuadraGamma, QuadraDelta}
}

func (q Quadra) Valid() bool {
	_, ok := quadraNames[q]
	return ok
}

// Index devuelve la posicion de la cuadra en el orden ciclico, o -1 si no es valida.
func (q Quadra) Index() int {
	for i, candidate := range Quadras() {
		if candidate == q {
			return i
		}
	}
	return -1
}

func (q Quadra) String() string {
	if name, ok := quadraNames[q]; ok {
		return name
	}
	return fmt.Sprintf("Quadra(%d)", int(q))
}

func (q Quadra) MarshalText() ([]byte, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("invalid quadra %d", int(q))
	}
	return []byte(q.String()), nil
}

func (q *Quadra) UnmarshalText(text []byte) error {
	parsed, err := ParseQuadra(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// ParseQuadra convierte el nombre canonico en Quadra.
func ParseQuadra(s string) (Quadra, error) {
	for q, name := range quadraNames {
		if name == s {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown quadra %q", s)
}

// Temperament es uno de los cuatro temperamentos (EP, EJ, IP, IJ).
type Temperament int

const (
	TemperamentEP Temperament = iota + 1
	TemperamentEJ
	TemperamentIP
	TemperamentIJ
)

var temperamentNames = map[Temperament]string{
	TemperamentEP: "EP",
	TemperamentEJ: "EJ",
	TemperamentIP: "IP",
	TemperamentIJ: "IJ",
}

func (t Temperament) Valid() bool {
	_, ok := temperamentNames[t]
	return ok
}

func (t Temperament) String() string {
	if name, ok := temperamentNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Temperament(%d)", int(t))
}

func (t Temperament) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid temperament %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Temperament) UnmarshalText(text []byte) error {
	parsed, err := ParseTemperament(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func ParseTemperament(s string) (Temperament, error) {
	for t, name := range temperamentNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown temperament %q", s)
}

// Element es un elemento informacional (canal de informacion).
type Element int

const (
	ElementNe Element = iota + 1
	ElementNi
	ElementSe
	ElementSi
	ElementTe
	ElementTi
	ElementFe
	ElementFi
)

var elementNames = map[Element]string{
	ElementNe: "Ne",
	ElementNi: "Ni",
	ElementSe: "Se",
	ElementSi: "Si",
	ElementTe: "Te",
	ElementTi: "Ti",
	ElementFe: "Fe",
	ElementFi: "Fi",
}

func (e Element) Valid() bool {
	_, ok := elementNames[e]
	return ok
}

func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Element(%d)", int(e))
}

func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("invalid element %d", int(e))
	}
	return []byte(e.String()), nil
}

func (e *Element) UnmarshalText(text []byte) error {
	parsed, err := ParseElement(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func ParseElement(s string) (Element, error) {
	for e, name := range elementNames {
		if name == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", s)
}
