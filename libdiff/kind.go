package libdiff

import "fmt"

type Kind int

const (
	TypeMismatch Kind = iota
	ValueMismatch
	Missing
	Extra
	LengthMismatch
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		TypeMismatch:   "type mismatch",
		ValueMismatch:  "value mismatch",
		Missing:        "missing",
		Extra:          "extra",
		LengthMismatch: "length mismatch",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for _, kk := range []Kind{TypeMismatch, ValueMismatch, Missing, Extra, LengthMismatch} {
		if kk.String() == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized difference kind %q", d)
}
