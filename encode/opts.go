package encode

import "github.com/signadot/jcodec/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	return newState(opts).format
}

// Indent pretty prints JSON with n spaces per level. Zero, the default,
// writes compact JSON.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 0) }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
