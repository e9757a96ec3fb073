// Package sizecmp reports how many bytes TOON saves over minified JSON
// for a given value, the measurement behind the format's whole reason for
// existing (Scenario 8 of the original specification).
package sizecmp

import (
	"encoding/json"

	"github.com/madstone-tech/toon/internal/codec"
)

// Report holds the byte-length comparison between a value's TOON and
// minified-JSON encodings.
type Report struct {
	TOONBytes    int
	JSONBytes    int
	SavedBytes   int
	SavedPercent float64
}

// Compare encodes v both ways and reports the difference. json.Marshal
// already produces compact, no-whitespace output, so no separate
// minification step is needed for the JSON side.
func Compare(v any, opts ...codec.EncoderOption) (Report, error) {
	encOpts := codec.BuildEncodeOptions(opts...)
	normalized, err := codec.Normalize(v, encOpts)
	if err != nil {
		return Report{}, err
	}
	toonText, err := codec.Encode(normalized, encOpts)
	if err != nil {
		return Report{}, err
	}
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return Report{}, err
	}

	toonLen := len(toonText)
	jsonLen := len(jsonBytes)
	saved := jsonLen - toonLen
	var pct float64
	if jsonLen > 0 {
		pct = float64(saved) / float64(jsonLen) * 100
	}
	return Report{
		TOONBytes:    toonLen,
		JSONBytes:    jsonLen,
		SavedBytes:   saved,
		SavedPercent: pct,
	}, nil
}
