package conftext

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"

	"github.com/confkit/confkit/pkg/types"
)

// DecodeInput converts raw configuration bytes to UTF-8 text.
// UTF-8 and UTF-16LE byte-order marks are honored regardless of enc;
// otherwise enc selects the decoder ("" means UTF-8).
func DecodeInput(data []byte, enc string) (string, error) {
	// Check for UTF-16LE BOM
	if len(data) >= len(UTF16LEBOM) && data[0] == UTF16LEBOM[0] && data[1] == UTF16LEBOM[1] {
		return utf16LEToString(data[len(UTF16LEBOM):]), nil
	}
	// Check for UTF-8 BOM - just skip it
	if len(data) >= len(UTF8BOM) && data[0] == UTF8BOM[0] && data[1] == UTF8BOM[1] && data[2] == UTF8BOM[2] {
		return string(data[len(UTF8BOM):]), nil
	}
	switch strings.ToUpper(enc) {
	case "", types.EncodingUTF8:
		return string(data), nil
	case types.EncodingUTF16LE:
		return utf16LEToString(data), nil
	case types.EncodingLatin1:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", &types.Error{Kind: types.ErrKindEncoding, Msg: "conftext: decode latin-1 input", Err: err}
		}
		return string(out), nil
	default:
		return "", types.ErrUnsupportedEncoding
	}
}

// utf16LEToString converts UTF-16LE data to a UTF-8 string.
// A trailing odd byte is dropped.
func utf16LEToString(data []byte) string {
	if len(data)%UTF16CodeUnitSize == 1 {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return ""
	}
	words := make([]uint16, len(data)/UTF16CodeUnitSize)
	for i := 0; i < len(words); i++ {
		words[i] = binary.LittleEndian.Uint16(data[i*UTF16CodeUnitSize:])
	}
	return string(utf16.Decode(words))
}
