package store

import (
	"path"
	"strings"

	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/zerr"
)

const hexDigits = "0123456789abcdef"

// EncodePath maps identity to a slash separated path relative to the store root.
//
// Every segment of the identity becomes one path element. Lowercase letters, digits, '-',
// '_' and non-leading '.' are kept, uppercase letters become '!' followed by the lowercase
// letter and every other byte becomes '%' and two lowercase hex digits. The output is all
// lowercase, never starts an element with '.', and directory elements never end in ext, so
// distinct identities map to distinct paths even on case-insensitive filesystems.
func EncodePath(identity, ext string) (string, error) {
	if err := domain.ValidateIdentity(identity); err != nil {
		return "", err
	}

	segments := strings.Split(identity, domain.IdentitySeparator)
	encoded := make([]string, len(segments))
	last := len(segments) - 1
	for i, segment := range segments {
		elem := encodeSegment(segment)
		if i < last && hasSuffixFold(elem, ext) {
			cut := len(elem) - len(ext)
			elem = elem[:cut] + "%2e" + elem[cut+1:]
		}
		encoded[i] = elem
	}
	encoded[last] += ext

	return path.Join(encoded...), nil
}

// DecodePath is the inverse of EncodePath. It rejects paths that EncodePath would never produce.
func DecodePath(rel, ext string) (string, error) {
	if !strings.HasSuffix(rel, ext) || len(rel) == len(ext) {
		return "", zerr.With(zerr.New("not a workspace record"), "path", rel)
	}

	elems := strings.Split(strings.TrimSuffix(rel, ext), "/")
	segments := make([]string, len(elems))
	for i, elem := range elems {
		segment, err := decodeSegment(elem)
		if err != nil {
			return "", zerr.With(err, "path", rel)
		}
		segments[i] = segment
	}

	identity := strings.Join(segments, domain.IdentitySeparator)
	canonical, err := EncodePath(identity, ext)
	if err != nil || canonical != rel {
		return "", zerr.With(zerr.New("non-canonical workspace record name"), "path", rel)
	}
	return identity, nil
}

func encodeSegment(segment string) string {
	var b strings.Builder
	b.Grow(len(segment))
	for i := range len(segment) {
		c := segment[i]
		switch {
		case 'a' <= c && c <= 'z', '0' <= c && c <= '9', c == '-', c == '_':
			b.WriteByte(c)
		case 'A' <= c && c <= 'Z':
			b.WriteByte('!')
			b.WriteByte(c + ('a' - 'A'))
		case c == '.' && i > 0:
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0x0f])
		}
	}
	return b.String()
}

func decodeSegment(elem string) (string, error) {
	var b strings.Builder
	b.Grow(len(elem))
	for i := 0; i < len(elem); i++ {
		c := elem[i]
		switch {
		case c == '!':
			if i+1 >= len(elem) || elem[i+1] < 'a' || elem[i+1] > 'z' {
				return "", zerr.New("dangling case escape")
			}
			b.WriteByte(elem[i+1] - ('a' - 'A'))
			i++
		case c == '%':
			if i+2 >= len(elem) {
				return "", zerr.New("truncated byte escape")
			}
			hi, lo := strings.IndexByte(hexDigits, elem[i+1]), strings.IndexByte(hexDigits, elem[i+2])
			if hi < 0 || lo < 0 {
				return "", zerr.New("invalid byte escape")
			}
			b.WriteByte(byte(hi<<4 | lo))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
