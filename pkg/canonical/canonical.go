// Package canonical converts Go values into stable byte sequences for hashing.
// Equal logical values yield equal bytes even across distinct instances and
// across equivalent static types; values whose equality is identity based
// (maps, channels, functions) are rejected.
package canonical

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
)

var ErrUnhashable = fmt.Errorf("canonical: value has no stable byte representation")

// Canonicalizer lets a type supply its own canonical byte form. It takes
// precedence over every built-in encoding rule.
type Canonicalizer interface {
	CanonicalBytes() ([]byte, error)
}

// Every encoded value starts with a one-byte tag. Scalars follow as
// big-endian fixed width: [tag:1][value:8]. Strings and byte payloads carry
// a length prefix: [tag:1][len:4][data:N]. Sequences and structs carry an
// element count followed by the encoded elements.
const (
	tagNil byte = iota
	tagFalse
	tagTrue
	tagInt
	tagUint
	tagFloat
	tagComplex
	tagString
	tagBytes
	tagList
	tagStruct
	tagMarshaled
	tagCustom
)

// maxDepth bounds recursion so cyclic pointer chains surface as
// ErrUnhashable instead of exhausting the stack.
const maxDepth = 64

// Bytes converts item into its canonical byte sequence.
//
// Signed integers of any width encode alike, as do unsigned integers and
// both float widths, so int(7) and int64(7) collide while int(7) and
// uint(7) do not. Pointers are followed, nil encodes as its own marker.
// A type implementing Canonicalizer or encoding.BinaryMarshaler is encoded
// through that hook before any structural rule applies.
func Bytes(item any) ([]byte, error) {
	if item == nil {
		return []byte{tagNil}, nil
	}
	return appendValue(make([]byte, 0, 64), reflect.ValueOf(item), 0)
}

func appendValue(dst []byte, v reflect.Value, depth int) ([]byte, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d levels", ErrUnhashable, maxDepth)
	}
	if !v.IsValid() {
		return append(dst, tagNil), nil
	}
	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return append(dst, tagNil), nil
	}

	if v.CanInterface() {
		switch hook := v.Interface().(type) {
		case Canonicalizer:
			b, err := hook.CanonicalBytes()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrUnhashable, err)
			}
			return appendBlock(dst, tagCustom, b), nil
		case encoding.BinaryMarshaler:
			b, err := hook.MarshalBinary()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrUnhashable, err)
			}
			return appendBlock(dst, tagMarshaled, b), nil
		}
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return append(dst, tagTrue), nil
		}
		return append(dst, tagFalse), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return appendUint64(append(dst, tagInt), uint64(v.Int())), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return appendUint64(append(dst, tagUint), v.Uint()), nil

	case reflect.Float32, reflect.Float64:
		f := v.Float()
		bits := math.Float64bits(f)
		if f == 0 {
			bits = 0 // -0 and +0 compare equal, encode them alike
		}
		return appendUint64(append(dst, tagFloat), bits), nil

	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		dst = appendUint64(append(dst, tagComplex), math.Float64bits(real(c)))
		return appendUint64(dst, math.Float64bits(imag(c))), nil

	case reflect.String:
		s := v.String()
		dst = appendLen(append(dst, tagString), len(s))
		return append(dst, s...), nil

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return append(dst, tagNil), nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return appendBlock(dst, tagBytes, byteContents(v)), nil
		}
		dst = appendLen(append(dst, tagList), v.Len())
		var err error
		for i := 0; i < v.Len(); i++ {
			if dst, err = appendValue(dst, v.Index(i), depth+1); err != nil {
				return nil, err
			}
		}
		return dst, nil

	case reflect.Struct:
		t := v.Type()
		dst = appendLen(append(dst, tagStruct), v.NumField())
		var err error
		for i := 0; i < v.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				return nil, fmt.Errorf("%w: %s has unexported field %s", ErrUnhashable, t, field.Name)
			}
			dst = appendLen(append(dst, tagString), len(field.Name))
			dst = append(dst, field.Name...)
			if dst, err = appendValue(dst, v.Field(i), depth+1); err != nil {
				return nil, err
			}
		}
		return dst, nil

	case reflect.Pointer, reflect.Interface:
		return appendValue(dst, v.Elem(), depth+1)

	case reflect.Map:
		return nil, fmt.Errorf("%w: %s has no stable iteration order", ErrUnhashable, v.Type())

	default:
		// Chan, Func, UnsafePointer, Uintptr: equality is identity based.
		return nil, fmt.Errorf("%w: unsupported type %s", ErrUnhashable, v.Type())
	}
}

func byteContents(v reflect.Value) []byte {
	if v.Kind() == reflect.Slice {
		return v.Bytes()
	}
	b := make([]byte, v.Len())
	for i := range b {
		b[i] = byte(v.Index(i).Uint())
	}
	return b
}

func appendUint64(dst []byte, u uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u)
	return append(dst, b[:]...)
}

func appendLen(dst []byte, n int) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(n))
	return append(dst, b[:]...)
}

func appendBlock(dst []byte, tag byte, b []byte) []byte {
	dst = appendLen(append(dst, tag), len(b))
	return append(dst, b...)
}
