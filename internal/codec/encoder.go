package codec

import (
	"strconv"
	"strings"
)

// Encode renders v as TOON text. It is the sole entry point for the
// shape-analysis + emitter pipeline described in SPEC_FULL.md §4.3; callers
// normalize host values to Value first (see Normalize).
func Encode(v Value, opts EncodeOptions) (string, error) {
	opts, err := opts.normalized()
	if err != nil {
		return "", err
	}
	st := &encodeState{opts: opts}
	if err := st.encodeRoot(v, 0); err != nil {
		return "", err
	}
	return strings.Join(st.lines, "\n"), nil
}

type encodeState struct {
	opts  EncodeOptions
	lines []string
}

func (s *encodeState) emit(line string) {
	s.lines = append(s.lines, line)
}

func (s *encodeState) indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(" ", depth*s.opts.Indent)
}

func (s *encodeState) checkDepth(depth int) error {
	if depth > MaxDepth {
		return &DepthExceededError{Limit: MaxDepth}
	}
	return nil
}

func (s *encodeState) encodeRoot(v Value, depth int) error {
	if err := s.checkDepth(depth); err != nil {
		return err
	}
	switch v.Kind {
	case KindNull, KindBool, KindInt, KindFloat, KindString:
		tok, err := formatPrimitive(v)
		if err != nil {
			return err
		}
		s.emit(tok)
		return nil
	case KindObject:
		return s.encodeObject(v.ObjectValue(), depth)
	case KindArray:
		return s.encodeArray("", v.ArrayValue(), depth, true)
	default:
		return &InvalidInputError{Reason: "value has an unrecognized kind"}
	}
}

// encodeObject emits every field of obj at depth. At depth 0 an empty
// object produces no output (there is nothing to key it under); nested
// empty objects still need their "key:" header line, which the caller
// (encodeObject itself, for an object-valued field) is responsible for.
func (s *encodeState) encodeObject(obj Object, depth int) error {
	if err := s.checkDepth(depth); err != nil {
		return err
	}
	indent := s.indent(depth)
	for _, field := range obj.Fields {
		v := field.Value
		switch v.Kind {
		case KindNull, KindBool, KindInt, KindFloat, KindString:
			keyLit := encodeKey(field.Key)
			tok, err := formatPrimitive(v)
			if err != nil {
				return err
			}
			s.emit(indent + keyLit + ": " + tok)
		case KindObject:
			keyLit := encodeKey(field.Key)
			s.emit(indent + keyLit + ":")
			if v.ObjectValue().Len() > 0 {
				if err := s.encodeObject(v.ObjectValue(), depth+1); err != nil {
					return err
				}
			}
		case KindArray:
			if err := s.encodeArray(field.Key, v.ArrayValue(), depth, false); err != nil {
				return err
			}
		default:
			return &InvalidInputError{Reason: "object field has an unrecognized kind"}
		}
	}
	return nil
}

// encodeArray renders values as the header-bearing array production:
// inline for a uniform primitive array, tabular for a uniform array of
// primitive-valued objects, otherwise a bulleted list. root indicates the
// array has no enclosing object field; it does not change the output, as
// list items are always indented one step below the header.
func (s *encodeState) encodeArray(key string, values []Value, depth int, root bool) error {
	if err := s.checkDepth(depth); err != nil {
		return err
	}
	indent := s.indent(depth)
	delim := s.opts.Delimiter
	keyLit := ""
	if key != "" {
		keyLit = encodeKey(key)
	}

	_ = root
	kind, fields := classifyArray(values)
	switch kind {
	case shapeEmpty, shapeInline:
		line := indent + renderHeader(keyLit, len(values), delim, s.opts.LengthMarker, nil)
		if len(values) > 0 {
			toks := make([]string, len(values))
			for i, v := range values {
				tok, err := formatPrimitive(v)
				if err != nil {
					return err
				}
				toks[i] = tok
			}
			line += " " + strings.Join(toks, string(delim.Rune()))
		}
		s.emit(line)
		return nil

	case shapeTabular:
		s.emit(indent + renderHeader(keyLit, len(values), delim, s.opts.LengthMarker, fields))
		return s.encodeTabularRows(values, fields, depth+1, delim)

	default: // shapeList, shapeListOfInlineArrays
		s.emit(indent + renderHeader(keyLit, len(values), delim, s.opts.LengthMarker, nil))
		for _, item := range values {
			if err := s.encodeListItem(item, depth+1, delim); err != nil {
				return err
			}
		}
		return nil
	}
}

func (s *encodeState) encodeTabularRows(values []Value, fields []string, depth int, delim Delimiter) error {
	rowIndent := s.indent(depth)
	for _, row := range values {
		obj := row.ObjectValue()
		cells := make([]string, len(fields))
		for i, f := range fields {
			tok, err := formatPrimitive(fieldValue(obj, f))
			if err != nil {
				return err
			}
			cells[i] = tok
		}
		s.emit(rowIndent + strings.Join(cells, string(delim.Rune())))
	}
	return nil
}

// encodeListItem renders a single bulleted list element at depth.
func (s *encodeState) encodeListItem(item Value, depth int, delim Delimiter) error {
	if err := s.checkDepth(depth); err != nil {
		return err
	}
	switch item.Kind {
	case KindNull, KindBool, KindInt, KindFloat, KindString:
		tok, err := formatPrimitive(item)
		if err != nil {
			return err
		}
		s.emit(s.indent(depth) + "- " + tok)
		return nil
	case KindObject:
		return s.encodeObjectListItem(item.ObjectValue(), depth, delim)
	case KindArray:
		return s.encodeArrayForListItem("", item.ArrayValue(), depth, delim)
	default:
		return &InvalidInputError{Reason: "list item has an unrecognized kind"}
	}
}

// encodeObjectListItem implements the object-list-item rule of
// SPEC_FULL.md §4.3: the first field shares the "- " line; if it is a
// primitive, remaining fields follow at the same depth (not deeper); if it
// is a nested object, that object opens one level deeper; if it is a
// uniform array of objects, it is emitted tabularly at the list-item
// depth; if it is a non-uniform array, it becomes "- key[N]:" with
// elements one level deeper.
func (s *encodeState) encodeObjectListItem(obj Object, depth int, delim Delimiter) error {
	if obj.Len() == 0 {
		s.emit(s.indent(depth) + "- {}")
		return nil
	}
	first := obj.Fields[0]
	rest := Object{Fields: obj.Fields[1:]}

	switch first.Value.Kind {
	case KindNull, KindBool, KindInt, KindFloat, KindString:
		tok, err := formatPrimitive(first.Value)
		if err != nil {
			return err
		}
		s.emit(s.indent(depth) + "- " + encodeKey(first.Key) + ": " + tok)
		if rest.Len() > 0 {
			return s.encodeObject(rest, depth)
		}
		return nil

	case KindArray:
		if err := s.encodeArrayForListItem(encodeKey(first.Key), first.Value.ArrayValue(), depth, delim); err != nil {
			return err
		}
		if rest.Len() > 0 {
			return s.encodeObject(rest, depth)
		}
		return nil

	case KindObject:
		s.emit(s.indent(depth) + "- " + encodeKey(first.Key) + ":")
		if first.Value.ObjectValue().Len() > 0 {
			if err := s.encodeObject(first.Value.ObjectValue(), depth+1); err != nil {
				return err
			}
		}
		if rest.Len() > 0 {
			return s.encodeObject(rest, depth)
		}
		return nil

	default:
		return &InvalidInputError{Reason: "object field has an unrecognized kind"}
	}
}

// encodeArrayForListItem renders an array that is itself the (possibly
// key-bearing) payload of a list item: inline if primitive, tabular on the
// header line if uniform objects, otherwise a nested bulleted list one
// level deeper.
func (s *encodeState) encodeArrayForListItem(keyLit string, values []Value, depth int, delim Delimiter) error {
	if err := s.checkDepth(depth); err != nil {
		return err
	}
	indent := s.indent(depth)

	kind, fields := classifyArray(values)
	switch kind {
	case shapeTabular:
		s.emit(indent + "- " + renderHeader(keyLit, len(values), delim, s.opts.LengthMarker, fields))
		return s.encodeTabularRows(values, fields, depth+1, delim)

	case shapeEmpty, shapeInline:
		line := indent + "- " + renderHeader(keyLit, len(values), delim, s.opts.LengthMarker, nil)
		if len(values) > 0 {
			toks := make([]string, len(values))
			for i, v := range values {
				tok, err := formatPrimitive(v)
				if err != nil {
					return err
				}
				toks[i] = tok
			}
			line += " " + strings.Join(toks, string(delim.Rune()))
		}
		s.emit(line)
		return nil

	default: // shapeList, shapeListOfInlineArrays
		s.emit(indent + "- " + renderHeader(keyLit, len(values), delim, s.opts.LengthMarker, nil))
		for _, item := range values {
			if err := s.encodeListItem(item, depth+1, delim); err != nil {
				return err
			}
		}
		return nil
	}
}

// renderHeader formats the "[key-part][length-part][fields-part]:"
// production of SPEC_FULL.md §4.3/§6. Field names are always comma
// separated regardless of the active data delimiter.
func renderHeader(keyLit string, length int, delim Delimiter, lengthMarker bool, fields []string) string {
	var b strings.Builder
	b.WriteString(keyLit)
	b.WriteByte('[')
	if lengthMarker {
		b.WriteByte('#')
	}
	b.WriteString(strconv.Itoa(length))
	if delim != DelimiterComma {
		b.WriteRune(delim.Rune())
	}
	b.WriteByte(']')
	if len(fields) > 0 {
		b.WriteByte('{')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(encodeKey(f))
		}
		b.WriteByte('}')
	}
	b.WriteByte(':')
	return b.String()
}
