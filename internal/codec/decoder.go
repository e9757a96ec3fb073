package codec

import "strings"

// Decode parses text as a TOON document per SPEC_FULL.md §4.6 and returns
// its Value tree. An empty or whitespace-only document is rejected with
// *InvalidInputError; a line nested deeper than MaxDepth is rejected with
// *DepthExceededError.
func Decode(text string, opts DecodeOptions) (Value, error) {
	opts = opts.normalized()

	lines, blanks, err := scan(text, opts)
	if err != nil {
		return Value{}, err
	}
	if len(lines) == 0 {
		return Value{}, &InvalidInputError{Reason: "empty or whitespace-only document"}
	}
	for _, l := range lines {
		if l.Depth > MaxDepth {
			return Value{}, &DepthExceededError{Limit: MaxDepth}
		}
	}

	st := &decodeState{lines: lines, blanks: blanks, opts: opts}
	v, derr := st.decodeRoot()
	if derr != nil {
		return Value{}, derr
	}
	if st.pos != len(st.lines) {
		trailing := st.lines[st.pos]
		return Value{}, &SyntaxError{Line: trailing.LineNumber, Message: "unexpected trailing content after document value"}
	}
	return v, nil
}

type decodeState struct {
	lines  []ParsedLine
	blanks []BlankLineInfo
	opts   DecodeOptions
	pos    int
}

// blankLinesBetween reports the blank line numbers, if any, strictly
// between after and before (exclusive). Used to scope
// UnexpectedBlankLineError to blank lines found inside a row block, per
// SPEC_FULL.md §7, rather than anywhere in the document.
func (s *decodeState) blankLinesBetween(after, before int) []int {
	var nums []int
	for _, b := range s.blanks {
		if b.LineNumber > after && b.LineNumber < before {
			nums = append(nums, b.LineNumber)
		}
	}
	return nums
}

// checkNoBlankLineBefore raises UnexpectedBlankLineError in strict mode if
// a blank line separates the previous row-block line (prevLine) from the
// next one (nextLine).
func (s *decodeState) checkNoBlankLineBefore(prevLine, nextLine int) error {
	if !s.opts.Strict {
		return nil
	}
	if nums := s.blankLinesBetween(prevLine, nextLine); len(nums) > 0 {
		return &UnexpectedBlankLineError{Lines: nums}
	}
	return nil
}

// decodeRoot dispatches the document's first line to a keyless array
// header, a single bare primitive, or an object, per SPEC_FULL.md §4.6.
func (s *decodeState) decodeRoot() (Value, error) {
	first := s.lines[0]
	if first.Depth != 0 {
		return Value{}, &IndentationError{Line: first.LineNumber, Message: "document must start at depth 0"}
	}

	hdr, remainder, ok, err := tryParseHeader(first.Content)
	if err != nil {
		return Value{}, err
	}
	if ok && !hdr.HasKey {
		s.pos = 1
		return s.decodeArrayBody(hdr, remainder, first.LineNumber, 0)
	}

	if len(s.lines) == 1 {
		if _, _, kerr := parseKeyColon(first.Content); kerr != nil {
			s.pos = 1
			v, verr := parseValueToken(strings.TrimSpace(first.Content))
			if verr != nil {
				return Value{}, &SyntaxError{Line: first.LineNumber, Message: verr.Error()}
			}
			return v, nil
		}
	}

	return s.decodeObject(0)
}

// decodeObject reads an object's fields starting at s.pos, all of which
// must sit at exactly depth.
func (s *decodeState) decodeObject(depth int) (Value, error) {
	return s.decodeFieldsAt(depth, nil, false)
}

// decodeFieldsAt is shared by decodeObject and the continuation of an
// object-valued list item (decodeListItem below): it accumulates
// key/value fields at depth until the depth drops, a list item line is
// reached (stopOnListItem decides whether that ends the loop or is an
// error), or input is exhausted.
func (s *decodeState) decodeFieldsAt(depth int, fields []Field, stopOnListItem bool) (Value, error) {
	for s.pos < len(s.lines) {
		line := s.lines[s.pos]
		if line.Depth < depth {
			break
		}
		if line.Depth > depth {
			return Value{}, &IndentationError{Line: line.LineNumber, Message: "unexpected indentation increase"}
		}

		if _, isItem := stripListMarker(line.Content); isItem {
			if stopOnListItem {
				break
			}
			return Value{}, &SyntaxError{Line: line.LineNumber, Message: "unexpected list item inside object"}
		}

		hdr, remainder, ok, err := tryParseHeader(line.Content)
		if err != nil {
			return Value{}, err
		}
		if ok {
			if !hdr.HasKey {
				return Value{}, &SyntaxError{Line: line.LineNumber, Message: "array header inside an object must have a key"}
			}
			s.pos++
			arr, aerr := s.decodeArrayBody(hdr, remainder, line.LineNumber, depth)
			if aerr != nil {
				return Value{}, aerr
			}
			fields = append(fields, Field{Key: hdr.Key, Value: arr})
			continue
		}

		key, remainder, kerr := parseKeyColon(line.Content)
		if kerr != nil {
			return Value{}, &SyntaxError{Line: line.LineNumber, Message: kerr.Error()}
		}
		s.pos++
		if remainder == "" {
			if s.pos < len(s.lines) && s.lines[s.pos].Depth == depth+1 {
				child, cerr := s.decodeObject(depth + 1)
				if cerr != nil {
					return Value{}, cerr
				}
				fields = append(fields, Field{Key: key, Value: child})
				continue
			}
			fields = append(fields, Field{Key: key, Value: Obj()})
			continue
		}
		val, verr := parseValueToken(remainder)
		if verr != nil {
			return Value{}, &SyntaxError{Line: line.LineNumber, Message: verr.Error()}
		}
		fields = append(fields, Field{Key: key, Value: val})
	}
	return Obj(fields...), nil
}

// decodeArrayBody decodes the body of an already-recognized array header:
// inline values on the header line itself, tabular rows, a bulleted list,
// or the empty array, per SPEC_FULL.md §4.3/§4.6. parentDepth is the depth
// of the header line; body lines, when present, sit at parentDepth+1.
func (s *decodeState) decodeArrayBody(hdr ArrayHeader, remainder string, headerLine, parentDepth int) (Value, error) {
	delim := DelimiterComma
	if hdr.HasDelimiter {
		delim = hdr.Delimiter
	}

	if remainder != "" {
		if hdr.HasFields {
			return Value{}, &SyntaxError{Line: headerLine, Message: "a tabular array header cannot carry inline values"}
		}
		tokens := splitDelimited(remainder, delim.Rune())
		values := make([]Value, len(tokens))
		for i, tok := range tokens {
			v, err := parseValueToken(tok)
			if err != nil {
				return Value{}, &SyntaxError{Line: headerLine, Message: err.Error()}
			}
			values[i] = v
		}
		if len(values) != hdr.Length && (s.opts.Strict || len(values) > hdr.Length) {
			return Value{}, &CountMismatchError{Expected: hdr.Length, Actual: len(values), Kind: "inline", Line: headerLine}
		}
		return ArrSlice(values), nil
	}

	rowDepth := parentDepth + 1

	if hdr.HasFields {
		values := make([]Value, 0, hdr.Length)
		prevLine := headerLine
		for i := 0; i < hdr.Length; i++ {
			if s.pos >= len(s.lines) || s.lines[s.pos].Depth != rowDepth {
				if s.opts.Strict {
					return Value{}, &CountMismatchError{Expected: hdr.Length, Actual: i, Kind: "tabular", Line: headerLine}
				}
				break
			}
			row := s.lines[s.pos]
			if err := s.checkNoBlankLineBefore(prevLine, row.LineNumber); err != nil {
				return Value{}, err
			}
			if _, isItem := stripListMarker(row.Content); isItem {
				return Value{}, &SyntaxError{Line: row.LineNumber, Message: "a tabular row cannot be a list item"}
			}
			cells := splitDelimited(row.Content, delim.Rune())
			if len(cells) != len(hdr.Fields) && (s.opts.Strict || len(cells) > len(hdr.Fields)) {
				return Value{}, &CountMismatchError{Expected: len(hdr.Fields), Actual: len(cells), Kind: "tabular", Line: row.LineNumber}
			}
			rowFields := make([]Field, len(hdr.Fields))
			for j, f := range hdr.Fields {
				v := Null()
				if j < len(cells) {
					var err error
					v, err = parseValueToken(cells[j])
					if err != nil {
						return Value{}, &SyntaxError{Line: row.LineNumber, Message: err.Error()}
					}
				}
				rowFields[j] = Field{Key: f, Value: v}
			}
			values = append(values, Obj(rowFields...))
			s.pos++
			prevLine = row.LineNumber
		}
		return ArrSlice(values), nil
	}

	values := make([]Value, 0, hdr.Length)
	prevLine := headerLine
	for i := 0; i < hdr.Length; i++ {
		if s.pos >= len(s.lines) || s.lines[s.pos].Depth != rowDepth {
			if s.opts.Strict {
				return Value{}, &CountMismatchError{Expected: hdr.Length, Actual: i, Kind: "list", Line: headerLine}
			}
			break
		}
		itemLine := s.lines[s.pos]
		if err := s.checkNoBlankLineBefore(prevLine, itemLine.LineNumber); err != nil {
			return Value{}, err
		}
		if _, isItem := stripListMarker(itemLine.Content); !isItem {
			return Value{}, &SyntaxError{Line: itemLine.LineNumber, Message: "expected a list item starting with \"- \""}
		}
		item, err := s.decodeListItem(rowDepth)
		if err != nil {
			return Value{}, err
		}
		values = append(values, item)
		prevLine = s.lines[s.pos-1].LineNumber
	}
	return ArrSlice(values), nil
}

// decodeListItem decodes one "- ..." line at itemDepth (s.lines[s.pos]),
// consuming any nested block it owns, and returns its Value. A list item
// is a primitive, a nested array (keyless header), or the first field of
// an object whose remaining fields continue at itemDepth.
func (s *decodeState) decodeListItem(itemDepth int) (Value, error) {
	line := s.lines[s.pos]
	content, _ := stripListMarker(line.Content)
	s.pos++

	if content == "" || content == "{}" {
		return Obj(), nil
	}

	hdr, remainder, ok, err := tryParseHeader(content)
	if err != nil {
		return Value{}, err
	}
	if ok {
		arr, aerr := s.decodeArrayBody(hdr, remainder, line.LineNumber, itemDepth)
		if aerr != nil {
			return Value{}, aerr
		}
		if !hdr.HasKey {
			return arr, nil
		}
		return s.decodeFieldsAt(itemDepth, []Field{{Key: hdr.Key, Value: arr}}, true)
	}

	if key, remainder, kerr := parseKeyColon(content); kerr == nil {
		var val Value
		if remainder == "" {
			if s.pos < len(s.lines) && s.lines[s.pos].Depth == itemDepth+1 {
				child, cerr := s.decodeObject(itemDepth + 1)
				if cerr != nil {
					return Value{}, cerr
				}
				val = child
			} else {
				val = Obj()
			}
		} else {
			var verr error
			val, verr = parseValueToken(remainder)
			if verr != nil {
				return Value{}, &SyntaxError{Line: line.LineNumber, Message: verr.Error()}
			}
		}
		return s.decodeFieldsAt(itemDepth, []Field{{Key: key, Value: val}}, true)
	}

	v, verr := parseValueToken(content)
	if verr != nil {
		return Value{}, &SyntaxError{Line: line.LineNumber, Message: verr.Error()}
	}
	return v, nil
}
