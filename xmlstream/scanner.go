// Package xmlstream extracts matching sub-elements from a large XML document
// without materializing the whole tree.
package xmlstream

import (
	"encoding/xml"
	"errors"
	"io"
)

// Element is a fully materialized XML subtree.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []Element  `xml:",any"`
	Text     string     `xml:",chardata"`
}

// ChildText returns the text content of the first direct child with the
// given local name, exactly as it appears in the document.
func (e *Element) ChildText(name string) (string, bool) {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			return e.Children[i].Text, true
		}
	}
	return "", false
}

// Scanner streams over an XML document and yields each element whose tag
// matches the requested name, wherever it appears in the tree. The scan is
// forward-only and single-pass; memory use is bounded by the largest matched
// subtree, not by the document.
//
// A matched element is consumed whole, so a matching tag nested inside
// another match is part of the outer element and is not yielded on its own.
type Scanner struct {
	dec *xml.Decoder
	tag string
	cur *Element
	err error
}

// NewScanner returns a Scanner that reads from r and matches elements with
// the given local tag name. The Scanner does not close r.
//
// Extract dumps carry stray NULs and vertical tabs inside text content,
// which the XML grammar forbids outright. Those bytes are filtered out of
// the stream before decoding rather than treated as malformed input.
func NewScanner(r io.Reader, tag string) *Scanner {
	return &Scanner{dec: xml.NewDecoder(controlFilter{r: r}), tag: tag}
}

// Scan advances to the next matching element. It returns false at the end of
// the document or on error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for {
		tok, err := s.dec.Token()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
			return false
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != s.tag {
			continue
		}
		el := &Element{}
		if err := s.dec.DecodeElement(el, &start); err != nil {
			s.err = err
			return false
		}
		s.cur = el
		return true
	}
}

// Element returns the most recently matched element.
func (s *Scanner) Element() *Element {
	return s.cur
}

// Err returns the first error encountered while scanning, if any.
func (s *Scanner) Err() error {
	return s.err
}

// InputOffset returns the byte offset the underlying decoder has reached,
// for error reporting. Offsets count filtered bytes, so they can run
// slightly behind positions in the raw file.
func (s *Scanner) InputOffset() int64 {
	return s.dec.InputOffset()
}

// controlFilter drops ASCII control bytes other than tab, newline and
// carriage return. These never occur inside multi-byte UTF-8 sequences, so
// filtering byte-wise is safe. Control characters that are legal XML (DEL
// and the C1 range) pass through for field-level sanitization to handle.
type controlFilter struct {
	r io.Reader
}

func (f controlFilter) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	kept := 0
	for _, b := range p[:n] {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			continue
		}
		p[kept] = b
		kept++
	}
	if kept == 0 && n > 0 && err == nil {
		return f.Read(p)
	}
	return kept, err
}
