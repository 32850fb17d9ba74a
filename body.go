package imap

import (
	"fmt"
	"strings"
)

// BodyStructure describes the MIME structure of a message, as returned
// by the BODY and BODYSTRUCTURE message attributes.
//
// A BodyStructure value is either a *BodyStructureSinglePart or a
// *BodyStructureMultiPart.
//
// Grounded on imapclient/fetch.go's BodyStructure hierarchy.
type BodyStructure interface {
	// MediaType returns the MIME type of this body structure, e.g. "text/plain".
	MediaType() string
	// Walk walks the body structure tree, calling f for each part in the tree,
	// including bs itself. The parts are visited in DFS pre-order.
	Walk(f BodyStructureWalkFunc)
	// Disposition returns the body structure disposition, if available.
	Disposition() *BodyStructureDisposition

	bodyStructure()
}

var (
	_ BodyStructure = (*BodyStructureSinglePart)(nil)
	_ BodyStructure = (*BodyStructureMultiPart)(nil)
)

// BodyStructureSinglePart is a body structure with a single part.
type BodyStructureSinglePart struct {
	Type, Subtype string
	Params        map[string]string
	ID            string
	Description   string
	Encoding      string
	Size          uint32

	MessageRFC822 *BodyStructureMessageRFC822 // only for "message/rfc822" and "message/global"
	Text          *BodyStructureText          // only for "text/*"
	Extended      *BodyStructureSinglePartExt
}

func (bs *BodyStructureSinglePart) MediaType() string {
	return strings.ToLower(bs.Type) + "/" + strings.ToLower(bs.Subtype)
}

func (bs *BodyStructureSinglePart) Walk(f BodyStructureWalkFunc) {
	f([]int{1}, bs)
}

func (bs *BodyStructureSinglePart) Disposition() *BodyStructureDisposition {
	if bs.Extended == nil {
		return nil
	}
	return bs.Extended.Disposition
}

// Filename decodes the body structure's filename, if any.
func (bs *BodyStructureSinglePart) Filename() string {
	var filename string
	if bs.Extended != nil && bs.Extended.Disposition != nil {
		filename = bs.Extended.Disposition.Params["filename"]
	}
	if filename == "" {
		filename = bs.Params["name"]
	}
	return filename
}

func (*BodyStructureSinglePart) bodyStructure() {}

// BodyStructureMessageRFC822 holds the extra fields present when a
// single-part body structure's type is "message/rfc822" or
// "message/global".
type BodyStructureMessageRFC822 struct {
	Envelope      *Envelope
	BodyStructure BodyStructure
	NumLines      int64
}

// BodyStructureText holds the extra field present when a single-part
// body structure's type is "text".
type BodyStructureText struct {
	NumLines int64
}

// BodyStructureSinglePartExt holds the optional extension fields of a
// single-part body structure.
type BodyStructureSinglePartExt struct {
	MD5         string
	Disposition *BodyStructureDisposition
	Language    []string
	Location    string
}

// BodyStructureMultiPart is a body structure with multiple parts.
type BodyStructureMultiPart struct {
	Children []BodyStructure
	Subtype  string

	Extended *BodyStructureMultiPartExt
}

func (bs *BodyStructureMultiPart) MediaType() string {
	return "multipart/" + strings.ToLower(bs.Subtype)
}

func (bs *BodyStructureMultiPart) Walk(f BodyStructureWalkFunc) {
	bs.walk(f, nil)
}

func (bs *BodyStructureMultiPart) walk(f BodyStructureWalkFunc, path []int) {
	if !f(path, bs) {
		return
	}

	pathBuf := make([]int, len(path))
	copy(pathBuf, path)
	for i, part := range bs.Children {
		num := i + 1
		partPath := append(pathBuf, num)

		switch part := part.(type) {
		case *BodyStructureSinglePart:
			f(partPath, part)
		case *BodyStructureMultiPart:
			part.walk(f, partPath)
		default:
			panic(fmt.Errorf("unsupported body structure type %T", part))
		}
	}
}

func (bs *BodyStructureMultiPart) Disposition() *BodyStructureDisposition {
	if bs.Extended == nil {
		return nil
	}
	return bs.Extended.Disposition
}

func (*BodyStructureMultiPart) bodyStructure() {}

// BodyStructureMultiPartExt holds the optional extension fields of a
// multipart body structure.
type BodyStructureMultiPartExt struct {
	Params      map[string]string
	Disposition *BodyStructureDisposition
	Language    []string
	Location    string
}

// BodyStructureDisposition is a MIME Content-Disposition.
type BodyStructureDisposition struct {
	Value  string
	Params map[string]string
}

// BodyStructureWalkFunc is a function called for each body structure
// visited by BodyStructure.Walk.
//
// The path argument contains the IMAP part path.
//
// The function should return true to visit all of the part's children or false
// to skip them.
type BodyStructureWalkFunc func(path []int, part BodyStructure) (walkChildren bool)

// readBody reads a body production: either a single-part or multipart
// body structure, parenthesized.
//
// Grounded on imapclient/decode.go's readBody and its helpers, adapted
// to decode MIME words through decodeText(p.opts, ...) rather than a
// connection-held Options.decodeText.
func (p *parser) readBody() (BodyStructure, error) {
	dec := p.dec
	if !dec.ExpectSpecial('(') {
		return nil, dec.Err()
	}

	var (
		mediaType string
		bs        BodyStructure
		err       error
	)
	if dec.String(&mediaType) {
		bs, err = p.readBodyType1part(mediaType)
	} else {
		bs, err = p.readBodyTypeMpart()
	}
	if err != nil {
		return nil, err
	}

	if !dec.ExpectSpecial(')') {
		return nil, dec.Err()
	}
	return bs, nil
}

func (p *parser) readBodyType1part(typ string) (*BodyStructureSinglePart, error) {
	dec := p.dec
	bs := BodyStructureSinglePart{Type: typ}

	if !dec.ExpectSP() || !dec.ExpectString(&bs.Subtype) || !dec.ExpectSP() {
		return nil, dec.Err()
	}

	var err error
	bs.Params, err = p.readBodyFldParam()
	if err != nil {
		return nil, err
	}
	if name, ok := bs.Params["name"]; ok {
		bs.Params["name"] = decodeText(p.opts, name)
	}

	var description string
	if !dec.ExpectSP() || !dec.ExpectNString(&bs.ID) || !dec.ExpectSP() || !dec.ExpectNString(&description) || !dec.ExpectSP() || !dec.ExpectString(&bs.Encoding) || !dec.ExpectSP() {
		return nil, dec.Err()
	}
	bs.Description = decodeText(p.opts, description)

	var ok bool
	bs.Size, ok = dec.ExpectNumber()
	if !ok {
		return nil, dec.Err()
	}

	if strings.EqualFold(bs.Type, "message") && (strings.EqualFold(bs.Subtype, "rfc822") || strings.EqualFold(bs.Subtype, "global")) {
		var msg BodyStructureMessageRFC822

		if !dec.ExpectSP() {
			return nil, dec.Err()
		}
		msg.Envelope, err = p.readEnvelope()
		if err != nil {
			return nil, err
		}
		if !dec.ExpectSP() {
			return nil, dec.Err()
		}
		msg.BodyStructure, err = p.readBody()
		if err != nil {
			return nil, err
		}
		if !dec.ExpectSP() {
			return nil, dec.Err()
		}
		msg.NumLines, ok = dec.ExpectNumber64()
		if !ok {
			return nil, dec.Err()
		}
		bs.MessageRFC822 = &msg
	} else if strings.EqualFold(bs.Type, "text") {
		var text BodyStructureText

		if !dec.ExpectSP() {
			return nil, dec.Err()
		}
		text.NumLines, ok = dec.ExpectNumber64()
		if !ok {
			return nil, dec.Err()
		}
		bs.Text = &text
	}

	if dec.SP() {
		bs.Extended, err = p.readBodyExt1part()
		if err != nil {
			return nil, err
		}
	}

	return &bs, nil
}

func (p *parser) readBodyExt1part() (*BodyStructureSinglePartExt, error) {
	dec := p.dec
	var ext BodyStructureSinglePartExt

	if !dec.ExpectNString(&ext.MD5) {
		return nil, dec.Err()
	}
	if !dec.SP() {
		return &ext, nil
	}

	var err error
	ext.Disposition, err = p.readBodyFldDsp()
	if err != nil {
		return nil, err
	}
	if !dec.SP() {
		return &ext, nil
	}

	ext.Language, err = p.readBodyFldLang()
	if err != nil {
		return nil, err
	}
	if !dec.SP() {
		return &ext, nil
	}

	if !dec.ExpectNString(&ext.Location) {
		return nil, dec.Err()
	}
	return &ext, nil
}

func (p *parser) readBodyTypeMpart() (*BodyStructureMultiPart, error) {
	dec := p.dec
	var bs BodyStructureMultiPart

	for {
		child, err := p.readBody()
		if err != nil {
			return nil, err
		}
		bs.Children = append(bs.Children, child)

		if dec.SP() && dec.String(&bs.Subtype) {
			break
		}
	}

	if dec.SP() {
		var err error
		bs.Extended, err = p.readBodyExtMpart()
		if err != nil {
			return nil, err
		}
	}

	return &bs, nil
}

func (p *parser) readBodyExtMpart() (*BodyStructureMultiPartExt, error) {
	dec := p.dec
	var ext BodyStructureMultiPartExt

	var err error
	ext.Params, err = p.readBodyFldParam()
	if err != nil {
		return nil, err
	}
	if !dec.SP() {
		return &ext, nil
	}

	ext.Disposition, err = p.readBodyFldDsp()
	if err != nil {
		return nil, err
	}
	if !dec.SP() {
		return &ext, nil
	}

	ext.Language, err = p.readBodyFldLang()
	if err != nil {
		return nil, err
	}
	if !dec.SP() {
		return &ext, nil
	}

	if !dec.ExpectNString(&ext.Location) {
		return nil, dec.Err()
	}
	return &ext, nil
}

func (p *parser) readBodyFldDsp() (*BodyStructureDisposition, error) {
	dec := p.dec
	if !dec.Special('(') {
		if !dec.ExpectNIL() {
			return nil, dec.Err()
		}
		return nil, nil
	}

	var disp BodyStructureDisposition
	if !dec.ExpectString(&disp.Value) || !dec.ExpectSP() {
		return nil, dec.Err()
	}

	var err error
	disp.Params, err = p.readBodyFldParam()
	if err != nil {
		return nil, err
	}
	if filename, ok := disp.Params["filename"]; ok {
		disp.Params["filename"] = decodeText(p.opts, filename)
	}

	if !dec.ExpectSpecial(')') {
		return nil, dec.Err()
	}
	return &disp, nil
}

func (p *parser) readBodyFldParam() (map[string]string, error) {
	dec := p.dec
	var (
		params map[string]string
		k      string
	)
	err := dec.ExpectNList(func() error {
		var s string
		if !dec.ExpectString(&s) {
			return dec.Err()
		}

		if k == "" {
			k = s
		} else {
			if params == nil {
				params = make(map[string]string)
			}
			params[k] = s
			k = ""
		}
		return nil
	})
	if err != nil {
		return nil, err
	} else if k != "" {
		return nil, dataFormatError("body-fld-param", "key without value")
	}
	return params, nil
}

func (p *parser) readBodyFldLang() ([]string, error) {
	dec := p.dec
	var l []string
	isList, err := dec.List(func() error {
		var s string
		if !dec.ExpectString(&s) {
			return dec.Err()
		}
		l = append(l, s)
		return nil
	})
	if err != nil || isList {
		return l, err
	}

	var s string
	if !dec.ExpectNString(&s) {
		return nil, dec.Err()
	}
	if s != "" {
		return []string{s}, nil
	}
	return nil, nil
}
