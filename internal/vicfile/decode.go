package vicfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fcgreg/VIC-CatParser/internal/model"
)

// Structural errors wrapped in a *ParseError.
var (
	errNotObject         = errors.New("top-level value must be a JSON object")
	errRecordsNotArray   = errors.New("record collection must be a JSON array")
	errTrailingData      = errors.New("unexpected data after top-level object")
	errUnexpectedDelim   = errors.New("unexpected delimiter")
	errUnexpectedKeyType = errors.New("object key is not a string")
)

// decoder walks the token stream of a json.Decoder and builds ordered values.
type decoder struct {
	dec          *json.Decoder
	recordsField string
}

// decode parses a whole document from r.
func decode(r io.Reader, opts Options) (*model.Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	d := &decoder{dec: dec, recordsField: opts.RecordsField}
	if d.recordsField == "" {
		d.recordsField = model.DefaultRecordsField
	}

	doc, err := d.document()
	if err != nil {
		return nil, d.parseError(err)
	}
	return doc, nil
}

// parseError wraps err with the current decoder offset.
func (d *decoder) parseError(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	offset := d.dec.InputOffset()
	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		offset = serr.Offset
	}
	return &ParseError{Offset: offset, Err: err}
}

// document parses the top-level object.
func (d *decoder) document() (*model.Document, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	doc := model.NewDocument(d.recordsField)
	for d.dec.More() {
		key, err := d.key()
		if err != nil {
			return nil, err
		}

		if strings.EqualFold(key, d.recordsField) && !doc.HasRecordsField() {
			doc.MarkRecordsPosition(key)
			if err := d.records(doc); err != nil {
				return nil, err
			}
			continue
		}

		value, err := d.value()
		if err != nil {
			return nil, err
		}
		doc.AddMetadata(key, value)
	}

	if err := d.closing('}'); err != nil {
		return nil, err
	}

	if _, err := d.dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errTrailingData
	}
	return doc, nil
}

// records parses the record collection into doc.
// Elements that are not objects are counted as skipped.
func (d *decoder) records(doc *model.Document) error {
	tok, err := d.dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("%w: %q", errRecordsNotArray, doc.RecordsField)
	}

	for d.dec.More() {
		v, err := d.value()
		if err != nil {
			return err
		}
		if v.Kind() != model.KindObject {
			doc.Skipped++
			continue
		}
		doc.Records = append(doc.Records, v.Object())
	}
	return d.closing(']')
}

// key reads an object key.
func (d *decoder) key() (string, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", errUnexpectedKeyType
	}
	return key, nil
}

// closing consumes the expected closing delimiter.
func (d *decoder) closing(want json.Delim) error {
	tok, err := d.dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("%w: expected %q", errUnexpectedDelim, want)
	}
	return nil
}

// value reads any JSON value.
func (d *decoder) value() (model.Value, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return model.Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return d.object()
		case '[':
			return d.array()
		default:
			return model.Value{}, fmt.Errorf("%w: %q", errUnexpectedDelim, t)
		}
	case string:
		return model.StringValue(t), nil
	case json.Number:
		return model.NumberValue(t.String()), nil
	case bool:
		return model.BoolValue(t), nil
	case nil:
		return model.NullValue(), nil
	default:
		return model.Value{}, fmt.Errorf("unexpected token %v", t)
	}
}

// object reads the remainder of an object whose '{' was consumed.
func (d *decoder) object() (model.Value, error) {
	rec := model.NewRecord()
	for d.dec.More() {
		key, err := d.key()
		if err != nil {
			return model.Value{}, err
		}
		v, err := d.value()
		if err != nil {
			return model.Value{}, err
		}
		rec.Add(key, v)
	}
	if err := d.closing('}'); err != nil {
		return model.Value{}, err
	}
	return model.ObjectValue(rec), nil
}

// array reads the remainder of an array whose '[' was consumed.
func (d *decoder) array() (model.Value, error) {
	items := make([]model.Value, 0)
	for d.dec.More() {
		v, err := d.value()
		if err != nil {
			return model.Value{}, err
		}
		items = append(items, v)
	}
	if err := d.closing(']'); err != nil {
		return model.Value{}, err
	}
	return model.ArrayValue(items...), nil
}
