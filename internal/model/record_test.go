package model

import (
	"encoding/json"
	"testing"
)

// newVICRecord builds a record shaped like a Project VIC item.
func newVICRecord() *Record {
	return NewRecord(
		Field{Name: "MediaID", Value: NumberValue("42")},
		Field{Name: "Category", Value: NumberValue("1")},
		Field{Name: "MD5", Value: StringValue("0123456789abcdef0123456789abcdef")},
		Field{Name: "SHA1", Value: NullValue()},
		Field{Name: "PhotoDNA", Value: StringValue("")},
	)
}

// TestRecordGet tests case-insensitive field lookup.
func TestRecordGet(t *testing.T) {
	t.Parallel()

	r := newVICRecord()

	t.Run("exact name", func(t *testing.T) {
		t.Parallel()
		v, ok := r.Get("MediaID")
		if !ok || v.Text() != "42" {
			t.Errorf("got %q (%v), expected 42", v.Text(), ok)
		}
	})

	t.Run("different case", func(t *testing.T) {
		t.Parallel()
		v, ok := r.Category("category")
		if !ok || v.Kind() != KindNumber {
			t.Errorf("expected number category, got %v (%v)", v.Kind(), ok)
		}
	})

	t.Run("missing field", func(t *testing.T) {
		t.Parallel()
		if _, ok := r.Get("Exifs"); ok {
			t.Error("expected missing field")
		}
	})

	t.Run("first duplicate wins", func(t *testing.T) {
		t.Parallel()
		d := NewRecord()
		d.Add("id", StringValue("first"))
		d.Add("ID", StringValue("second"))
		v, _ := d.Get("id")
		if v.Text() != "first" {
			t.Errorf("got %q, expected %q", v.Text(), "first")
		}
	})
}

// TestRecordHash tests hash lookup in flat and nested layouts.
func TestRecordHash(t *testing.T) {
	t.Parallel()

	t.Run("top-level field", func(t *testing.T) {
		t.Parallel()
		h, ok := newVICRecord().Hash(HashMD5)
		if !ok || h != "0123456789abcdef0123456789abcdef" {
			t.Errorf("got %q (%v)", h, ok)
		}
	})

	t.Run("null is absent", func(t *testing.T) {
		t.Parallel()
		if _, ok := newVICRecord().Hash(HashSHA1); ok {
			t.Error("expected null SHA1 to be absent")
		}
	})

	t.Run("empty string is absent", func(t *testing.T) {
		t.Parallel()
		if _, ok := newVICRecord().Hash(HashPhotoDNA); ok {
			t.Error("expected empty PhotoDNA to be absent")
		}
	})

	t.Run("nested hashes object", func(t *testing.T) {
		t.Parallel()
		r := NewRecord(
			Field{Name: "id", Value: NumberValue("1")},
			Field{Name: "hashes", Value: ObjectValue(NewRecord(
				Field{Name: "md5", Value: StringValue("aaa")},
			))},
		)
		h, ok := r.Hash(HashMD5)
		if !ok || h != "aaa" {
			t.Errorf("got %q (%v), expected aaa", h, ok)
		}
		if _, ok := r.Hash(HashSHA1); ok {
			t.Error("expected missing sha1")
		}
	})

	t.Run("invalid algorithm", func(t *testing.T) {
		t.Parallel()
		if _, ok := newVICRecord().Hash(HashNone); ok {
			t.Error("expected no hash for HashNone")
		}
	})
}

// TestRecordMarshalJSON tests that output keeps field order and number literals.
func TestRecordMarshalJSON(t *testing.T) {
	t.Parallel()

	r := NewRecord(
		Field{Name: "b", Value: NumberValue("1.50")},
		Field{Name: "a", Value: StringValue("x y")},
		Field{Name: "Exifs", Value: ArrayValue(
			ObjectValue(NewRecord(Field{Name: "PropertyName", Value: StringValue("Make")})),
		)},
		Field{Name: "flag", Value: BoolValue(true)},
		Field{Name: "none", Value: NullValue()},
	)

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{"b":1.50,"a":"x y","Exifs":[{"PropertyName":"Make"}],"flag":true,"none":null}`
	if string(data) != expected {
		t.Errorf("got %s, expected %s", data, expected)
	}

	t.Run("keeps HTML characters", func(t *testing.T) {
		t.Parallel()

		r := NewRecord(Field{Name: "K&<>", Value: StringValue("a&b<c>\"q\"")})
		data, err := r.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := `{"K&<>":"a&b<c>\"q\""}`
		if string(data) != expected {
			t.Errorf("got %s, expected %s", data, expected)
		}
	})
}

// TestValueEqual tests structural equality.
func TestValueEqual(t *testing.T) {
	t.Parallel()

	a := ObjectValue(newVICRecord())
	b := ObjectValue(newVICRecord())
	if !a.Equal(b) {
		t.Error("expected equal records")
	}

	c := newVICRecord()
	c.Add("extra", StringValue("x"))
	if a.Equal(ObjectValue(c)) {
		t.Error("expected records with different fields to differ")
	}

	if NumberValue("1").Equal(StringValue("1")) {
		t.Error("expected number and string to differ")
	}
	if !ArrayValue().Equal(ArrayValue()) {
		t.Error("expected empty arrays to be equal")
	}
}
