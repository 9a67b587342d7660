package hallmark

import (
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestTagMarshalText(t *testing.T) {
	t.Parallel()

	tag := Sum([]byte("ayellowsubmarine"), []byte("ok"))

	text, err := tag.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var decoded Tag
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "round-tripped tag", tag, decoded)
	assert.Equal(t, "string representation", string(text), tag.String())
}

func TestTagUnmarshalTextInvalid(t *testing.T) {
	t.Parallel()

	var tag Tag

	if err := tag.UnmarshalText([]byte("not base58 l0O")); err == nil {
		t.Error("expected an error, got none")
	}

	if err := tag.UnmarshalText([]byte("2g")); err == nil {
		t.Error("expected an error for a short tag, got none")
	}
}

func TestTagEqual(t *testing.T) {
	t.Parallel()

	a := Sum([]byte("ayellowsubmarine"), []byte("ok"))
	b := Sum([]byte("ayellowsubmarine"), []byte("ok"))
	c := Sum([]byte("ayellowsubmarine"), []byte("no"))

	assert.Equal(t, "equal tags", true, a.Equal(&b))
	assert.Equal(t, "unequal tags", false, a.Equal(&c))
}
