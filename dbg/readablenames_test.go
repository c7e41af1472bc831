package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type thing struct{ n int }

func TestName(t *testing.T) {
	a := &thing{1}
	b := &thing{2}

	assert.Equal(t, Name(a), Name(a), "names are stable for the same pointer")
	assert.NotEmpty(t, Name(b))
	assert.Equal(t, "Ø", Name(nil))
	var nilThing *thing
	assert.Equal(t, "Ø", Name(nilThing))
}
