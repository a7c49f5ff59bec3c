package rubeme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	x := []byte("hello world")
	require.Equal(t, Hash(nil, x), Hash(nil, x))
	require.NotEqual(t, Hash(nil, x), Hash(nil, []byte("hello world!")))

	var tag [HashSize]byte
	tag[0] = 1
	require.NotEqual(t, Hash(nil, x), Hash(&tag, x))
	require.Equal(t, Hash(&tag, x), Hash(&tag, x))
}

func TestMakeVersion(t *testing.T) {
	require.Equal(t, "(rubeme.scm :version 0.1.0 :release 2021-06-10)", MakeVersion("Rubeme::Scm"))
	require.Equal(t, "(rubeme :version 0.1.0 :release 2021-06-10)", MakeVersion("rubeme"))
}
